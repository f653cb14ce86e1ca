package match

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{in: "3:00 PM", hour: 15, minute: 0},
		{in: "3:00PM", hour: 15, minute: 0},
		{in: "12:30 pm", hour: 12, minute: 30},
		{in: "12:15 AM", hour: 0, minute: 15},
		{in: "11:59 pm", hour: 23, minute: 59},
		{in: " 9:05 am ", hour: 9, minute: 5},
		{in: "15:45", hour: 15, minute: 45},
		{in: "00:00", hour: 0, minute: 0},
		{in: "23:59", hour: 23, minute: 59},
		{in: "", wantErr: true},
		{in: "kickoff", wantErr: true},
		{in: "300 PM", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "0:30 AM", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10:30 XM", wantErr: true},
		{in: "10:30 PM extra", wantErr: true},
	}

	for _, tc := range cases {
		hour, minute, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error", tc.in)
			}
			if !errors.Is(err, ErrUnresolvedTime) {
				t.Fatalf("ParseClock(%q): error %v is not ErrUnresolvedTime", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if hour != tc.hour || minute != tc.minute {
			t.Fatalf("ParseClock(%q) = %d:%02d, want %d:%02d", tc.in, hour, minute, tc.hour, tc.minute)
		}
	}
}

func TestResolveKickoff(t *testing.T) {
	t.Parallel()

	got, err := ResolveKickoff(date(2026, time.March, 14), "3:30 PM")
	if err != nil {
		t.Fatalf("ResolveKickoff: %v", err)
	}
	want := time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ResolveKickoff = %v, want %v", got, want)
	}

	if _, err := ResolveKickoff(date(2026, time.March, 14), "sometime"); !errors.Is(err, ErrUnresolvedTime) {
		t.Fatalf("expected ErrUnresolvedTime, got %v", err)
	}
}

func TestBuildSchedule_SortsAndCollectsUnresolved(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{ID: "m2", MatchDate: date(2026, time.March, 21), Time: "1:00 PM", Status: StatusUpcoming},
		{ID: "bad", MatchDate: date(2026, time.March, 7), Time: "midday", Status: StatusUpcoming},
		{ID: "m1", MatchDate: date(2026, time.March, 14), Time: "15:00", Status: StatusUpcoming},
	}

	schedule, unresolved := BuildSchedule(matches)

	entries := schedule.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Match.ID != "m1" || entries[1].Match.ID != "m2" {
		t.Fatalf("unexpected order: %s, %s", entries[0].Match.ID, entries[1].Match.ID)
	}
	if len(unresolved) != 1 || unresolved[0].ID != "bad" {
		t.Fatalf("unexpected unresolved: %+v", unresolved)
	}
}

func TestSchedule_Filters(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	matches := []Match{
		{ID: "done", MatchDate: date(2026, time.March, 7), Time: "3:00 PM", Status: StatusCompleted, Week: 1},
		{ID: "today", MatchDate: date(2026, time.March, 14), Time: "5:00 PM", Status: StatusUpcoming, Week: 2},
		{ID: "live", MatchDate: date(2026, time.March, 14), Time: "9:30 AM", Status: StatusRunning, Week: 2},
		{ID: "future", MatchDate: date(2026, time.March, 21), Time: "3:00 PM", Status: StatusUpcoming, Week: 3},
		{ID: "done2", MatchDate: date(2026, time.March, 1), Time: "3:00 PM", Status: StatusCompleted, Week: 1},
	}

	schedule, unresolved := BuildSchedule(matches)
	if len(unresolved) != 0 {
		t.Fatalf("unexpected unresolved: %+v", unresolved)
	}

	nonCompleted := schedule.NonCompleted()
	if len(nonCompleted) != 3 || nonCompleted[0].Match.ID != "live" {
		t.Fatalf("unexpected nonCompleted: %+v", ids(nonCompleted))
	}

	today := schedule.TodayOnly(now)
	if len(today) != 2 || today[0].Match.ID != "live" || today[1].Match.ID != "today" {
		t.Fatalf("unexpected today: %+v", ids(today))
	}

	future := schedule.StrictlyFuture(now)
	if len(future) != 1 || future[0].Match.ID != "future" {
		t.Fatalf("unexpected future: %+v", ids(future))
	}

	completed := schedule.Completed()
	if len(completed) != 2 || completed[0].Match.ID != "done" || completed[1].Match.ID != "done2" {
		t.Fatalf("unexpected completed: %+v", ids(completed))
	}
}

func TestGroupByWeek(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Match: Match{ID: "a", Week: 2}},
		{Match: Match{ID: "b", Week: 1}},
		{Match: Match{ID: "c", Week: 2}},
	}

	asc := GroupByWeek(entries, false)
	if len(asc) != 2 || asc[0].Week != 1 || asc[1].Week != 2 {
		t.Fatalf("unexpected ascending groups: %+v", asc)
	}
	if len(asc[1].Entries) != 2 || asc[1].Entries[0].Match.ID != "a" {
		t.Fatalf("unexpected week 2 entries: %+v", ids(asc[1].Entries))
	}

	desc := GroupByWeek(entries, true)
	if len(desc) != 2 || desc[0].Week != 2 || desc[1].Week != 1 {
		t.Fatalf("unexpected descending groups: %+v", desc)
	}
}

func TestSchedule_CurrentAndNext(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	t.Run("running match wins", func(t *testing.T) {
		t.Parallel()
		schedule, _ := BuildSchedule([]Match{
			{ID: "live", MatchDate: date(2026, time.March, 14), Time: "9:30 AM", Status: StatusRunning},
			{ID: "later", MatchDate: date(2026, time.March, 21), Time: "3:00 PM", Status: StatusUpcoming},
		})
		current, next := schedule.CurrentAndNext(now)
		if current == nil || current.Match.ID != "live" {
			t.Fatalf("unexpected current: %+v", current)
		}
		if next == nil || next.Match.ID != "later" {
			t.Fatalf("unexpected next: %+v", next)
		}
	})

	t.Run("first future when nothing runs", func(t *testing.T) {
		t.Parallel()
		schedule, _ := BuildSchedule([]Match{
			{ID: "past", MatchDate: date(2026, time.March, 7), Time: "3:00 PM", Status: StatusUpcoming},
			{ID: "soon", MatchDate: date(2026, time.March, 14), Time: "5:00 PM", Status: StatusUpcoming},
			{ID: "later", MatchDate: date(2026, time.March, 21), Time: "3:00 PM", Status: StatusUpcoming},
		})
		current, next := schedule.CurrentAndNext(now)
		if current == nil || current.Match.ID != "soon" {
			t.Fatalf("unexpected current: %+v", current)
		}
		if next == nil || next.Match.ID != "later" {
			t.Fatalf("unexpected next: %+v", next)
		}
	})

	t.Run("only past matches", func(t *testing.T) {
		t.Parallel()
		schedule, _ := BuildSchedule([]Match{
			{ID: "past", MatchDate: date(2026, time.March, 7), Time: "3:00 PM", Status: StatusUpcoming},
		})
		current, next := schedule.CurrentAndNext(now)
		if current != nil {
			t.Fatalf("unexpected current: %+v", current)
		}
		if next == nil || next.Match.ID != "past" {
			t.Fatalf("unexpected next: %+v", next)
		}
	})
}

func TestCountdownTo(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	kickoff := time.Date(2026, time.March, 16, 12, 30, 45, 0, time.UTC)

	got := CountdownTo(kickoff, now)
	want := Countdown{Days: 2, Hours: 2, Minutes: 30, Seconds: 45}
	if got != want {
		t.Fatalf("CountdownTo = %+v, want %+v", got, want)
	}

	if got := CountdownTo(now, now.Add(time.Second)); got != (Countdown{}) {
		t.Fatalf("expected zero countdown after kickoff, got %+v", got)
	}
}

func ids(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Match.ID)
	}
	return out
}
