package match

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"
)

// ErrUnresolvedTime marks a clock string that cannot be combined with the
// match date into a kickoff instant.
var ErrUnresolvedTime = errors.New("unresolved match time")

var (
	clock12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
	clock24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseClock accepts "H:MM AM/PM" and "HH:MM" clock strings and returns the
// 24-hour components. Anything else fails with ErrUnresolvedTime.
func ParseClock(clock string) (hour, minute int, err error) {
	trimmed := trimClock(clock)
	if trimmed == "" {
		return 0, 0, fmt.Errorf("%w: empty clock", ErrUnresolvedTime)
	}

	if parts := clock12Pattern.FindStringSubmatch(trimmed); parts != nil {
		hour = atoiDigits(parts[1])
		minute = atoiDigits(parts[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q out of range", ErrUnresolvedTime, clock)
		}
		pm := parts[3][0] == 'P' || parts[3][0] == 'p'
		if pm && hour < 12 {
			hour += 12
		}
		if !pm && hour == 12 {
			hour = 0
		}
		return hour, minute, nil
	}

	if parts := clock24Pattern.FindStringSubmatch(trimmed); parts != nil {
		hour = atoiDigits(parts[1])
		minute = atoiDigits(parts[2])
		if hour > 23 || minute > 59 {
			return 0, 0, fmt.Errorf("%w: %q out of range", ErrUnresolvedTime, clock)
		}
		return hour, minute, nil
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrUnresolvedTime, clock)
}

// ResolveKickoff combines the calendar day of date (UTC fields) with the
// clock string into a single UTC instant.
func ResolveKickoff(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC), nil
}

func trimClock(clock string) string {
	start := 0
	end := len(clock)
	for start < end && (clock[start] == ' ' || clock[start] == '\t') {
		start++
	}
	for end > start && (clock[end-1] == ' ' || clock[end-1] == '\t') {
		end--
	}
	return clock[start:end]
}

func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// Entry pairs a match with its resolved kickoff.
type Entry struct {
	Match   Match
	Kickoff time.Time
}

// Schedule holds resolvable matches in kickoff order.
type Schedule struct {
	entries []Entry
}

// BuildSchedule resolves every match and returns the schedule plus the
// matches whose time could not be resolved. Unresolved matches never
// appear in derived output; the caller decides how to report them.
func BuildSchedule(matches []Match) (Schedule, []Match) {
	entries := make([]Entry, 0, len(matches))
	var unresolved []Match
	for _, m := range matches {
		kickoff, err := ResolveKickoff(m.MatchDate, m.Time)
		if err != nil {
			unresolved = append(unresolved, m)
			continue
		}
		entries = append(entries, Entry{Match: m, Kickoff: kickoff})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Kickoff.Before(entries[j].Kickoff)
	})

	return Schedule{entries: entries}, unresolved
}

// Entries returns all resolved entries in ascending kickoff order.
func (s Schedule) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// NonCompleted returns every entry that is not completed, ascending.
func (s Schedule) NonCompleted() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !IsCompletedStatus(e.Match.Status) {
			out = append(out, e)
		}
	}
	return out
}

// TodayOnly returns upcoming or running entries whose kickoff falls within
// the calendar day of now (UTC).
func (s Schedule) TodayOnly(now time.Time) []Entry {
	start := StartOfDay(now)
	end := EndOfDay(now)

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		status := NormalizeStatus(e.Match.Status)
		if status != StatusUpcoming && status != StatusRunning {
			continue
		}
		if e.Kickoff.Before(start) || e.Kickoff.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// StrictlyFuture returns upcoming or running entries that kick off after
// the end of today's calendar day.
func (s Schedule) StrictlyFuture(now time.Time) []Entry {
	end := EndOfDay(now)

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		status := NormalizeStatus(e.Match.Status)
		if status != StatusUpcoming && status != StatusRunning {
			continue
		}
		if !e.Kickoff.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Completed returns completed entries in descending kickoff order.
func (s Schedule) Completed() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		if IsCompletedStatus(s.entries[i].Match.Status) {
			out = append(out, s.entries[i])
		}
	}
	return out
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, time.UTC)
}

// WeekGroup is one gameweek's worth of entries.
type WeekGroup struct {
	Week    int
	Entries []Entry
}

// GroupByWeek buckets entries by their week number. Groups are ordered by
// week key; entry order inside a group is preserved.
func GroupByWeek(entries []Entry, descending bool) []WeekGroup {
	byWeek := make(map[int][]Entry)
	weeks := make([]int, 0)
	for _, e := range entries {
		if _, seen := byWeek[e.Match.Week]; !seen {
			weeks = append(weeks, e.Match.Week)
		}
		byWeek[e.Match.Week] = append(byWeek[e.Match.Week], e)
	}

	sort.Ints(weeks)
	if descending {
		for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
			weeks[i], weeks[j] = weeks[j], weeks[i]
		}
	}

	out := make([]WeekGroup, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, WeekGroup{Week: w, Entries: byWeek[w]})
	}
	return out
}

// CurrentAndNext picks the spotlight pair: current is the first running
// entry, else the first entry kicking off after now; next is the entry
// following current in schedule order, else the earliest entry when there
// is no current.
func (s Schedule) CurrentAndNext(now time.Time) (current, next *Entry) {
	candidates := s.NonCompleted()

	currentIdx := -1
	for i := range candidates {
		if IsRunningStatus(candidates[i].Match.Status) {
			currentIdx = i
			break
		}
	}
	if currentIdx < 0 {
		for i := range candidates {
			if candidates[i].Kickoff.After(now) {
				currentIdx = i
				break
			}
		}
	}

	if currentIdx >= 0 {
		current = &candidates[currentIdx]
		if currentIdx+1 < len(candidates) {
			next = &candidates[currentIdx+1]
		}
		return current, next
	}

	if len(candidates) > 0 {
		next = &candidates[0]
	}
	return nil, next
}

// Countdown is the remaining time to kickoff, broken into display units.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// CountdownTo computes the countdown from now to kickoff, clamped to zero
// once the kickoff has passed.
func CountdownTo(kickoff, now time.Time) Countdown {
	millis := kickoff.Sub(now).Milliseconds()
	if millis <= 0 {
		return Countdown{}
	}

	total := millis / 1000
	return Countdown{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}
