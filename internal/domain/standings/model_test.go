package standings

import (
	"reflect"
	"testing"
)

func TestRow_Derive(t *testing.T) {
	t.Parallel()

	r := Row{Won: 4, Drawn: 2, Lost: 1, GoalsFor: 14, GoalsAgainst: 6}
	r.Derive()

	if r.Points != 14 {
		t.Fatalf("Points = %d, want 14", r.Points)
	}
	if r.GoalDifference != 8 {
		t.Fatalf("GoalDifference = %d, want 8", r.GoalDifference)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: "b", Points: 10},
		{TeamID: "a", Points: 12},
		{TeamID: "c", Points: 10},
	}

	ranked := Rank(rows)

	if ranked[0].Row.TeamID != "a" || ranked[0].Position != 1 {
		t.Fatalf("unexpected first: %+v", ranked[0])
	}
	if ranked[1].Row.TeamID != "b" || ranked[1].Position != 2 {
		t.Fatalf("unexpected second: %+v", ranked[1])
	}
	if ranked[2].Row.TeamID != "c" || ranked[2].Position != 3 {
		t.Fatalf("unexpected third: %+v", ranked[2])
	}
}

func TestTier(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		1: TierChampion,
		2: TierQualifying,
		3: TierQualifying,
		4: TierNeutral,
		5: TierNeutral,
		6: TierRelegation,
		9: TierRelegation,
	}
	for position, want := range cases {
		if got := Tier(position); got != want {
			t.Fatalf("Tier(%d) = %s, want %s", position, got, want)
		}
	}
}

func TestParseForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{in: `"W,L,D"`, want: []string{"W", "L", "D"}},
		{in: "w, l ,d", want: []string{"W", "L", "D"}},
		{in: "W,,L,", want: []string{"W", "L"}},
		{in: "", want: []string{}},
		{in: "'W'", want: []string{"W"}},
	}

	for _, tc := range cases {
		if got := ParseForm(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseForm(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRow_Validate(t *testing.T) {
	t.Parallel()

	valid := Row{ID: "r1", TeamID: "t1", Played: 5, Won: 3, Drawn: 1, Lost: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid row rejected: %v", err)
	}

	tooMany := Row{ID: "r1", TeamID: "t1", Played: 2, Won: 3}
	if err := tooMany.Validate(); err == nil {
		t.Fatal("expected error when results exceed played")
	}
}
