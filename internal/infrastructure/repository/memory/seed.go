package memory

import (
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/domain/player"
	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
)

const (
	TeamIDNorthridge = "team-northridge"
	TeamIDStMarks    = "team-st-marks"
	TeamIDRiverdale  = "team-riverdale"
	TeamIDLakeside   = "team-lakeside"
	TeamIDWestgate   = "team-westgate"
	TeamIDOakmont    = "team-oakmont"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:       TeamIDNorthridge,
			Name:     "Northridge Academy",
			LogoPath: "logos/northridge.png",
			Manager:  "Coach Daniel Mensah",
			Founded:  time.Date(1998, 9, 1, 0, 0, 0, 0, time.UTC),
			Stadium:  "Northridge Sports Complex",
		},
		{
			ID:       TeamIDStMarks,
			Name:     "St. Marks College",
			LogoPath: "logos/st-marks.png",
			Manager:  "Coach Peter Osei",
			Founded:  time.Date(1985, 9, 1, 0, 0, 0, 0, time.UTC),
			Stadium:  "St. Marks Field",
		},
		{
			ID:       TeamIDRiverdale,
			Name:     "Riverdale High",
			LogoPath: "logos/riverdale.png",
			Manager:  "Coach Amina Diallo",
			Founded:  time.Date(2001, 9, 1, 0, 0, 0, 0, time.UTC),
			Stadium:  "Riverdale Park",
		},
		{
			ID:       TeamIDLakeside,
			Name:     "Lakeside Secondary",
			LogoPath: "logos/lakeside.png",
			Manager:  "Coach Kwame Boateng",
			Founded:  time.Date(1992, 9, 1, 0, 0, 0, 0, time.UTC),
			Stadium:  "Lakeside Arena",
		},
		{
			ID:       TeamIDWestgate,
			Name:     "Westgate Grammar",
			LogoPath: "logos/westgate.png",
			Manager:  "Coach Femi Adeyemi",
			Founded:  time.Date(1979, 9, 1, 0, 0, 0, 0, time.UTC),
			Stadium:  "Westgate Grounds",
		},
		{
			ID:       TeamIDOakmont,
			Name:     "Oakmont Prep",
			LogoPath: "logos/oakmont.png",
			Manager:  "Coach Grace Mwangi",
			Founded:  time.Date(2005, 9, 1, 0, 0, 0, 0, time.UTC),
			Stadium:  "Oakmont Oval",
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-nr-01", TeamID: TeamIDNorthridge, Name: "Samuel Appiah", Position: player.PositionGoalkeeper, Appearances: 8, CleanSheets: 4, Nationality: "Ghana", HeightFeet: 6, HeightInches: 1},
		{ID: "pl-nr-02", TeamID: TeamIDNorthridge, Name: "Elias Fourie", Position: player.PositionDefender, Appearances: 8, Goals: 1, YellowCards: 2, Nationality: "South Africa", HeightFeet: 5, HeightInches: 11},
		{ID: "pl-nr-03", TeamID: TeamIDNorthridge, Name: "Tobi Olawale", Position: player.PositionMidfielder, Appearances: 7, Goals: 3, Nationality: "Nigeria", HeightFeet: 5, HeightInches: 9},
		{ID: "pl-nr-04", TeamID: TeamIDNorthridge, Name: "Kofi Asante", Position: player.PositionForward, Appearances: 8, Goals: 7, Nationality: "Ghana", HeightFeet: 5, HeightInches: 10},
		{ID: "pl-sm-01", TeamID: TeamIDStMarks, Name: "Daniel Kimani", Position: player.PositionGoalkeeper, Appearances: 8, CleanSheets: 3, Nationality: "Kenya", HeightFeet: 6, HeightInches: 0},
		{ID: "pl-sm-02", TeamID: TeamIDStMarks, Name: "Jonas Van Wyk", Position: player.PositionDefender, Appearances: 8, YellowCards: 1, Nationality: "South Africa", HeightFeet: 6, HeightInches: 2},
		{ID: "pl-sm-03", TeamID: TeamIDStMarks, Name: "Ibrahim Sow", Position: player.PositionMidfielder, Appearances: 8, Goals: 4, Nationality: "Senegal", HeightFeet: 5, HeightInches: 8},
		{ID: "pl-sm-04", TeamID: TeamIDStMarks, Name: "Emeka Obi", Position: player.PositionForward, Appearances: 7, Goals: 6, Nationality: "Nigeria", HeightFeet: 5, HeightInches: 11},
		{ID: "pl-rd-01", TeamID: TeamIDRiverdale, Name: "Yaw Darko", Position: player.PositionMidfielder, Appearances: 8, Goals: 2, Nationality: "Ghana", HeightFeet: 5, HeightInches: 7},
		{ID: "pl-rd-02", TeamID: TeamIDRiverdale, Name: "Moses Banda", Position: player.PositionForward, Appearances: 8, Goals: 5, RedCards: 1, Nationality: "Zambia", HeightFeet: 6, HeightInches: 0},
		{ID: "pl-lk-01", TeamID: TeamIDLakeside, Name: "Abdul Rahman", Position: player.PositionDefender, Appearances: 8, Goals: 1, Nationality: "Ghana", HeightFeet: 5, HeightInches: 10},
		{ID: "pl-lk-02", TeamID: TeamIDLakeside, Name: "Victor Mensah", Position: player.PositionForward, Appearances: 6, Goals: 4, Nationality: "Ghana", HeightFeet: 5, HeightInches: 9},
	}
}

func SeedMatches() []match.Match {
	score := func(n int) *int { return &n }

	return []match.Match{
		{
			ID:         "mt-001",
			MatchDate:  time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			Time:       "15:00",
			Venue:      "Northridge Sports Complex",
			Week:       1,
			Status:     match.StatusCompleted,
			HomeTeamID: TeamIDNorthridge,
			AwayTeamID: TeamIDStMarks,
			ScoreHome:  score(2),
			ScoreAway:  score(1),
			Referee:    "J. Mensah",
		},
		{
			ID:         "mt-002",
			MatchDate:  time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
			Time:       "13:30",
			Venue:      "Riverdale Park",
			Week:       1,
			Status:     match.StatusCompleted,
			HomeTeamID: TeamIDRiverdale,
			AwayTeamID: TeamIDLakeside,
			ScoreHome:  score(0),
			ScoreAway:  score(0),
			Referee:    "A. Okafor",
		},
		{
			ID:         "mt-003",
			MatchDate:  time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
			Time:       "15:30",
			Venue:      "Westgate Grounds",
			Week:       1,
			Status:     match.StatusCompleted,
			HomeTeamID: TeamIDWestgate,
			AwayTeamID: TeamIDOakmont,
			ScoreHome:  score(1),
			ScoreAway:  score(3),
			Referee:    "K. Toure",
		},
		{
			ID:         "mt-004",
			MatchDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Time:       "15:00",
			Venue:      "St. Marks Field",
			Week:       2,
			Status:     match.StatusCompleted,
			HomeTeamID: TeamIDStMarks,
			AwayTeamID: TeamIDRiverdale,
			ScoreHome:  score(2),
			ScoreAway:  score(2),
			Referee:    "J. Mensah",
		},
		{
			ID:         "mt-005",
			MatchDate:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			Time:       "14:00",
			Venue:      "Oakmont Oval",
			Week:       2,
			Status:     match.StatusUpcoming,
			HomeTeamID: TeamIDOakmont,
			AwayTeamID: TeamIDNorthridge,
		},
		{
			ID:         "mt-006",
			MatchDate:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
			Time:       "16:00",
			Venue:      "Lakeside Arena",
			Week:       2,
			Status:     match.StatusUpcoming,
			HomeTeamID: TeamIDLakeside,
			AwayTeamID: TeamIDWestgate,
		},
		{
			ID:         "mt-007",
			MatchDate:  time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC),
			Time:       "15:00",
			Venue:      "Northridge Sports Complex",
			Week:       3,
			Status:     match.StatusUpcoming,
			HomeTeamID: TeamIDNorthridge,
			AwayTeamID: TeamIDRiverdale,
		},
		{
			ID:         "mt-008",
			MatchDate:  time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			Time:       "13:00",
			Venue:      "Westgate Grounds",
			Week:       3,
			Status:     match.StatusUpcoming,
			HomeTeamID: TeamIDWestgate,
			AwayTeamID: TeamIDStMarks,
		},
	}
}

func SeedStandings() []standings.Row {
	rows := []standings.Row{
		{ID: "st-01", TeamID: TeamIDNorthridge, Played: 2, Won: 2, GoalsFor: 5, GoalsAgainst: 2, Form: "W,W"},
		{ID: "st-02", TeamID: TeamIDOakmont, Played: 2, Won: 1, Drawn: 1, GoalsFor: 4, GoalsAgainst: 2, Form: "W,D"},
		{ID: "st-03", TeamID: TeamIDStMarks, Played: 2, Drawn: 1, Lost: 1, GoalsFor: 3, GoalsAgainst: 4, Form: "L,D"},
		{ID: "st-04", TeamID: TeamIDRiverdale, Played: 2, Drawn: 2, GoalsFor: 2, GoalsAgainst: 2, Form: "D,D"},
		{ID: "st-05", TeamID: TeamIDLakeside, Played: 2, Drawn: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 3, Form: "D,L"},
		{ID: "st-06", TeamID: TeamIDWestgate, Played: 2, Lost: 2, GoalsFor: 1, GoalsAgainst: 5, Form: "L,L"},
	}
	for i := range rows {
		rows[i].Derive()
	}
	return rows
}

func SeedBlogs() []blog.Post {
	return []blog.Post{
		{
			ID:        "bl-001",
			Title:     "Northridge edge St. Marks in season opener",
			Preview:   "A late header settled a tense derby at the Sports Complex.",
			Content:   "Northridge Academy opened their title defence with a hard-fought 2-1 win over St. Marks College...",
			ReadTime:  4,
			Category:  blog.CategoryMatchReports,
			Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			ImagePath: "blogs/opener.jpg",
		},
		{
			ID:       "bl-002",
			Title:    "Fixture list confirmed for the new season",
			Preview:  "Eight weeks of football across six school grounds.",
			Content:  "The league office has confirmed the full fixture list for the 2026/27 season...",
			ReadTime: 3,
			Category: blog.CategoryLeagueNews,
			Date:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "bl-003",
			Title:    "Five minutes with Kofi Asante",
			Preview:  "The league's top scorer on pressure, penalties, and physics homework.",
			Content:  "We sat down with Northridge forward Kofi Asante after his brace in the opener...",
			ReadTime: 6,
			Category: blog.CategoryInterviews,
			Date:     time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedHighlights() []highlight.Highlight {
	return []highlight.Highlight{
		{
			ID:          "hl-001",
			Title:       "Northridge 2-1 St. Marks | Extended Highlights",
			Description: "Every goal and key chance from the season opener.",
			ImagePath:   "highlights/opener.jpg",
			VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			VideoID:     "dQw4w9WgXcQ",
		},
		{
			ID:          "hl-002",
			Title:       "Oakmont 3-1 Westgate | Extended Highlights",
			Description: "Oakmont Prep run riot at Westgate Grounds.",
			VideoURL:    "https://youtu.be/9bZkp7q19f0",
			VideoID:     "9bZkp7q19f0",
		},
	}
}

func SeedSponsors() []sponsor.Sponsor {
	return []sponsor.Sponsor{
		{ID: "sp-001", Name: "Harbor Sports Outfitters", Website: "https://harborsports.example", LogoPath: "sponsors/harbor.png"},
		{ID: "sp-002", Name: "Crestline Bank", Website: "https://crestline.example", LogoPath: "sponsors/crestline.png"},
		{ID: "sp-003", Name: "Fresh Fields Grocers", LogoPath: "sponsors/freshfields.png"},
	}
}

func SeedWatchlive() []watchlive.Stream {
	return []watchlive.Stream{
		{
			ID:       "wl-001",
			VideoURL: "https://www.youtube.com/watch?v=jNQXAC9IVRw",
			VideoID:  "jNQXAC9IVRw",
			IsActive: false,
		},
	}
}
