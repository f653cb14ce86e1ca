package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
	"github.com/nsflhq/nsfl-api/internal/domain/contact"
	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/domain/player"
	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
	"github.com/nsflhq/nsfl-api/internal/domain/subscriber"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type pageParams struct {
	Page  int
	Limit int
}

func parsePageParams(r *http.Request) (pageParams, error) {
	params := pageParams{Page: 1, Limit: defaultPageLimit}

	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return pageParams{}, fmt.Errorf("%w: page %q is not a positive integer", usecase.ErrInvalidInput, raw)
		}
		params.Page = page
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return pageParams{}, fmt.Errorf("%w: limit %q is not a positive integer", usecase.ErrInvalidInput, raw)
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		params.Limit = limit
	}

	return params, nil
}

// paginate windows items for one page and fills the envelope counters.
// Docs stays unset; the caller maps the window to DTOs first.
func paginate[T any](items []T, p pageParams) ([]T, listEnvelope) {
	total := len(items)
	totalPages := (total + p.Limit - 1) / p.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	envelope := listEnvelope{
		TotalDocs:     total,
		Limit:         p.Limit,
		TotalPages:    totalPages,
		Page:          p.Page,
		PagingCounter: (p.Page-1)*p.Limit + 1,
		HasPrevPage:   p.Page > 1,
		HasNextPage:   p.Page < totalPages,
	}
	if envelope.HasPrevPage {
		prev := p.Page - 1
		envelope.PrevPage = &prev
	}
	if envelope.HasNextPage {
		next := p.Page + 1
		envelope.NextPage = &next
	}

	start := (p.Page - 1) * p.Limit
	if start >= total {
		return []T{}, envelope
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return items[start:end], envelope
}

// mediaURL resolves a stored media path against the configured public base.
func (h *Handler) mediaURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return strings.TrimRight(h.mediaBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", usecase.ErrInvalidInput, raw)
}

func parseOptionalDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	return parseDate(raw)
}

func formatOptionalTime(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

type matchDTO struct {
	ID                string   `json:"id"`
	MatchDate         string   `json:"matchDate"`
	Time              string   `json:"time"`
	Venue             string   `json:"venue"`
	Week              int      `json:"week"`
	Status            string   `json:"status"`
	HomeTeam          string   `json:"homeTeam"`
	AwayTeam          string   `json:"awayTeam"`
	ScoreHome         *int     `json:"scoreHome,omitempty"`
	ScoreAway         *int     `json:"scoreAway,omitempty"`
	Referee           string   `json:"referee,omitempty"`
	AssistantReferee1 string   `json:"assistantReferee1,omitempty"`
	AssistantReferee2 string   `json:"assistantReferee2,omitempty"`
	FourthOfficial    string   `json:"fourthOfficial,omitempty"`
	HomePlayers       []string `json:"homePlayers,omitempty"`
	AwayPlayers       []string `json:"awayPlayers,omitempty"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// scheduledMatchDTO is a match with its resolved kickoff instant, used by
// the fixtures, results, and spotlight views.
type scheduledMatchDTO struct {
	matchDTO
	KickoffAt string `json:"kickoffAt"`
}

type weekGroupDTO struct {
	Week    int                 `json:"week"`
	Matches []scheduledMatchDTO `json:"matches"`
}

type countdownDTO struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type spotlightDTO struct {
	Current   *scheduledMatchDTO `json:"current"`
	Next      *scheduledMatchDTO `json:"next"`
	Countdown countdownDTO       `json:"countdown"`
}

type teamDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Logo      string   `json:"logo"`
	Details   string   `json:"details,omitempty"`
	Manager   string   `json:"manager,omitempty"`
	Founded   string   `json:"founded,omitempty"`
	Stadium   string   `json:"stadium,omitempty"`
	Players   []string `json:"players,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type playerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Image        string `json:"image"`
	Appearances  int    `json:"appearances"`
	CleanSheets  int    `json:"cleanSheets"`
	Goals        int    `json:"goals"`
	YellowCards  int    `json:"yellowCards"`
	RedCards     int    `json:"redCards"`
	Nationality  string `json:"nationality,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	HeightFeet   int    `json:"heightFeet,omitempty"`
	HeightInches int    `json:"heightInches,omitempty"`
	WeightLbs    int    `json:"weightLbs,omitempty"`
	Team         string `json:"team,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type tableRowDTO struct {
	ID             string   `json:"id"`
	Team           string   `json:"team"`
	Position       int      `json:"position,omitempty"`
	Tier           string   `json:"tier,omitempty"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
	UpdatedAt      string   `json:"updatedAt"`
}

type blogDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Preview   string `json:"preview,omitempty"`
	Content   string `json:"content,omitempty"`
	ReadTime  int    `json:"readTime"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type highlightDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image"`
	VideoURL      string `json:"videoUrl"`
	VideoID       string `json:"videoId"`
	Views         int64  `json:"views"`
	Duration      string `json:"duration"`
	PublishedDate string `json:"publishedDate,omitempty"`
	LastUpdated   string `json:"lastUpdated"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type watchliveDTO struct {
	ID        string `json:"id"`
	VideoURL  string `json:"videoUrl"`
	VideoID   string `json:"videoId"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type sponsorDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Website   string `json:"website,omitempty"`
	Logo      string `json:"logo"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type contactDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	Agreement bool   `json:"agreement"`
	CreatedAt string `json:"createdAt"`
}

type subscriberDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type refreshStatsDTO struct {
	Total     int `json:"total"`
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:                v.ID,
		MatchDate:         formatDate(v.MatchDate),
		Time:              v.Time,
		Venue:             v.Venue,
		Week:              v.Week,
		Status:            match.NormalizeStatus(v.Status),
		HomeTeam:          v.HomeTeamID,
		AwayTeam:          v.AwayTeamID,
		ScoreHome:         v.ScoreHome,
		ScoreAway:         v.ScoreAway,
		Referee:           v.Referee,
		AssistantReferee1: v.AssistantReferee1,
		AssistantReferee2: v.AssistantReferee2,
		FourthOfficial:    v.FourthOfficial,
		HomePlayers:       append([]string(nil), v.HomePlayerIDs...),
		AwayPlayers:       append([]string(nil), v.AwayPlayerIDs...),
		CreatedAt:         formatDate(v.CreatedAt),
		UpdatedAt:         formatDate(v.UpdatedAt),
	}
}

func entryToDTO(v match.Entry) scheduledMatchDTO {
	return scheduledMatchDTO{
		matchDTO:  matchToDTO(v.Match),
		KickoffAt: v.Kickoff.UTC().Format(time.RFC3339),
	}
}

func entryToDTOPtr(v *match.Entry) *scheduledMatchDTO {
	if v == nil {
		return nil
	}
	dto := entryToDTO(*v)
	return &dto
}

func weekGroupsToDTO(groups []match.WeekGroup) []weekGroupDTO {
	out := make([]weekGroupDTO, 0, len(groups))
	for _, g := range groups {
		matches := make([]scheduledMatchDTO, 0, len(g.Entries))
		for _, e := range g.Entries {
			matches = append(matches, entryToDTO(e))
		}
		out = append(out, weekGroupDTO{Week: g.Week, Matches: matches})
	}
	return out
}

func (h *Handler) teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		Logo:      h.mediaURL(v.LogoPath),
		Details:   v.Details,
		Manager:   v.Manager,
		Founded:   formatDate(v.Founded),
		Stadium:   v.Stadium,
		Players:   append([]string(nil), v.PlayerIDs...),
		CreatedAt: formatDate(v.CreatedAt),
		UpdatedAt: formatDate(v.UpdatedAt),
	}
}

func (h *Handler) playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		Position:     v.Position,
		Image:        h.mediaURL(v.ImagePath),
		Appearances:  v.Appearances,
		CleanSheets:  v.CleanSheets,
		Goals:        v.Goals,
		YellowCards:  v.YellowCards,
		RedCards:     v.RedCards,
		Nationality:  v.Nationality,
		DateOfBirth:  formatDate(v.DateOfBirth),
		HeightFeet:   v.HeightFeet,
		HeightInches: v.HeightInches,
		WeightLbs:    v.WeightLbs,
		Team:         v.TeamID,
		CreatedAt:    formatDate(v.CreatedAt),
		UpdatedAt:    formatDate(v.UpdatedAt),
	}
}

func tableRowToDTO(v usecase.TableRow) tableRowDTO {
	form := v.Form
	if form == nil {
		form = []string{}
	}
	return tableRowDTO{
		ID:             v.Row.ID,
		Team:           v.Row.TeamID,
		Position:       v.Position,
		Tier:           v.Tier,
		Played:         v.Row.Played,
		Won:            v.Row.Won,
		Drawn:          v.Row.Drawn,
		Lost:           v.Row.Lost,
		GoalsFor:       v.Row.GoalsFor,
		GoalsAgainst:   v.Row.GoalsAgainst,
		GoalDifference: v.Row.GoalDifference,
		Points:         v.Row.Points,
		Form:           form,
		UpdatedAt:      formatDate(v.Row.UpdatedAt),
	}
}

func (h *Handler) blogToDTO(v blog.Post) blogDTO {
	return blogDTO{
		ID:        v.ID,
		Title:     v.Title,
		Preview:   v.Preview,
		Content:   v.Content,
		ReadTime:  v.ReadTime,
		Category:  v.Category,
		Date:      formatDate(v.Date),
		Image:     h.mediaURL(v.ImagePath),
		CreatedAt: formatDate(v.CreatedAt),
		UpdatedAt: formatDate(v.UpdatedAt),
	}
}

func (h *Handler) highlightToDTO(v highlight.Highlight) highlightDTO {
	return highlightDTO{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Image:         h.mediaURL(v.ImagePath),
		VideoURL:      v.VideoURL,
		VideoID:       v.VideoID,
		Views:         v.Views,
		Duration:      v.Duration,
		PublishedDate: formatOptionalTime(v.PublishedDate),
		LastUpdated:   formatDate(v.LastUpdated),
		CreatedAt:     formatDate(v.CreatedAt),
		UpdatedAt:     formatDate(v.UpdatedAt),
	}
}

func watchliveToDTO(v watchlive.Stream) watchliveDTO {
	return watchliveDTO{
		ID:        v.ID,
		VideoURL:  v.VideoURL,
		VideoID:   v.VideoID,
		IsActive:  v.IsActive,
		CreatedAt: formatDate(v.CreatedAt),
		UpdatedAt: formatDate(v.UpdatedAt),
	}
}

func (h *Handler) sponsorToDTO(v sponsor.Sponsor) sponsorDTO {
	return sponsorDTO{
		ID:        v.ID,
		Name:      v.Name,
		Website:   v.Website,
		Logo:      h.mediaURL(v.LogoPath),
		CreatedAt: formatDate(v.CreatedAt),
		UpdatedAt: formatDate(v.UpdatedAt),
	}
}

func contactToDTO(v contact.Message) contactDTO {
	return contactDTO{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Message:   v.Message,
		Agreement: v.Agreement,
		CreatedAt: formatDate(v.CreatedAt),
	}
}

func subscriberToDTO(v subscriber.Subscriber) subscriberDTO {
	return subscriberDTO{
		ID:        v.ID,
		Email:     v.Email,
		CreatedAt: formatDate(v.CreatedAt),
	}
}
