package httpapi

import (
	"net/http"
	"strings"

	"github.com/nsflhq/nsfl-api/internal/domain/match"
)

type matchWriteRequest struct {
	MatchDate         string   `json:"matchDate" validate:"required"`
	Time              string   `json:"time" validate:"required"`
	Venue             string   `json:"venue"`
	Week              int      `json:"week" validate:"gte=0"`
	Status            string   `json:"status" validate:"omitempty,oneof=upcoming running completed"`
	HomeTeam          string   `json:"homeTeam" validate:"required"`
	AwayTeam          string   `json:"awayTeam" validate:"required"`
	ScoreHome         *int     `json:"scoreHome"`
	ScoreAway         *int     `json:"scoreAway"`
	Referee           string   `json:"referee"`
	AssistantReferee1 string   `json:"assistantReferee1"`
	AssistantReferee2 string   `json:"assistantReferee2"`
	FourthOfficial    string   `json:"fourthOfficial"`
	HomePlayers       []string `json:"homePlayers"`
	AwayPlayers       []string `json:"awayPlayers"`
}

func (req matchWriteRequest) toModel() (match.Match, error) {
	date, err := parseDate(req.MatchDate)
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		MatchDate:         date,
		Time:              strings.TrimSpace(req.Time),
		Venue:             req.Venue,
		Week:              req.Week,
		Status:            req.Status,
		HomeTeamID:        req.HomeTeam,
		AwayTeamID:        req.AwayTeam,
		ScoreHome:         req.ScoreHome,
		ScoreAway:         req.ScoreAway,
		Referee:           req.Referee,
		AssistantReferee1: req.AssistantReferee1,
		AssistantReferee2: req.AssistantReferee2,
		FourthOfficial:    req.FourthOfficial,
		HomePlayerIDs:     req.HomePlayers,
		AwayPlayerIDs:     req.AwayPlayers,
	}, nil
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(matches, params)
	docs := make([]matchDTO, 0, len(window))
	for _, m := range window {
		docs = append(docs, matchToDTO(m))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	m, err := h.matchService.GetByID(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, matchToDTO(m), "")
}

func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtures")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := r.URL.Query().Get("filter")
	groups, err := h.matchService.Fixtures(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "filter", filter, "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(groups, params)
	envelope.Docs = weekGroupsToDTO(window)

	writeList(ctx, w, envelope)
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetResults")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.Results(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(groups, params)
	envelope.Docs = weekGroupsToDTO(window)

	writeList(ctx, w, envelope)
}

func (h *Handler) GetSpotlight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSpotlight")
	defer span.End()

	spotlight, err := h.matchService.Spotlight(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get spotlight failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, spotlightDTO{
		Current: entryToDTOPtr(spotlight.Current),
		Next:    entryToDTOPtr(spotlight.Next),
		Countdown: countdownDTO{
			Days:    spotlight.Countdown.Days,
			Hours:   spotlight.Countdown.Hours,
			Minutes: spotlight.Countdown.Minutes,
			Seconds: spotlight.Countdown.Seconds,
		},
	}, "")
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := req.toModel()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, matchToDTO(created), "Match created.")
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req matchWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := req.toModel()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	m.ID = matchID

	updated, err := h.matchService.Update(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, matchToDTO(updated), "Match updated.")
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Match deleted.")
}
