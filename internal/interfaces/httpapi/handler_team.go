package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/team"
)

type teamWriteRequest struct {
	Name    string   `json:"name" validate:"required,max=120"`
	Logo    string   `json:"logo"`
	Details string   `json:"details"`
	Manager string   `json:"manager"`
	Founded string   `json:"founded"`
	Stadium string   `json:"stadium"`
	Players []string `json:"players" validate:"omitempty,dive,required"`
}

func (req teamWriteRequest) toModel() (team.Team, error) {
	founded, err := parseOptionalDate(req.Founded)
	if err != nil {
		return team.Team{}, err
	}

	return team.Team{
		Name:      req.Name,
		LogoPath:  req.Logo,
		Details:   req.Details,
		Manager:   req.Manager,
		Founded:   founded,
		Stadium:   req.Stadium,
		PlayerIDs: req.Players,
	}, nil
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(teams, params)
	docs := make([]teamDTO, 0, len(window))
	for _, t := range window {
		docs = append(docs, h.teamToDTO(t))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	t, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.teamToDTO(t), "")
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := req.toModel()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, t)
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, h.teamToDTO(created), "Team created.")
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")

	var req teamWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := req.toModel()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	t.ID = teamID

	updated, err := h.teamService.Update(ctx, t)
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.teamToDTO(updated), "Team updated.")
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Team deleted.")
}
