package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/player"
)

type playerWriteRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Position     string `json:"position" validate:"required,oneof=goalkeeper defender midfielder forward"`
	Image        string `json:"image"`
	Appearances  int    `json:"appearances" validate:"gte=0"`
	CleanSheets  int    `json:"cleanSheets" validate:"gte=0"`
	Goals        int    `json:"goals" validate:"gte=0"`
	YellowCards  int    `json:"yellowCards" validate:"gte=0"`
	RedCards     int    `json:"redCards" validate:"gte=0"`
	Nationality  string `json:"nationality"`
	DateOfBirth  string `json:"dateOfBirth"`
	HeightFeet   int    `json:"heightFeet" validate:"gte=0"`
	HeightInches int    `json:"heightInches" validate:"gte=0,lt=12"`
	WeightLbs    int    `json:"weightLbs" validate:"gte=0"`
	Team         string `json:"team"`
}

func (req playerWriteRequest) toModel() (player.Player, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return player.Player{}, err
	}

	return player.Player{
		Name:         req.Name,
		Position:     req.Position,
		ImagePath:    req.Image,
		Appearances:  req.Appearances,
		CleanSheets:  req.CleanSheets,
		Goals:        req.Goals,
		YellowCards:  req.YellowCards,
		RedCards:     req.RedCards,
		Nationality:  req.Nationality,
		DateOfBirth:  dob,
		HeightFeet:   req.HeightFeet,
		HeightInches: req.HeightInches,
		WeightLbs:    req.WeightLbs,
		TeamID:       req.Team,
	}, nil
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.URL.Query().Get("team")
	players, err := h.playerService.List(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(players, params)
	docs := make([]playerDTO, 0, len(window))
	for _, p := range window {
		docs = append(docs, h.playerToDTO(p))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.playerToDTO(p), "")
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := req.toModel()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, h.playerToDTO(created), "Player created.")
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req playerWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := req.toModel()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	p.ID = playerID

	updated, err := h.playerService.Update(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.playerToDTO(updated), "Player updated.")
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Player deleted.")
}
