package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

// rankedRow wraps a freshly written row for the doc response. Position and
// tier are table-wide reads, so a single write reports only stored columns.
func rankedRow(r standings.Row) usecase.TableRow {
	return usecase.TableRow{Row: r, Form: standings.ParseForm(r.Form)}
}

// tableWriteRequest carries only the recorded results. Points and goal
// difference are derived server-side; a payload naming them fails decoding.
type tableWriteRequest struct {
	Team         string `json:"team" validate:"required"`
	Played       int    `json:"played" validate:"gte=0"`
	Won          int    `json:"won" validate:"gte=0"`
	Drawn        int    `json:"drawn" validate:"gte=0"`
	Lost         int    `json:"lost" validate:"gte=0"`
	GoalsFor     int    `json:"goalsFor" validate:"gte=0"`
	GoalsAgainst int    `json:"goalsAgainst" validate:"gte=0"`
	Form         string `json:"form" validate:"max=64"`
}

func (req tableWriteRequest) toModel() standings.Row {
	return standings.Row{
		TeamID:       req.Team,
		Played:       req.Played,
		Won:          req.Won,
		Drawn:        req.Drawn,
		Lost:         req.Lost,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
		Form:         req.Form,
	}
}

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTable")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingsService.Table(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(rows, params)
	docs := make([]tableRowDTO, 0, len(window))
	for _, row := range window {
		docs = append(docs, tableRowToDTO(row))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) CreateTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTableRow")
	defer span.End()

	var req tableWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.standingsService.Create(ctx, req.toModel())
	if err != nil {
		h.logger.WarnContext(ctx, "create table row failed", "team_id", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, tableRowToDTO(rankedRow(created)), "Table row created.")
}

func (h *Handler) UpdateTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTableRow")
	defer span.End()

	rowID := r.PathValue("rowID")

	var req tableWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	row := req.toModel()
	row.ID = rowID

	updated, err := h.standingsService.Update(ctx, row)
	if err != nil {
		h.logger.WarnContext(ctx, "update table row failed", "row_id", rowID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, tableRowToDTO(rankedRow(updated)), "Table row updated.")
}

func (h *Handler) DeleteTableRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTableRow")
	defer span.End()

	rowID := r.PathValue("rowID")
	if err := h.standingsService.Delete(ctx, rowID); err != nil {
		h.logger.WarnContext(ctx, "delete table row failed", "row_id", rowID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Table row deleted.")
}
