package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
)

// highlightWriteRequest deliberately has no videoId, views, duration, or
// publishedDate fields; those are derived on write and a payload naming
// them fails decoding.
type highlightWriteRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Image       string `json:"image"`
	VideoURL    string `json:"videoUrl" validate:"required"`
}

func (req highlightWriteRequest) toModel() highlight.Highlight {
	return highlight.Highlight{
		Title:       req.Title,
		Description: req.Description,
		ImagePath:   req.Image,
		VideoURL:    req.VideoURL,
	}
}

func (h *Handler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHighlights")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.highlightService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list highlights failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(items, params)
	docs := make([]highlightDTO, 0, len(window))
	for _, item := range window {
		docs = append(docs, h.highlightToDTO(item))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetHighlight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHighlight")
	defer span.End()

	highlightID := r.PathValue("highlightID")
	item, err := h.highlightService.GetByID(ctx, highlightID)
	if err != nil {
		h.logger.WarnContext(ctx, "get highlight failed", "highlight_id", highlightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.highlightToDTO(item), "")
}

func (h *Handler) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateHighlight")
	defer span.End()

	var req highlightWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.highlightService.Create(ctx, req.toModel())
	if err != nil {
		h.logger.WarnContext(ctx, "create highlight failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, h.highlightToDTO(created), "Highlight created.")
}

func (h *Handler) UpdateHighlight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateHighlight")
	defer span.End()

	highlightID := r.PathValue("highlightID")

	var req highlightWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toModel()
	item.ID = highlightID

	updated, err := h.highlightService.Update(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update highlight failed", "highlight_id", highlightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.highlightToDTO(updated), "Highlight updated.")
}

func (h *Handler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteHighlight")
	defer span.End()

	highlightID := r.PathValue("highlightID")
	if err := h.highlightService.Delete(ctx, highlightID); err != nil {
		h.logger.WarnContext(ctx, "delete highlight failed", "highlight_id", highlightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Highlight deleted.")
}

func (h *Handler) RefreshHighlightStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshHighlightStats")
	defer span.End()

	report, err := h.highlightService.RefreshStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh highlight stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, refreshStatsDTO{
		Total:     report.Total,
		Refreshed: report.Refreshed,
		Failed:    report.Failed,
	}, "Highlight stats refreshed.")
}
