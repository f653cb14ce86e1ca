package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
)

type watchliveWriteRequest struct {
	VideoURL string `json:"videoUrl" validate:"required"`
	IsActive bool   `json:"isActive"`
}

func (req watchliveWriteRequest) toModel() watchlive.Stream {
	return watchlive.Stream{
		VideoURL: req.VideoURL,
		IsActive: req.IsActive,
	}
}

func (h *Handler) ListWatchlive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWatchlive")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	streams, err := h.watchliveService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list streams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(streams, params)
	docs := make([]watchliveDTO, 0, len(window))
	for _, stream := range window {
		docs = append(docs, watchliveToDTO(stream))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetActiveWatchlive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveWatchlive")
	defer span.End()

	stream, active, err := h.watchliveService.Active(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get active stream failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !active {
		writeDoc(ctx, w, http.StatusOK, nil, "No active stream.")
		return
	}

	writeDoc(ctx, w, http.StatusOK, watchliveToDTO(stream), "")
}

func (h *Handler) CreateWatchlive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWatchlive")
	defer span.End()

	var req watchliveWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.watchliveService.Create(ctx, req.toModel())
	if err != nil {
		h.logger.WarnContext(ctx, "create stream failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, watchliveToDTO(created), "Stream created.")
}

func (h *Handler) UpdateWatchlive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateWatchlive")
	defer span.End()

	streamID := r.PathValue("streamID")

	var req watchliveWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stream := req.toModel()
	stream.ID = streamID

	updated, err := h.watchliveService.Update(ctx, stream)
	if err != nil {
		h.logger.WarnContext(ctx, "update stream failed", "stream_id", streamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, watchliveToDTO(updated), "Stream updated.")
}

func (h *Handler) DeleteWatchlive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteWatchlive")
	defer span.End()

	streamID := r.PathValue("streamID")
	if err := h.watchliveService.Delete(ctx, streamID); err != nil {
		h.logger.WarnContext(ctx, "delete stream failed", "stream_id", streamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Stream deleted.")
}
