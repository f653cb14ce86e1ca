package httpapi

import (
	"net/http"
)

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSubscribers")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	subscribers, err := h.subscriberService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list subscribers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(subscribers, params)
	docs := make([]subscriberDTO, 0, len(window))
	for _, s := range window {
		docs = append(docs, subscriberToDTO(s))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) CreateSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSubscriber")
	defer span.End()

	var req subscribeRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.subscriberService.Subscribe(ctx, req.Email)
	if err != nil {
		h.logger.WarnContext(ctx, "create subscriber failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, subscriberToDTO(created), "Subscribed.")
}

func (h *Handler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSubscriber")
	defer span.End()

	subscriberID := r.PathValue("subscriberID")
	if err := h.subscriberService.Delete(ctx, subscriberID); err != nil {
		h.logger.WarnContext(ctx, "delete subscriber failed", "subscriber_id", subscriberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Subscriber removed.")
}
