package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/contact"
)

type contactWriteRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=32"`
	Message   string `json:"message" validate:"required,max=4000"`
	Agreement bool   `json:"agreement" validate:"eq=true"`
}

func (req contactWriteRequest) toModel() contact.Message {
	return contact.Message{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Agreement: req.Agreement,
	}
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContacts")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	messages, err := h.contactService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list contacts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(messages, params)
	docs := make([]contactDTO, 0, len(window))
	for _, m := range window {
		docs = append(docs, contactToDTO(m))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContact")
	defer span.End()

	contactID := r.PathValue("contactID")
	m, err := h.contactService.GetByID(ctx, contactID)
	if err != nil {
		h.logger.WarnContext(ctx, "get contact failed", "contact_id", contactID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, contactToDTO(m), "")
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateContact")
	defer span.End()

	var req contactWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.contactService.Create(ctx, req.toModel())
	if err != nil {
		h.logger.WarnContext(ctx, "create contact failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, contactToDTO(created), "Contact message received.")
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteContact")
	defer span.End()

	contactID := r.PathValue("contactID")
	if err := h.contactService.Delete(ctx, contactID); err != nil {
		h.logger.WarnContext(ctx, "delete contact failed", "contact_id", contactID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Contact message deleted.")
}
