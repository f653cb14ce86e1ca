package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
)

type sponsorWriteRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Website string `json:"website" validate:"omitempty,url"`
	Logo    string `json:"logo"`
}

func (req sponsorWriteRequest) toModel() sponsor.Sponsor {
	return sponsor.Sponsor{
		Name:     req.Name,
		Website:  req.Website,
		LogoPath: req.Logo,
	}
}

func (h *Handler) ListSponsors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSponsors")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sponsors, err := h.sponsorService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sponsors failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(sponsors, params)
	docs := make([]sponsorDTO, 0, len(window))
	for _, item := range window {
		docs = append(docs, h.sponsorToDTO(item))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSponsor")
	defer span.End()

	sponsorID := r.PathValue("sponsorID")
	item, err := h.sponsorService.GetByID(ctx, sponsorID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sponsor failed", "sponsor_id", sponsorID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.sponsorToDTO(item), "")
}

func (h *Handler) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSponsor")
	defer span.End()

	var req sponsorWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.sponsorService.Create(ctx, req.toModel())
	if err != nil {
		h.logger.WarnContext(ctx, "create sponsor failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, h.sponsorToDTO(created), "Sponsor created.")
}

func (h *Handler) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSponsor")
	defer span.End()

	sponsorID := r.PathValue("sponsorID")

	var req sponsorWriteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item := req.toModel()
	item.ID = sponsorID

	updated, err := h.sponsorService.Update(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update sponsor failed", "sponsor_id", sponsorID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.sponsorToDTO(updated), "Sponsor updated.")
}

func (h *Handler) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSponsor")
	defer span.End()

	sponsorID := r.PathValue("sponsorID")
	if err := h.sponsorService.Delete(ctx, sponsorID); err != nil {
		h.logger.WarnContext(ctx, "delete sponsor failed", "sponsor_id", sponsorID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Sponsor deleted.")
}
