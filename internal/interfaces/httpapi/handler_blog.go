package httpapi

import (
	"net/http"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
)

type blogWriteRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Preview  string `json:"preview"`
	Content  string `json:"content"`
	ReadTime int    `json:"readTime" validate:"gte=0"`
	Category string `json:"category" validate:"required,oneof='Match Reports' 'League News' 'Team News' 'Interviews'"`
	Date     string `json:"date"`
	Image    string `json:"image"`
}

func (req blogWriteRequest) toModel() (blog.Post, error) {
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return blog.Post{}, err
	}

	return blog.Post{
		Title:     req.Title,
		Preview:   req.Preview,
		Content:   req.Content,
		ReadTime:  req.ReadTime,
		Category:  req.Category,
		Date:      date,
		ImagePath: req.Image,
	}, nil
}

func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBlogs")
	defer span.End()

	params, err := parsePageParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	category := r.URL.Query().Get("category")
	posts, err := h.blogService.List(ctx, category)
	if err != nil {
		h.logger.WarnContext(ctx, "list blogs failed", "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	window, envelope := paginate(posts, params)
	docs := make([]blogDTO, 0, len(window))
	for _, p := range window {
		docs = append(docs, h.blogToDTO(p))
	}
	envelope.Docs = docs

	writeList(ctx, w, envelope)
}

func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBlog")
	defer span.End()

	blogID := r.PathValue("blogID")
	p, err := h.blogService.GetByID(ctx, blogID)
	if err != nil {
		h.logger.WarnContext(ctx, "get blog failed", "blog_id", blogID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.blogToDTO(p), "")
}

func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBlog")
	defer span.End()

	var req blogWriteRequest
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

	created, err := h.blogService.Create(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "create blog failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusCreated, h.blogToDTO(created), "Blog created.")
}

func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBlog")
	defer span.End()

	blogID := r.PathValue("blogID")

	var req blogWriteRequest
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
	p.ID = blogID

	updated, err := h.blogService.Update(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "update blog failed", "blog_id", blogID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, h.blogToDTO(updated), "Blog updated.")
}

func (h *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBlog")
	defer span.End()

	blogID := r.PathValue("blogID")
	if err := h.blogService.Delete(ctx, blogID); err != nil {
		h.logger.WarnContext(ctx, "delete blog failed", "blog_id", blogID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeDoc(ctx, w, http.StatusOK, nil, "Blog deleted.")
}
