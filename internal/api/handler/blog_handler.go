package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bit-milind42/Blog-Editor/internal/api/metrics"
	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
	"github.com/bit-milind42/Blog-Editor/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog operations.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// SaveDraft saves or updates a blog draft.
//
// @Summary      Save a blog draft
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveBlogRequest  true  "Draft contents"
// @Success      200   {object}  saveBlogResponse  "existing blog updated"
// @Success      201   {object}  saveBlogResponse  "new blog created"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /blogs/save-draft [post]
func (h *BlogHandler) SaveDraft(c echo.Context) error {
	return h.save(c, domain.StatusDraft, "Draft saved", "Draft updated")
}

// Publish publishes a blog post, stamping publishedAt.
//
// @Summary      Publish a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveBlogRequest  true  "Post contents"
// @Success      200   {object}  saveBlogResponse  "existing blog published"
// @Success      201   {object}  saveBlogResponse  "new blog created and published"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /blogs/publish [post]
func (h *BlogHandler) Publish(c echo.Context) error {
	return h.save(c, domain.StatusPublished, "Blog published", "Blog published")
}

func (h *BlogHandler) save(c echo.Context, target domain.BlogStatus, createdMsg, updatedMsg string) error {
	var req saveBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	input := ports.SaveBlogInput{
		ID:           req.ID,
		Title:        req.Title,
		Content:      req.Content,
		TargetStatus: target,
	}
	if req.Tags.IsList {
		input.Tags = req.Tags.List
	} else {
		input.TagsRaw = req.Tags.Raw
	}

	blog, created, err := h.service.Save(c.Request().Context(), input)
	if err != nil {
		return err
	}

	status := http.StatusOK
	msg := updatedMsg
	outcome := "updated"
	if created {
		status = http.StatusCreated
		msg = createdMsg
		outcome = "created"
	}
	metrics.PostsSavedTotal.WithLabelValues(string(target), outcome).Inc()

	return c.JSON(status, saveBlogResponse{Message: msg, Blog: blog})
}

// List returns all published blogs, newest first.
//
// @Summary      List published blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}   domain.Blog
// @Failure      500  {object}  map[string]string
// @Router       /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// ListAll returns every blog regardless of status, most recently edited first.
//
// @Summary      List all blogs including drafts
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Blog
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogs/all [get]
func (h *BlogHandler) ListAll(c echo.Context) error {
	blogs, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get returns a single blog by ID.
//
// @Summary      Get a blog by ID
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID (24-char hex)"
// @Success      200  {object}  domain.Blog
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Delete removes a blog by ID.
//
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID (24-char hex)"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Blog deleted successfully"})
}
