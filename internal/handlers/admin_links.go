package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LinkRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	URL   string `json:"url" binding:"required,url"`
	Order int    `json:"order" binding:"min=0"`
}

// ReorderRequest carries either positions (from/to) or the dragged and
// drop-target link ids (active_id/over_id).
type ReorderRequest struct {
	From     *int   `json:"from" binding:"omitempty,min=0"`
	To       *int   `json:"to" binding:"omitempty,min=0"`
	ActiveID string `json:"active_id" binding:"omitempty,uuid"`
	OverID   string `json:"over_id" binding:"omitempty,uuid"`
}

func (h *Handler) ListLinks(c *gin.Context) {
	profileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	listing, err := h.linkService.List(c.Request.Context(), profileID)
	if err != nil {
		h.respondError(c, slog.LevelWarn, "fetching links", err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *Handler) CreateLink(c *gin.Context) {
	profileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, "creating link", err)
		return
	}

	link, err := h.linkService.Create(c.Request.Context(), services.LinkInput{
		ProfileID: profileID,
		Title:     req.Title,
		URL:       req.URL,
		Order:     req.Order,
	})
	if err != nil {
		h.respondError(c, slog.LevelWarn, "creating link", err)
		return
	}

	h.auditService.LogAction(services.AuditCreateLink, link.ID.String(), gin.H{"profile_id": link.ProfileID, "url": link.URL}, c.ClientIP())
	c.JSON(http.StatusCreated, link)
}

func (h *Handler) UpdateLink(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, "updating link", err)
		return
	}

	link, err := h.linkService.Update(c.Request.Context(), id, services.LinkInput{Title: req.Title, URL: req.URL})
	if err != nil {
		h.respondError(c, slog.LevelWarn, "updating link", err)
		return
	}

	h.auditService.LogAction(services.AuditUpdateLink, link.ID.String(), gin.H{"url": link.URL}, c.ClientIP())
	c.JSON(http.StatusOK, link)
}

func (h *Handler) DeleteLink(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, slog.LevelWarn, "deleting link", err)
		return
	}

	h.auditService.LogAction(services.AuditDeleteLink, id.String(), nil, c.ClientIP())
	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleLinkStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	link, err := h.linkService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, slog.LevelError, "toggling link status", err)
		return
	}

	h.auditService.LogAction(services.AuditToggleLinkStatus, id.String(), gin.H{"status": link.Status}, c.ClientIP())
	c.JSON(http.StatusOK, link)
}

func (h *Handler) ToggleLinkHot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	link, err := h.linkService.ToggleHot(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, slog.LevelError, "toggling hot flag", err)
		return
	}

	h.auditService.LogAction(services.AuditToggleLinkHot, id.String(), gin.H{"is_hot": link.IsHot}, c.ClientIP())
	c.JSON(http.StatusOK, link)
}

// ReorderLinks applies one drag gesture and returns the committed sequence.
func (h *Handler) ReorderLinks(c *gin.Context) {
	profileID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, "updating order", err)
		return
	}

	ctx := c.Request.Context()
	var (
		links []models.Link
		err   error
	)
	switch {
	case req.ActiveID != "" && req.OverID != "":
		links, err = h.linkService.ReorderByIDs(ctx, profileID, uuid.MustParse(req.ActiveID), uuid.MustParse(req.OverID))
	case req.From != nil && req.To != nil:
		links, err = h.linkService.Reorder(ctx, profileID, services.Move{From: *req.From, To: *req.To})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating order: provide from and to, or active_id and over_id"})
		return
	}
	if err != nil {
		h.respondError(c, slog.LevelError, "updating order", err)
		return
	}

	h.auditService.LogAction(services.AuditReorderLinks, profileID.String(), gin.H{"order": linkIDs(links)}, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"links": links})
}

func linkIDs(links []models.Link) []uuid.UUID {
	ids := make([]uuid.UUID, len(links))
	for i := range links {
		ids[i] = links[i].ID
	}
	return ids
}
