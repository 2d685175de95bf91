package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Bio  string `json:"bio" binding:"max=2000"`
	Slug string `json:"slug" binding:"required,max=255"`
}

func (r ProfileRequest) input() services.ProfileInput {
	return services.ProfileInput{Name: r.Name, Bio: r.Bio, Slug: r.Slug}
}

// ListProfiles returns one page of profiles by name, or every profile with ?all=true.
func (h *Handler) ListProfiles(c *gin.Context) {
	ctx := c.Request.Context()

	if all, _ := strconv.ParseBool(c.Query("all")); all {
		profiles, err := h.profileService.ListAll(ctx)
		if err != nil {
			h.respondError(c, slog.LevelWarn, "fetching profiles", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profiles": profiles})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}

	listing, err := h.profileService.List(ctx, page)
	if err != nil {
		h.respondError(c, slog.LevelWarn, "fetching profiles", err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, slog.LevelWarn, "fetching profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) CreateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, "creating profile", err)
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), req.input())
	if err != nil {
		h.respondError(c, slog.LevelWarn, "creating profile", err)
		return
	}

	h.auditService.LogAction(services.AuditCreateProfile, profile.ID.String(), gin.H{"slug": profile.Slug}, c.ClientIP())
	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, "updating profile", err)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.respondError(c, slog.LevelWarn, "updating profile", err)
		return
	}

	h.auditService.LogAction(services.AuditUpdateProfile, profile.ID.String(), gin.H{"slug": profile.Slug}, c.ClientIP())
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, slog.LevelWarn, "deleting profile", err)
		return
	}

	h.auditService.LogAction(services.AuditDeleteProfile, id.String(), nil, c.ClientIP())
	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleProfileStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, slog.LevelError, "toggling profile status", err)
		return
	}

	h.auditService.LogAction(services.AuditToggleProfileStatus, id.String(), gin.H{"status": profile.Status}, c.ClientIP())
	c.JSON(http.StatusOK, profile)
}
