package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ShowIndex(c *gin.Context) {
	profiles, err := h.directoryService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load directory", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Could not load profiles"})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Profiles": profiles,
	})
}

func (h *Handler) ShowProfile(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.resolverService.Resolve(c.Request.Context(), slug)
	if errors.Is(err, services.ErrNotFound) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Slug": slug})
		return
	}
	if err != nil {
		h.logger.Error("Failed to resolve profile", "slug", slug, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Could not load profile"})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Profile": view.Profile,
		"Links":   view.Links,
	})
}

// ProfileQRCode renders a PNG pointing at the profile's public URL.
func (h *Handler) ProfileQRCode(c *gin.Context) {
	slug := c.Param("slug")

	profile, err := h.resolverService.Lookup(c.Request.Context(), slug)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to look up profile for QR code", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	png, err := h.qrService.GenerateQRCode(services.QROptions{
		Content: strings.TrimRight(h.cfg.BaseURL, "/") + "/" + profile.Slug,
		Size:    size,
		FgColor: c.Query("fg"),
		BgColor: c.Query("bg"),
	})
	if err != nil {
		h.logger.Error("Failed to generate QR code", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}

// FollowLink counts a click and redirects to the link's destination.
func (h *Handler) FollowLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}

	target, err := h.resolverService.FollowLink(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}
	if err != nil {
		h.logger.Error("Failed to follow link", "link_id", id, "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "Could not open link"})
		return
	}

	c.Redirect(http.StatusFound, target)
}

func (h *Handler) GetDirectory(c *gin.Context) {
	profiles, err := h.directoryService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load directory", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *Handler) GetPublicProfile(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.resolverService.Resolve(c.Request.Context(), slug)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to resolve profile", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
