package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLink(t *testing.T) {
	h, store := setupTestHandler(t)
	r := setupTestRouter(h)

	alice := seedProfile(t, store, "Alice", "alice", 0, models.StatusActive)
	seedLinks(t, store, alice.ID, "A", "B")
	path := "/api/v1/admin/profiles/" + alice.ID.String() + "/links"

	t.Run("Appends at the end", func(t *testing.T) {
		w := doRequest(r, "POST", path, gin.H{"title": "C", "url": "https://c.example"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var l models.Link
		decode(t, w, &l)
		assert.Equal(t, 3, l.Order)
		assert.False(t, l.IsHot)
		assert.Equal(t, int64(0), l.Views)
		assert.Equal(t, models.StatusActive, l.Status)
		assert.Equal(t, alice.ID, l.ProfileID)
	})

	t.Run("Invalid url", func(t *testing.T) {
		w := doRequest(r, "POST", path, gin.H{"title": "Bad", "url": "not a url"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "url must be a valid URL")
	})

	t.Run("Missing title", func(t *testing.T) {
		w := doRequest(r, "POST", path, gin.H{"url": "https://x.example"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title is required")
	})

	t.Run("No profile selected", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/v1/admin/profiles/"+uuid.Nil.String()+"/links", gin.H{"title": "X", "url": "https://x.example"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "please select a profile first")
	})

	t.Run("Unknown profile", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/v1/admin/profiles/"+uuid.NewString()+"/links", gin.H{"title": "X", "url": "https://x.example"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListLinks(t *testing.T) {
	h, store := setupTestHandler(t)
	r := setupTestRouter(h)

	alice := seedProfile(t, store, "Alice", "alice", 0, models.StatusActive)
	links := seedLinks(t, store, alice.ID, "A", "B", "C")
	require.NoError(t, store.UpdateLink(context.Background(), links[1].ID, map[string]interface{}{"status": models.StatusInactive}))

	w := doRequest(r, "GET", "/api/v1/admin/profiles/"+alice.ID.String()+"/links", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing services.LinkListing
	decode(t, w, &listing)
	assert.Equal(t, alice.ID, listing.Profile.ID)
	assert.Equal(t, []string{"A", "B", "C"}, linkTitles(listing.Links))
	assert.Equal(t, 2, listing.ActiveCount)

	w = doRequest(r, "GET", "/api/v1/admin/profiles/"+uuid.NewString()+"/links", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReorderLinks(t *testing.T) {
	setup := func(t *testing.T) (http.Handler, string, []*models.Link) {
		h, store := setupTestHandler(t)
		alice := seedProfile(t, store, "Alice", "alice", 0, models.StatusActive)
		links := seedLinks(t, store, alice.ID, "A", "B", "C")
		return setupTestRouter(h), "/api/v1/admin/profiles/" + alice.ID.String() + "/links", links
	}

	t.Run("By position", func(t *testing.T) {
		r, path, _ := setup(t)
		w := doRequest(r, "POST", path+"/reorder", gin.H{"from": 2, "to": 0})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Links []models.Link `json:"links"`
		}
		decode(t, w, &resp)
		assert.Equal(t, []string{"C", "A", "B"}, linkTitles(resp.Links))
		assert.Equal(t, []int{1, 2, 3}, []int{resp.Links[0].Order, resp.Links[1].Order, resp.Links[2].Order})

		var listing services.LinkListing
		decode(t, doRequest(r, "GET", path, nil), &listing)
		assert.Equal(t, []string{"C", "A", "B"}, linkTitles(listing.Links))
	})

	t.Run("By ids", func(t *testing.T) {
		r, path, links := setup(t)
		w := doRequest(r, "POST", path+"/reorder", gin.H{"active_id": links[0].ID, "over_id": links[2].ID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Links []models.Link `json:"links"`
		}
		decode(t, w, &resp)
		assert.Equal(t, []string{"B", "C", "A"}, linkTitles(resp.Links))
	})

	t.Run("Stale id", func(t *testing.T) {
		r, path, links := setup(t)
		w := doRequest(r, "POST", path+"/reorder", gin.H{"active_id": uuid.NewString(), "over_id": links[0].ID})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Error updating order")
	})

	t.Run("Out of range", func(t *testing.T) {
		r, path, _ := setup(t)
		w := doRequest(r, "POST", path+"/reorder", gin.H{"from": 0, "to": 3})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty gesture", func(t *testing.T) {
		r, path, _ := setup(t)
		w := doRequest(r, "POST", path+"/reorder", gin.H{"from": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		r, path, links := setup(t)
		w := doRequest(r, "POST", path+"/reorder", gin.H{"active_id": "nope", "over_id": links[0].ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "active_id must be a valid id")
	})
}

func TestLinkByID(t *testing.T) {
	h, store := setupTestHandler(t)
	r := setupTestRouter(h)

	alice := seedProfile(t, store, "Alice", "alice", 0, models.StatusActive)
	links := seedLinks(t, store, alice.ID, "A", "B")
	path := "/api/v1/admin/links/" + links[0].ID.String()

	t.Run("Update", func(t *testing.T) {
		w := doRequest(r, "PUT", path, gin.H{"title": "Alpha", "url": "https://alpha.example"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var l models.Link
		decode(t, w, &l)
		assert.Equal(t, "Alpha", l.Title)
		assert.Equal(t, 1, l.Order)
	})

	t.Run("Update unknown", func(t *testing.T) {
		w := doRequest(r, "PUT", "/api/v1/admin/links/"+uuid.NewString(), gin.H{"title": "X", "url": "https://x.example"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Toggle hot", func(t *testing.T) {
		w := doRequest(r, "POST", path+"/toggle-hot", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var l models.Link
		decode(t, w, &l)
		assert.True(t, l.IsHot)
	})

	t.Run("Toggle status hides link publicly", func(t *testing.T) {
		w := doRequest(r, "POST", path+"/toggle-status", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var l models.Link
		decode(t, w, &l)
		assert.Equal(t, models.StatusInactive, l.Status)

		var view services.ProfileView
		decode(t, doRequest(r, "GET", "/api/v1/profiles/alice", nil), &view)
		assert.Equal(t, []string{"B"}, linkTitles(view.Links))

		var listing services.LinkListing
		decode(t, doRequest(r, "GET", "/api/v1/admin/profiles/"+alice.ID.String()+"/links", nil), &listing)
		assert.Len(t, listing.Links, 2)
	})

	t.Run("Toggle unknown", func(t *testing.T) {
		w := doRequest(r, "POST", "/api/v1/admin/links/"+uuid.NewString()+"/toggle-hot", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, doRequest(r, "DELETE", path, nil).Code)
		assert.Equal(t, http.StatusNotFound, doRequest(r, "DELETE", path, nil).Code)
	})
}
