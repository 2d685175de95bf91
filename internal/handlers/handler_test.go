package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SomSankar/omni-links/internal/config"
	"github.com/SomSankar/omni-links/internal/models"
	"github.com/SomSankar/omni-links/internal/repository"
	"github.com/SomSankar/omni-links/internal/repository/repotest"
	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestHandler(t *testing.T) (*Handler, *repository.GormStore) {
	t.Helper()
	db := repotest.NewDB(t)
	store := repository.NewGormStore(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		BaseURL: "https://omnilinks.example",
	}

	// Use a dummy redis client (not connected) with no retries
	rdb := redis.NewClient(&redis.Options{
		Addr:       "localhost:1",
		MaxRetries: -1,
	})
	t.Cleanup(func() { rdb.Close() })

	directory := services.NewDirectoryService(store, rdb, time.Minute, logger)
	resolver := services.NewResolverService(store, logger)
	profiles := services.NewProfileService(store, directory)
	links := services.NewLinkService(store)
	audit := services.NewAuditService(db, logger)
	qr := services.NewQRService()

	h := NewHandler(cfg, logger, directory, resolver, profiles, links, audit, qr)
	return h, store
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "../../web/templates/*.html", "")
}

func doRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func seedProfile(t *testing.T, store repository.Store, name, slug string, views int64, status models.Status) *models.Profile {
	t.Helper()
	p := &models.Profile{Name: name, Slug: slug, Views: views, Status: status}
	require.NoError(t, store.CreateProfile(context.Background(), p))
	return p
}

func seedLinks(t *testing.T, store repository.Store, profileID uuid.UUID, titles ...string) []*models.Link {
	t.Helper()
	links := make([]*models.Link, 0, len(titles))
	for _, title := range titles {
		l := &models.Link{ProfileID: profileID, Title: title, URL: "https://example.com/" + title}
		require.NoError(t, store.CreateLink(context.Background(), l))
		links = append(links, l)
	}
	return links
}

func linkTitles(links []models.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Title
	}
	return out
}
