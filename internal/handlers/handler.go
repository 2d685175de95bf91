package handlers

import (
	"log/slog"

	"github.com/SomSankar/omni-links/internal/config"
	"github.com/SomSankar/omni-links/internal/services"
)

type Handler struct {
	cfg              config.Config
	logger           *slog.Logger
	directoryService *services.DirectoryService
	resolverService  *services.ResolverService
	profileService   *services.ProfileService
	linkService      *services.LinkService
	auditService     *services.AuditService
	qrService        *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	directoryService *services.DirectoryService,
	resolverService *services.ResolverService,
	profileService *services.ProfileService,
	linkService *services.LinkService,
	auditService *services.AuditService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:              cfg,
		logger:           logger,
		directoryService: directoryService,
		resolverService:  resolverService,
		profileService:   profileService,
		linkService:      linkService,
		auditService:     auditService,
		qrService:        qrService,
	}
}
