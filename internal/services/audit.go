package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SomSankar/omni-links/internal/models"

	"gorm.io/gorm"
)

const (
	AuditCreateProfile       = "CREATE_PROFILE"
	AuditUpdateProfile       = "UPDATE_PROFILE"
	AuditDeleteProfile       = "DELETE_PROFILE"
	AuditToggleProfileStatus = "TOGGLE_PROFILE_STATUS"
	AuditCreateLink          = "CREATE_LINK"
	AuditUpdateLink          = "UPDATE_LINK"
	AuditDeleteLink          = "DELETE_LINK"
	AuditToggleLinkStatus    = "TOGGLE_LINK_STATUS"
	AuditToggleLinkHot       = "TOGGLE_LINK_HOT"
	AuditReorderLinks        = "REORDER_LINKS"
)

const auditBufferSize = 100

// AuditService writes admin actions to audit_logs from a background worker.
// Entries are dropped, not blocked on, when the buffer is full.
type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, auditBufferSize),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	s.logger.Info("Audit worker starting")
	for {
		select {
		case entry := <-s.entries:
			if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "action", entry.Action, "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Audit worker stopping")
			return
		}
	}
}

func (s *AuditService) LogAction(action, entityID string, details interface{}, ip string) {
	if s == nil {
		return
	}

	detailBytes, _ := json.Marshal(details)
	entry := models.AuditLog{
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping entry", "action", action)
	}
}
