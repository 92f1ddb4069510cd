package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"spendwise/internal/config"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// sessionService tracks per-login idle sessions.
type sessionService struct {
	db *gorm.DB
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(db *gorm.DB) SessionServicer {
	return &sessionService{db: db}
}

// Create records a new session for a freshly issued token.
func (s *sessionService) Create(userID, tokenHash string) (*models.Session, error) {
	session := &models.Session{
		UserID:         userID,
		TokenHash:      tokenHash,
		LastActivityAt: time.Now(),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return session, nil
}

// Touch stamps the session's last activity. A session idle for longer than
// the configured timeout is deleted before the rejection is returned, so an
// expired caller is fully logged out and must authenticate again.
func (s *sessionService) Touch(tokenHash string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("token_hash = ?", tokenHash).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	if now.Sub(session.LastActivityAt) > config.Get().SessionTimeout() {
		if err := s.db.Delete(&session).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrSessionExpired
	}

	session.LastActivityAt = now
	if err := s.db.Model(&session).Update("last_activity_at", now).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &session, nil
}

// RemainingMinutes returns whole minutes of idle time left, never negative.
// The value rounds up so a freshly touched session reports the full timeout.
func (s *sessionService) RemainingMinutes(session *models.Session) int {
	elapsed := time.Since(session.LastActivityAt)
	remaining := config.Get().SessionTimeout() - elapsed
	if remaining < 0 {
		return 0
	}
	return int(math.Ceil(remaining.Minutes()))
}

// Revoke deletes the session for the given token hash. Revoking an unknown
// token is not an error; the caller is logged out either way.
func (s *sessionService) Revoke(tokenHash string) error {
	if err := s.db.Where("token_hash = ?", tokenHash).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RevokeOthers deletes every other session of the user, keeping only the
// current one. Used after a password change.
func (s *sessionService) RevokeOthers(userID, keepTokenHash string) error {
	if err := s.db.Where("user_id = ? AND token_hash <> ?", userID, keepTokenHash).
		Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
