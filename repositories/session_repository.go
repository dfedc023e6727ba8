package repositories

import (
	"errors"
	"time"

	"gin-catalog/models"

	"gorm.io/gorm"
)

type ISessionRepository interface {
	RevokeSession(token string, expiresAt int64) error
	IsSessionRevoked(token string) (bool, error)
	CleanExpiredSessions() error
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) RevokeSession(token string, expiresAt int64) error {
	revoked := models.RevokedSession{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := r.db.Create(&revoked).Error; err != nil {
		// A session revoked twice is already in the state we want.
		if isDuplicate(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *SessionRepository) IsSessionRevoked(token string) (bool, error) {
	var revoked models.RevokedSession
	err := r.db.Where("token = ?", token).First(&revoked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SessionRepository) CleanExpiredSessions() error {
	now := time.Now().Unix()
	return r.db.Where("expires_at < ?", now).Delete(&models.RevokedSession{}).Error
}
