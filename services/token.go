package services

import (
	"errors"
	"time"

	"elm/cache"
	"elm/models"

	"gorm.io/gorm"
)

// RecordToken registers a freshly issued JWT so it can be revoked later.
func RecordToken(db *gorm.DB, userID uint, jti string, expiresAt time.Time) error {
	token := models.AuthToken{
		UserID:    userID,
		JTI:       jti,
		ExpiresAt: expiresAt,
	}
	return db.Create(&token).Error
}

// RevokeAllTokens marks every outstanding token of a user revoked. Called after a
// role change commits: old tokens must not keep working at the old privilege
// level. The advisory per-user cache entry is dropped so the next request hits
// the database.
func RevokeAllTokens(db *gorm.DB, userID uint) error {
	err := db.Model(&models.AuthToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
	if err != nil {
		return err
	}
	cache.InvalidateUserTokens(userID)
	return nil
}

// IsTokenRevoked checks whether a presented token has been revoked. Consults the
// advisory cache first; a cache hit means the user had a validated token since
// the last revocation, which is sufficient because revocation is always per-user.
func IsTokenRevoked(db *gorm.DB, userID uint, jti string) (bool, error) {
	if cache.UserTokensFresh(userID) {
		return false, nil
	}

	var token models.AuthToken
	err := db.Where("jti = ? AND user_id = ?", jti, userID).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown jti: never issued by us, treat as revoked
			return true, nil
		}
		return false, err
	}
	if token.Revoked {
		return true, nil
	}

	cache.MarkUserTokensFresh(userID)
	return false, nil
}
