package repository

import (
	"context"
	"time"

	"github.com/ayodiya/hux-assessment-backend/internal/model"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create persists a session row for a freshly issued token.
func (r *TokenRepository) Create(ctx context.Context, token *model.Token) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "Create")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(token)
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to persist token").
			Uint("user_id", token.UserID).
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.DebugWithContext(ctx, "Token persisted").
		Uint("user_id", token.UserID).
		Duration(duration).
		Log()

	return nil
}

// GetByValue finds the session row holding the exact token value. Returns
// gorm.ErrRecordNotFound when no session exists (already revoked or never
// issued).
func (r *TokenRepository) GetByValue(ctx context.Context, tokenValue string) (*model.Token, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "GetByValue")

	start := time.Now()
	var token model.Token

	result := r.db.WithContext(ctx).Where("token = ?", tokenValue).First(&token)
	duration := time.Since(start)

	if result.Error != nil {
		logger.DebugWithContext(ctx, "Token lookup failed").
			Duration(duration).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &token, nil
}

// DeleteByValue removes the session row for a token value. Deleting an
// already deleted token reports gorm.ErrRecordNotFound; a second revoke is
// not idempotent at the storage level.
func (r *TokenRepository) DeleteByValue(ctx context.Context, tokenValue string) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "DeleteByValue")

	start := time.Now()
	result := r.db.WithContext(ctx).Where("token = ?", tokenValue).Delete(&model.Token{})
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete token").
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Token revoked").
		Duration(duration).
		Log()

	return nil
}
