package service

import (
	"context"
	"errors"
	"time"

	"github.com/ayodiya/hux-assessment-backend/config"
	apperrors "github.com/ayodiya/hux-assessment-backend/internal/errors"
	"github.com/ayodiya/hux-assessment-backend/internal/model"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// TokenStore is the persistence surface the token manager needs.
type TokenStore interface {
	Create(ctx context.Context, token *model.Token) error
	GetByValue(ctx context.Context, tokenValue string) (*model.Token, error)
	DeleteByValue(ctx context.Context, tokenValue string) error
}

// TokenService issues, persists, and revokes bearer tokens. Expiry is
// embedded in the signed payload and checked at verification time; the
// stored session row carries no expiry state of its own.
type TokenService struct {
	secretKey string
	issuer    string
	expiry    time.Duration
	tokens    TokenStore
}

func NewTokenService(cfg config.JWTConfig, tokens TokenStore) *TokenService {
	return &TokenService{
		secretKey: cfg.Secret,
		issuer:    cfg.Issuer,
		expiry:    cfg.ExpirationTime,
		tokens:    tokens,
	}
}

// Issue signs a credential for the user and persists the session row. Every
// login produces a fresh token; earlier tokens stay valid.
func (s *TokenService) Issue(ctx context.Context, user *model.User) (string, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "Issue")

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"iss":        s.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to sign token").
			Uint("user_id", user.ID).
			Err(err).
			Log()
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.tokens.Create(ctx, &model.Token{UserID: user.ID, Token: tokenString}); err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Token issued").
		Uint("user_id", user.ID).
		Log()

	return tokenString, nil
}

// Revoke deletes the persisted session row for the token. A token with no
// session row (already revoked, never issued) is a recoverable domain
// condition, not a system error.
func (s *TokenService) Revoke(ctx context.Context, tokenValue string) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "Revoke")

	if _, err := s.tokens.GetByValue(ctx, tokenValue); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.InfoWithContext(ctx, "Revoke of unknown token").Log()
			return apperrors.ErrNoActiveSession
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.tokens.DeleteByValue(ctx, tokenValue); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoActiveSession
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return nil
}

// Validate checks the token's signature and embedded expiry and returns its
// claims. Expired tokens and any other verification failure map to distinct
// domain errors.
func (s *TokenService) Validate(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.WrapError(apperrors.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// Identity validates the token and resolves the principal it encodes.
func (s *TokenService) Identity(tokenString string) (ctxutil.Identity, error) {
	claims, err := s.Validate(tokenString)
	if err != nil {
		return ctxutil.Identity{}, err
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return ctxutil.Identity{}, apperrors.ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok {
		return ctxutil.Identity{}, apperrors.ErrTokenInvalid
	}

	return ctxutil.Identity{
		UserID: uint(userID),
		Email:  email,
		Token:  tokenString,
	}, nil
}
