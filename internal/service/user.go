package service

import (
	"context"
	"errors"

	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	apperrors "github.com/ayodiya/hux-assessment-backend/internal/errors"
	"github.com/ayodiya/hux-assessment-backend/internal/model"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"gorm.io/gorm"
)

// UserStore is the persistence surface the auth workflow needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// UserService orchestrates registration, login, and logout over the
// credential store and token manager.
type UserService struct {
	users  UserStore
	creds  *CredentialStore
	tokens *TokenService
}

func NewUserService(users UserStore, creds *CredentialStore, tokens *TokenService) *UserService {
	return &UserService{
		users:  users,
		creds:  creds,
		tokens: tokens,
	}
}

// Register creates a new user and logs them straight in. Email matching is
// exact — case is preserved both on store and on lookup.
func (s *UserService) Register(ctx context.Context, req *dto.CreateUserRequest) (*dto.AuthResponse, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "Register")

	logger.InfoWithContext(ctx, "Registering user").
		String("email", req.Email).
		Log()

	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		logger.WarnWithContext(ctx, "Registration rejected, email taken").
			String("email", req.Email).
			Log()
		return nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhoneNo:   req.PhoneNo,
	}
	user.SetPassword(req.Password)

	if err := s.creds.EnsureHashed(user); err != nil {
		logger.ErrorWithContext(ctx, "Failed to hash password").
			String("email", req.Email).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.InfoWithContext(ctx, "User registered").
		String("email", user.Email).
		Uint("user_id", user.ID).
		Log()

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Login verifies credentials and issues a fresh token. Prior tokens are not
// invalidated; concurrent sessions are allowed.
func (s *UserService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "Login")

	logger.InfoWithContext(ctx, "Login attempt").
		String("email", email).
		Log()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.InfoWithContext(ctx, "Login failed, unknown email").
				String("email", email).
				Log()
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !s.creds.Verify(password, user.Password) {
		logger.WarnWithContext(ctx, "Login failed, password mismatch").
			String("email", email).
			Uint("user_id", user.ID).
			Log()
		return nil, apperrors.ErrPasswordIncorrect
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.InfoWithContext(ctx, "User logged in").
		String("email", email).
		Uint("user_id", user.ID).
		Log()

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Logout revokes the session token of an authenticated identity.
func (s *UserService) Logout(ctx context.Context, identity *ctxutil.Identity) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "Logout")

	if identity == nil || identity.Email == "" {
		return apperrors.ErrNotAuthenticated
	}

	if _, err := s.users.GetByEmail(ctx, identity.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnWithContext(ctx, "Logout for vanished user").
				String("email", identity.Email).
				Log()
			return apperrors.ErrUserNotLoggedIn
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.tokens.Revoke(ctx, identity.Token); err != nil {
		return err
	}

	logger.InfoWithContext(ctx, "User logged out").
		String("email", identity.Email).
		Uint("user_id", identity.UserID).
		Log()

	return nil
}
