package handler

import (
	"context"
	"net/http"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	apperrors "github.com/ayodiya/hux-assessment-backend/internal/errors"
	"github.com/ayodiya/hux-assessment-backend/internal/service"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// CreateUser registers a new account and answers 201 with a signed token
// and the safe user details.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "auth_handler", "CreateUser")

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Failed to bind create user request").Err(err).Log()
		c.JSON(http.StatusInternalServerError, constants.BuildServerErrorResponse())
		return
	}

	auth, err := h.userService.Register(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusCreated, constants.BuildSuccessResponse(map[string]any{
		constants.ResponseFieldMessage: "User registered successfully",
		"token":                        auth.Token,
		"userDetails":                  auth.User,
	}))
}

// Login verifies the credentials and answers with a fresh token and the
// user details.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "auth_handler", "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Failed to bind login request").Err(err).Log()
		c.JSON(http.StatusInternalServerError, constants.BuildServerErrorResponse())
		return
	}

	auth, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(map[string]any{
		constants.ResponseFieldMessage: "User logged in successfully",
		"token":                        auth.Token,
		"userDetails":                  auth.User,
	}))
}

// Logout revokes the session the request authenticated with.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "auth_handler", "Logout")

	identity := identityFromRequest(c)
	if err := h.userService.Logout(ctx, identity); err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(map[string]any{
		constants.ResponseFieldMessage: "Logout successfully",
	}))
}

// identityFromRequest resolves the identity the auth guard attached, or nil
// for anonymous requests.
func identityFromRequest(c *gin.Context) *ctxutil.Identity {
	identity, ok := ctxutil.IdentityFromContext(c.Request.Context())
	if !ok {
		return nil
	}
	return &identity
}

// respondError maps a workflow error onto the wire: domain failures keep
// their message and status, anything else collapses into the generic 500
// envelope.
func respondError(c *gin.Context, ctx context.Context, err error) {
	if domainErr := apperrors.GetDomainError(err); domainErr != nil {
		c.JSON(apperrors.ToHTTPStatus(domainErr), constants.BuildDomainErrorResponse(domainErr.Message))
		return
	}

	logger.ErrorWithContext(ctx, "Unhandled workflow error").Err(err).Log()
	c.JSON(http.StatusInternalServerError, constants.BuildServerErrorResponse())
}
