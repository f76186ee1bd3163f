package router

import (
	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/create-user",
		r.validation.ValidateRequestBody(func() interface{} { return &dto.CreateUserRequest{} }),
		r.authHandler.CreateUser)

	auth.POST("/login",
		r.validation.ValidateRequestBody(func() interface{} { return &dto.LoginRequest{} }),
		r.authHandler.Login)

	auth.GET("/logout",
		r.jwtMiddleware.RequireAuth(),
		r.authHandler.Logout)
}
