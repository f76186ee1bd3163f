package router

import (
	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

func (r *Router) setupContactRoutes(api *gin.RouterGroup) {
	contact := api.Group("/contact")
	contact.Use(r.jwtMiddleware.RequireAuth())

	contact.POST("/add",
		r.validation.ValidateRequestBody(func() interface{} { return &dto.ContactRequest{} }),
		r.contactHandler.Add)

	contact.GET("/all", r.contactHandler.All)
	contact.GET("/:slug", r.contactHandler.Single)

	contact.PATCH("/:slug",
		r.validation.ValidateRequestBody(func() interface{} { return &dto.ContactRequest{} }),
		r.contactHandler.Edit)

	contact.DELETE("/:slug", r.contactHandler.Delete)
}
