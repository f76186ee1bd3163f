package handler

import (
	"net/http"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	"github.com/ayodiya/hux-assessment-backend/internal/service"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Add stores a new contact for the authenticated user.
func (h *ContactHandler) Add(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "contact_handler", "Add")

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Failed to bind contact request").Err(err).Log()
		c.JSON(http.StatusInternalServerError, constants.BuildServerErrorResponse())
		return
	}

	if err := h.contactService.AddContact(ctx, identityFromRequest(c), &req); err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusCreated, constants.BuildSuccessResponse(map[string]any{
		constants.ResponseFieldMessage: "Contact created successfully",
	}))
}

// All lists every contact owned by the authenticated user, newest first.
func (h *ContactHandler) All(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "contact_handler", "All")

	contacts, err := h.contactService.ListContacts(ctx, identityFromRequest(c))
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(map[string]any{
		"allContacts": contacts,
	}))
}

// Single fetches one contact by its slug.
func (h *ContactHandler) Single(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "contact_handler", "Single")

	contact, err := h.contactService.GetContact(ctx, identityFromRequest(c), c.Param("slug"))
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(map[string]any{
		"contact": contact,
	}))
}

// Edit replaces the editable fields of an existing contact. The slug is
// regenerated from the new first name, so the response carries the updated
// record including its new slug.
func (h *ContactHandler) Edit(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "contact_handler", "Edit")

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Failed to bind contact request").Err(err).Log()
		c.JSON(http.StatusInternalServerError, constants.BuildServerErrorResponse())
		return
	}

	edited, err := h.contactService.EditContact(ctx, identityFromRequest(c), c.Param("slug"), &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(map[string]any{
		"editedContact": edited,
	}))
}

// Delete removes a contact by its slug.
func (h *ContactHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "contact_handler", "Delete")

	if err := h.contactService.DeleteContact(ctx, identityFromRequest(c), c.Param("slug")); err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(map[string]any{
		constants.ResponseFieldMessage: "Contact deleted successfully",
	}))
}
