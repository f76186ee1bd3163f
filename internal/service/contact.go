package service

import (
	"context"
	"errors"

	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	apperrors "github.com/ayodiya/hux-assessment-backend/internal/errors"
	"github.com/ayodiya/hux-assessment-backend/internal/model"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/ayodiya/hux-assessment-backend/pkg/slug"
	"gorm.io/gorm"
)

// ContactStore is the persistence surface the contact workflow needs.
type ContactStore interface {
	GetDuplicate(ctx context.Context, userID uint, firstName, lastName, phoneNo string) (*model.Contact, error)
	GetBySlug(ctx context.Context, userID uint, slug string) (*model.Contact, error)
	GetAllByUser(ctx context.Context, userID uint) ([]model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	UpdateBySlug(ctx context.Context, userID uint, slug string, fields *model.Contact) (*model.Contact, error)
	DeleteBySlug(ctx context.Context, userID uint, slug string) error
}

// ContactService owns contact CRUD scoped to an authenticated owner. The
// cache is optional; a nil cache disables it.
type ContactService struct {
	contacts ContactStore
	cache    *ContactCache
}

func NewContactService(contacts ContactStore, cache *ContactCache) *ContactService {
	return &ContactService{
		contacts: contacts,
		cache:    cache,
	}
}

// AddContact creates a contact for the owner. A contact with an identical
// (firstName, lastName, phoneNo) triple under the same owner is a conflict;
// the check-then-create pair runs without a transaction, so a concurrent
// identical request can slip through — accepted behavior.
func (s *ContactService) AddContact(ctx context.Context, identity *ctxutil.Identity, req *dto.ContactRequest) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "AddContact")

	if identity == nil {
		return apperrors.ErrNotAuthenticated
	}

	_, err := s.contacts.GetDuplicate(ctx, identity.UserID, req.FirstName, req.LastName, req.PhoneNo)
	if err == nil {
		logger.InfoWithContext(ctx, "Contact rejected as duplicate").
			Uint("owner_id", identity.UserID).
			Log()
		return apperrors.ErrContactExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	contact := &model.Contact{
		UserID:    identity.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhoneNo:   req.PhoneNo,
		Slug:      slug.Generate(req.FirstName),
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, identity.UserID)

	return nil
}

// ListContacts returns every contact owned by the identity.
func (s *ContactService) ListContacts(ctx context.Context, identity *ctxutil.Identity) ([]dto.ContactResponse, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "ListContacts")

	if identity == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	if cached, hit := s.cache.GetList(ctx, identity.UserID); hit {
		logger.DebugWithContext(ctx, "Contact list served from cache").
			Uint("owner_id", identity.UserID).
			Int("count", len(cached)).
			Log()
		return cached, nil
	}

	contacts, err := s.contacts.GetAllByUser(ctx, identity.UserID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	responses := dto.NewContactResponses(contacts)
	s.cache.SetList(ctx, identity.UserID, responses)

	return responses, nil
}

// GetContact fetches a single contact by slug, scoped to the owner.
func (s *ContactService) GetContact(ctx context.Context, identity *ctxutil.Identity, slugValue string) (*dto.ContactResponse, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "GetContact")

	if identity == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	contact, err := s.contacts.GetBySlug(ctx, identity.UserID, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewContactResponse(contact), nil
}

// EditContact overwrites the full field set of the contact identified by
// slug and returns the updated record. The slug is regenerated from the
// submitted first name on every edit, even when the name is unchanged, so
// the public identifier churns with each edit.
func (s *ContactService) EditContact(ctx context.Context, identity *ctxutil.Identity, slugValue string, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "EditContact")

	if identity == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	if _, err := s.contacts.GetBySlug(ctx, identity.UserID, slugValue); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	fields := &model.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		PhoneNo:   req.PhoneNo,
		Slug:      slug.Generate(req.FirstName),
	}

	updated, err := s.contacts.UpdateBySlug(ctx, identity.UserID, slugValue, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, identity.UserID)

	return dto.NewContactResponse(updated), nil
}

// DeleteContact removes the contact identified by slug under the owner.
func (s *ContactService) DeleteContact(ctx context.Context, identity *ctxutil.Identity, slugValue string) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "service", "DeleteContact")

	if identity == nil {
		return apperrors.ErrNotAuthenticated
	}

	if err := s.contacts.DeleteBySlug(ctx, identity.UserID, slugValue); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, identity.UserID)

	return nil
}
