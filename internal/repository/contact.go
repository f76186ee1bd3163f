package repository

import (
	"context"
	"time"

	"github.com/ayodiya/hux-assessment-backend/internal/model"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// GetDuplicate finds a contact with the exact (firstName, lastName, phoneNo)
// triple under the owner — the de-duplication key.
func (r *ContactRepository) GetDuplicate(ctx context.Context, userID uint, firstName, lastName, phoneNo string) (*model.Contact, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "GetDuplicate")

	start := time.Now()
	var contact model.Contact

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND first_name = ? AND last_name = ? AND phone_no = ?",
			userID, firstName, lastName, phoneNo).
		First(&contact)
	duration := time.Since(start)

	if result.Error != nil {
		logger.DebugWithContext(ctx, "Duplicate contact lookup failed").
			Uint("owner_id", userID).
			Duration(duration).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &contact, nil
}

// GetBySlug finds the contact with slug scoped to the owner.
func (r *ContactRepository) GetBySlug(ctx context.Context, userID uint, slug string) (*model.Contact, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "GetBySlug")

	start := time.Now()
	var contact model.Contact

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND slug = ?", userID, slug).
		First(&contact)
	duration := time.Since(start)

	if result.Error != nil {
		logger.DebugWithContext(ctx, "Contact lookup by slug failed").
			Uint("owner_id", userID).
			String("slug", slug).
			Duration(duration).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &contact, nil
}

// GetAllByUser returns every contact owned by the user, newest first.
func (r *ContactRepository) GetAllByUser(ctx context.Context, userID uint) ([]model.Contact, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "GetAllByUser")

	start := time.Now()
	var contacts []model.Contact

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contacts)
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to list contacts").
			Uint("owner_id", userID).
			Duration(duration).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	logger.DebugWithContext(ctx, "Contacts listed").
		Uint("owner_id", userID).
		Int("count", len(contacts)).
		Duration(duration).
		Log()

	return contacts, nil
}

// Create inserts a new contact row.
func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "Create")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(contact)
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create contact").
			Uint("owner_id", contact.UserID).
			String("slug", contact.Slug).
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Contact created").
		Uint("owner_id", contact.UserID).
		String("slug", contact.Slug).
		Duration(duration).
		Log()

	return nil
}

// UpdateBySlug overwrites the full field set of the contact identified by
// slug under the owner and returns the updated row. Returns
// gorm.ErrRecordNotFound when the slug matches nothing for this owner.
func (r *ContactRepository) UpdateBySlug(ctx context.Context, userID uint, slug string, fields *model.Contact) (*model.Contact, error) {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "UpdateBySlug")

	start := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("user_id = ? AND slug = ?", userID, slug).
		Updates(map[string]interface{}{
			"first_name": fields.FirstName,
			"last_name":  fields.LastName,
			"email":      fields.Email,
			"phone_no":   fields.PhoneNo,
			"slug":       fields.Slug,
		})
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update contact").
			Uint("owner_id", userID).
			String("slug", slug).
			Duration(duration).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updated model.Contact
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND slug = ?", userID, fields.Slug).
		First(&updated).Error; err != nil {
		return nil, err
	}

	logger.InfoWithContext(ctx, "Contact updated").
		Uint("owner_id", userID).
		String("old_slug", slug).
		String("new_slug", updated.Slug).
		Duration(duration).
		Log()

	return &updated, nil
}

// DeleteBySlug removes the contact identified by slug under the owner.
// Returns gorm.ErrRecordNotFound when nothing matched.
func (r *ContactRepository) DeleteBySlug(ctx context.Context, userID uint, slug string) error {
	ctx = ctxutil.NewContextWithRequest(ctx, "repository", "DeleteBySlug")

	start := time.Now()
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND slug = ?", userID, slug).
		Delete(&model.Contact{})
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete contact").
			Uint("owner_id", userID).
			String("slug", slug).
			Duration(duration).
			Err(result.Error).
			Log()
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Contact deleted").
		Uint("owner_id", userID).
		String("slug", slug).
		Duration(duration).
		Log()

	return nil
}
