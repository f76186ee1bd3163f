package service

import (
	"context"
	"sort"

	"github.com/ayodiya/hux-assessment-backend/internal/model"
	"gorm.io/gorm"
)

// In-memory stores standing in for the gorm repositories.

type fakeUserStore struct {
	users  map[string]*model.User
	nextID uint
	failOn string
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.failOn == "GetByEmail" {
		return nil, f.err
	}
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint) (*model.User, error) {
	if f.failOn == "GetByID" {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if f.failOn == "Create" {
		return f.err
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*model.Token
	nextID uint
	failOn string
	err    error
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*model.Token), nextID: 1}
}

func (f *fakeTokenStore) Create(_ context.Context, token *model.Token) error {
	if f.failOn == "Create" {
		return f.err
	}
	token.ID = f.nextID
	f.nextID++
	stored := *token
	f.tokens[token.Token] = &stored
	return nil
}

func (f *fakeTokenStore) GetByValue(_ context.Context, tokenValue string) (*model.Token, error) {
	if f.failOn == "GetByValue" {
		return nil, f.err
	}
	token, ok := f.tokens[tokenValue]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *token
	return &copied, nil
}

func (f *fakeTokenStore) DeleteByValue(_ context.Context, tokenValue string) error {
	if f.failOn == "DeleteByValue" {
		return f.err
	}
	if _, ok := f.tokens[tokenValue]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.tokens, tokenValue)
	return nil
}

type fakeContactStore struct {
	contacts map[string]*model.Contact // keyed by slug
	nextID   uint
	failOn   string
	err      error
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{contacts: make(map[string]*model.Contact), nextID: 1}
}

func (f *fakeContactStore) GetDuplicate(_ context.Context, userID uint, firstName, lastName, phoneNo string) (*model.Contact, error) {
	if f.failOn == "GetDuplicate" {
		return nil, f.err
	}
	for _, contact := range f.contacts {
		if contact.UserID == userID &&
			contact.FirstName == firstName &&
			contact.LastName == lastName &&
			contact.PhoneNo == phoneNo {
			copied := *contact
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContactStore) GetBySlug(_ context.Context, userID uint, slug string) (*model.Contact, error) {
	if f.failOn == "GetBySlug" {
		return nil, f.err
	}
	contact, ok := f.contacts[slug]
	if !ok || contact.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *contact
	return &copied, nil
}

func (f *fakeContactStore) GetAllByUser(_ context.Context, userID uint) ([]model.Contact, error) {
	if f.failOn == "GetAllByUser" {
		return nil, f.err
	}
	var out []model.Contact
	for _, contact := range f.contacts {
		if contact.UserID == userID {
			out = append(out, *contact)
		}
	}
	// Newest first, matching the repository ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeContactStore) Create(_ context.Context, contact *model.Contact) error {
	if f.failOn == "Create" {
		return f.err
	}
	contact.ID = f.nextID
	f.nextID++
	stored := *contact
	f.contacts[contact.Slug] = &stored
	return nil
}

func (f *fakeContactStore) UpdateBySlug(_ context.Context, userID uint, slug string, fields *model.Contact) (*model.Contact, error) {
	if f.failOn == "UpdateBySlug" {
		return nil, f.err
	}
	existing, ok := f.contacts[slug]
	if !ok || existing.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	delete(f.contacts, slug)
	updated := *existing
	updated.FirstName = fields.FirstName
	updated.LastName = fields.LastName
	updated.Email = fields.Email
	updated.PhoneNo = fields.PhoneNo
	updated.Slug = fields.Slug
	f.contacts[updated.Slug] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeContactStore) DeleteBySlug(_ context.Context, userID uint, slug string) error {
	if f.failOn == "DeleteBySlug" {
		return f.err
	}
	contact, ok := f.contacts[slug]
	if !ok || contact.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.contacts, slug)
	return nil
}
