package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
)

// CacheStore is the key-value surface the contact cache needs, satisfied by
// pkg/redis.Client.
type CacheStore interface {
	IsEnabled() bool
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// ContactCache keeps each owner's contact list in Redis. It is strictly an
// optimization: every failure degrades to a database read and is never
// surfaced to the caller.
type ContactCache struct {
	client CacheStore
	ttl    time.Duration
}

func NewContactCache(client CacheStore, ttl time.Duration) *ContactCache {
	return &ContactCache{client: client, ttl: ttl}
}

func contactListKey(userID uint) string {
	return constants.CacheKeyContacts + strconv.FormatUint(uint64(userID), 10)
}

// GetList returns the cached contact list for the owner; the bool reports a
// usable hit.
func (c *ContactCache) GetList(ctx context.Context, userID uint) ([]dto.ContactResponse, bool) {
	if c == nil || c.client == nil || !c.client.IsEnabled() {
		return nil, false
	}

	data, hit, err := c.client.Get(ctx, contactListKey(userID))
	if err != nil {
		logger.WarnWithContext(ctx, "Contact cache read failed").
			Uint("owner_id", userID).
			Err(err).
			Log()
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var contacts []dto.ContactResponse
	if err := json.Unmarshal(data, &contacts); err != nil {
		logger.WarnWithContext(ctx, "Contact cache entry corrupt, dropping").
			Uint("owner_id", userID).
			Err(err).
			Log()
		_ = c.client.Del(ctx, contactListKey(userID))
		return nil, false
	}

	return contacts, true
}

// SetList stores the owner's contact list.
func (c *ContactCache) SetList(ctx context.Context, userID uint, contacts []dto.ContactResponse) {
	if c == nil || c.client == nil || !c.client.IsEnabled() {
		return
	}

	data, err := json.Marshal(contacts)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, contactListKey(userID), data, c.ttl); err != nil {
		logger.WarnWithContext(ctx, "Contact cache write failed").
			Uint("owner_id", userID).
			Err(err).
			Log()
	}
}

// Invalidate drops the owner's cached list. Called on every contact
// mutation.
func (c *ContactCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.client == nil || !c.client.IsEnabled() {
		return
	}

	if err := c.client.Del(ctx, contactListKey(userID)); err != nil {
		logger.WarnWithContext(ctx, "Contact cache invalidation failed").
			Uint("owner_id", userID).
			Err(err).
			Log()
	}
}
