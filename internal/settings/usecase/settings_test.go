package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/settings"
	"scanner-srv/internal/settings/repository"
	"scanner-srv/pkg/encrypter"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	setting model.Setting
	err     error
	calls   int
}

func (r *fakeSettingsRepo) GetByUserID(ctx context.Context, userID string) (model.Setting, error) {
	r.calls++
	return r.setting, r.err
}

// fakeCache overrides only Get and Set; anything else panics through the
// embedded nil interface if reached.
type fakeCache struct {
	redis.IRedis
	store map[string]string
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.store[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.store[key] = string(value.([]byte))
	return nil
}

func TestGetByUserID(t *testing.T) {
	ctx := context.Background()
	enc := encrypter.New("0123456789abcdef")

	encryptedToken, err := enc.Encrypt("fb-token")
	require.NoError(t, err)

	t.Run("without redis reads straight from postgres", func(t *testing.T) {
		repo := &fakeSettingsRepo{setting: model.Setting{
			UserID:              "u1",
			FacebookAccessToken: encryptedToken,
		}}
		uc := New(repo, nil, enc, log.NewNoop())

		s, err := uc.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "fb-token", s.FacebookAccessToken)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		payload, err := json.Marshal(model.Setting{
			UserID:              "u1",
			FacebookAccessToken: encryptedToken,
		})
		require.NoError(t, err)

		repo := &fakeSettingsRepo{err: repository.ErrNotFound}
		cache := &fakeCache{store: map[string]string{
			cacheKeyPrefix + "u1": string(payload),
		}}
		uc := New(repo, cache, enc, log.NewNoop())

		s, err := uc.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "fb-token", s.FacebookAccessToken)
		assert.Zero(t, repo.calls)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		repo := &fakeSettingsRepo{setting: model.Setting{
			UserID:              "u2",
			FacebookAccessToken: encryptedToken,
		}}
		cache := &fakeCache{store: map[string]string{}}
		uc := New(repo, cache, enc, log.NewNoop())

		s, err := uc.GetByUserID(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, "fb-token", s.FacebookAccessToken)
		assert.Contains(t, cache.store, cacheKeyPrefix+"u2")

		// The cached payload keeps the token encrypted.
		var cached model.Setting
		require.NoError(t, json.Unmarshal([]byte(cache.store[cacheKeyPrefix+"u2"]), &cached))
		assert.Equal(t, encryptedToken, cached.FacebookAccessToken)
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		repo := &fakeSettingsRepo{err: repository.ErrNotFound}
		uc := New(repo, nil, enc, log.NewNoop())

		_, err := uc.GetByUserID(ctx, "nope")
		require.ErrorIs(t, err, settings.ErrNotFound)
	})
}
