package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/settings"
	"scanner-srv/internal/settings/repository"
	"scanner-srv/pkg/redis"
)

const (
	cacheKeyPrefix = "scanner:settings:"
	cacheTTL       = 5 * time.Minute
)

// GetByUserID returns the user's settings, reading through Redis when a
// client is wired; without one every read goes straight to Postgres. The
// cached payload keeps the token encrypted; decryption happens on the
// way out.
func (uc *implUseCase) GetByUserID(ctx context.Context, userID string) (model.Setting, error) {
	if s, ok := uc.cacheGet(ctx, userID); ok {
		return uc.decrypt(s)
	}

	s, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Setting{}, settings.ErrNotFound
		}
		uc.l.Errorf(ctx, "settings.usecase.GetByUserID: %v", err)
		return model.Setting{}, err
	}

	uc.cacheSet(ctx, userID, s)

	return uc.decrypt(s)
}

func (uc *implUseCase) cacheGet(ctx context.Context, userID string) (model.Setting, bool) {
	if uc.redis == nil {
		return model.Setting{}, false
	}

	cached, err := uc.redis.Get(ctx, cacheKeyPrefix+userID)
	if err != nil {
		if !redis.IsNilErr(err) {
			uc.l.Warnf(ctx, "settings.usecase.cacheGet: cache read failed: %v", err)
		}
		return model.Setting{}, false
	}
	if cached == "" {
		return model.Setting{}, false
	}

	var s model.Setting
	if err := json.Unmarshal([]byte(cached), &s); err != nil {
		uc.l.Warnf(ctx, "settings.usecase.cacheGet: bad cache payload for %s", userID)
		return model.Setting{}, false
	}
	return s, true
}

func (uc *implUseCase) cacheSet(ctx context.Context, userID string, s model.Setting) {
	if uc.redis == nil {
		return
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := uc.redis.Set(ctx, cacheKeyPrefix+userID, payload, cacheTTL); err != nil {
		uc.l.Warnf(ctx, "settings.usecase.cacheSet: cache write failed: %v", err)
	}
}

func (uc *implUseCase) decrypt(s model.Setting) (model.Setting, error) {
	if s.FacebookAccessToken == "" {
		return s, nil
	}
	plain, err := uc.encrypter.Decrypt(s.FacebookAccessToken)
	if err != nil {
		return model.Setting{}, fmt.Errorf("settings: failed to decrypt access token: %w", err)
	}
	s.FacebookAccessToken = plain
	return s, nil
}
