// Package session keeps the client's local session: the bearer token and a
// cached snapshot of the user's profile. Both live in a metadata.Repository
// under fixed keys, so any code holding the same repository sees the same
// session.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sleepcoach/internal/common"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
)

type Store struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewStore(repo metadata.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger.With("component", "session")}
}

// Save writes the token and, when profile is not nil, the profile. The two
// writes are independent: a failed profile write leaves the token in place.
func (s *Store) Save(ctx context.Context, token string, profile *models.Profile) error {
	if err := s.repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if profile == nil {
		return nil
	}
	return s.SaveProfile(ctx, profile)
}

// SaveProfile overwrites the cached profile.
func (s *Store) SaveProfile(ctx context.Context, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.repo.Set(ctx, common.ProfileKey, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Load returns the cached profile. Missing, unreadable or malformed data is
// reported as absent.
func (s *Store) Load(ctx context.Context) (*models.Profile, bool) {
	data, err := s.repo.Get(ctx, common.ProfileKey)
	if err != nil {
		s.logger.Warn(ctx, "reading cached profile failed", "error", err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn(ctx, "cached profile is malformed", "error", err)
		return nil, false
	}
	if err := p.Validate(); err != nil {
		s.logger.Warn(ctx, "cached profile is invalid", "error", err)
		return nil, false
	}
	return &p, true
}

// Token returns the stored token, or "" when there is none.
func (s *Store) Token(ctx context.Context) (string, error) {
	data, err := s.repo.Get(ctx, common.TokenKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(data), nil
}

func (s *Store) HasToken(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		s.logger.Warn(ctx, "reading token failed", "error", err)
		return false
	}
	return token != ""
}

// Clear removes the token and the cached profile. Other keys are kept.
func (s *Store) Clear(ctx context.Context) error {
	for _, key := range []string{common.TokenKey, common.ProfileKey} {
		if err := s.repo.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}
