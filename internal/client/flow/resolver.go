package flow

import (
	"context"

	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

// ProfileSource supplies the inputs of Resolve.
type ProfileSource interface {
	HasToken(ctx context.Context) bool
	// RefreshProfile fetches the profile from the server and caches it. It
	// returns nil when the refresh failed.
	RefreshProfile(ctx context.Context) *models.Profile
	CachedProfile(ctx context.Context) (*models.Profile, bool)
}

// Resolver gathers session inputs and resolves the current State.
type Resolver struct {
	src ProfileSource
}

func NewResolver(src ProfileSource) *Resolver {
	return &Resolver{src: src}
}

// State resolves the current state. With fresh set the profile is refreshed
// first; a failed refresh falls back to the cached profile.
func (r *Resolver) State(ctx context.Context, fresh bool) State {
	if !r.src.HasToken(ctx) {
		return State{Kind: Anonymous}
	}

	var profile *models.Profile
	if fresh {
		profile = r.src.RefreshProfile(ctx)
	}
	if profile == nil {
		profile, _ = r.src.CachedProfile(ctx)
	}
	return Resolve(true, profile)
}

// Enter resolves the state for page and applies Guard to it.
func (r *Resolver) Enter(ctx context.Context, page Route) (State, Route, bool) {
	s := r.State(ctx, RequiresFreshProfile(page))
	to, redirect := Guard(page, s)
	return s, to, redirect
}
