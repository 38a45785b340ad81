// File: internal/rolecache/resolver.go
package rolecache

import (
	"context"
	"sync"
	"time"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/config"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Status is the cached view of a user's role state.
type Status struct {
	Role      common.Role `json:"role"`
	Confirmed bool        `json:"role_confirmed"`
}

// Lookup is the read path to the persistent store. An empty role with
// confirmed=false means the user has not completed role selection.
type Lookup interface {
	RoleStatus(ctx context.Context, userID string) (common.Role, bool, error)
}

type cacheEntry struct {
	status    Status
	fetchedAt time.Time
}

// Resolver answers "what is this user's current role" for dependent views.
// Successful lookups are cached for a bounded TTL; concurrent callers for the
// same user share a single in-flight lookup instead of issuing duplicates.
// Lookup failures are surfaced and never cached; the layer does not retry on
// its own.
type Resolver struct {
	lookup Lookup
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
	// gens invalidation counter per user. A lookup records the generation it
	// started under and must not cache its result once the generation moved,
	// or an in-flight lookup would resurrect pre-invalidation state.
	gens  map[string]uint64
	group singleflight.Group
}

// NewResolver creates a role resolver with the TTL from configuration.
func NewResolver(lookup Lookup, cfg *config.Config, logger *zap.Logger) *Resolver {
	ttl := cfg.RoleCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Resolver{
		lookup:  lookup,
		ttl:     ttl,
		logger:  logger.Named("RoleCache"),
		entries: make(map[string]cacheEntry),
		gens:    make(map[string]uint64),
	}
}

// Resolve returns the user's role state, serving from the cache within the
// TTL and coalescing concurrent lookups for the same user.
func (r *Resolver) Resolve(ctx context.Context, userID string) (Status, error) {
	if st, ok := r.cached(userID); ok {
		return st, nil
	}

	v, err, shared := r.group.Do(userID, func() (interface{}, error) {
		// A coalesced caller may have filled the entry while we waited for
		// the flight slot.
		if st, ok := r.cached(userID); ok {
			return st, nil
		}

		r.mu.RLock()
		gen := r.gens[userID]
		r.mu.RUnlock()

		role, confirmed, err := r.lookup.RoleStatus(ctx, userID)
		if err != nil {
			return nil, err
		}

		st := Status{Role: role, Confirmed: confirmed}
		r.mu.Lock()
		// An invalidation while this lookup was in flight means the result
		// may predate the role change. Serve it to the callers that asked
		// for it, but do not cache it.
		if r.gens[userID] == gen {
			r.entries[userID] = cacheEntry{status: st, fetchedAt: time.Now()}
		}
		r.mu.Unlock()
		return st, nil
	})
	if err != nil {
		r.logger.Warn("Role lookup failed", zap.String("userID", userID), zap.Error(err))
		return Status{}, err
	}
	if shared {
		r.logger.Debug("Role lookup coalesced", zap.String("userID", userID))
	}
	return v.(Status), nil
}

// Invalidate drops the cached entry for userID. Callers of a successful role
// assignment must invalidate rather than wait for expiry.
func (r *Resolver) Invalidate(userID string) {
	r.mu.Lock()
	delete(r.entries, userID)
	// Bumping the generation stops a lookup already in flight from caching
	// its pre-change result when it lands.
	r.gens[userID]++
	r.mu.Unlock()
	// Detach future callers from the stale flight.
	r.group.Forget(userID)
}

func (r *Resolver) cached(userID string) (Status, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[userID]
	if !ok || time.Since(e.fetchedAt) > r.ttl {
		return Status{}, false
	}
	return e.status, true
}
