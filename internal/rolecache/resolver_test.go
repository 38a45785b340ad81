// File: internal/rolecache/resolver_test.go
package rolecache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"careerhub_backend/internal/common"
	"careerhub_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLookup struct {
	calls int32

	roleStatusFn func(ctx context.Context, userID string) (common.Role, bool, error)
}

func (m *mockLookup) RoleStatus(ctx context.Context, userID string) (common.Role, bool, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.roleStatusFn != nil {
		return m.roleStatusFn(ctx, userID)
	}
	return common.RoleJobSeeker, true, nil
}

func (m *mockLookup) callCount() int32 {
	return atomic.LoadInt32(&m.calls)
}

func newTestResolver(lookup Lookup, ttl time.Duration) *Resolver {
	return NewResolver(lookup, &config.Config{RoleCacheTTL: ttl}, zap.NewNop())
}

func TestResolveCachesWithinTTL(t *testing.T) {
	lookup := &mockLookup{}
	r := newTestResolver(lookup, time.Minute)
	ctx := context.Background()

	st, err := r.Resolve(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, common.RoleJobSeeker, st.Role)
	assert.True(t, st.Confirmed)

	for i := 0; i < 5; i++ {
		_, err := r.Resolve(ctx, "user-a")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), lookup.callCount(), "repeat resolves within the TTL must hit the cache")
}

func TestResolveExpiresAfterTTL(t *testing.T) {
	lookup := &mockLookup{}
	r := newTestResolver(lookup, 20*time.Millisecond)
	ctx := context.Background()

	_, err := r.Resolve(ctx, "user-a")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = r.Resolve(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), lookup.callCount(), "an expired entry must be refetched")
}

func TestResolveCoalescesConcurrentLookups(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	lookup := &mockLookup{
		roleStatusFn: func(ctx context.Context, userID string) (common.Role, bool, error) {
			close(entered)
			<-release
			return common.RoleOrganizationOwner, true, nil
		},
	}
	r := newTestResolver(lookup, time.Minute)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	results := make([]Status, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.Resolve(ctx, "user-a")
		}(i)
	}

	// Wait for the first caller to be inside the lookup, give the rest time
	// to queue on the same flight, then release.
	<-entered
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, common.RoleOrganizationOwner, results[i].Role)
	}
	assert.Equal(t, int32(1), lookup.callCount(), "concurrent resolves for one user must share a single lookup")
}

func TestResolveDistinctUsersDoNotCoalesce(t *testing.T) {
	lookup := &mockLookup{}
	r := newTestResolver(lookup, time.Minute)
	ctx := context.Background()

	_, err := r.Resolve(ctx, "user-a")
	require.NoError(t, err)
	_, err = r.Resolve(ctx, "user-b")
	require.NoError(t, err)
	assert.Equal(t, int32(2), lookup.callCount())
}

func TestInvalidateForcesRefetch(t *testing.T) {
	lookup := &mockLookup{}
	r := newTestResolver(lookup, time.Minute)
	ctx := context.Background()

	_, err := r.Resolve(ctx, "user-a")
	require.NoError(t, err)

	r.Invalidate("user-a")

	_, err = r.Resolve(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), lookup.callCount(), "invalidation must bypass the cached entry")
}

// A role change in one tab must be visible to every other tab immediately,
// even when one of them already had a lookup on the wire when the change
// landed. The in-flight result predates the change and must not be cached.
func TestInvalidateDuringInFlightLookup(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var storedRole atomic.Value
	storedRole.Store(common.RoleJobSeeker)
	var block sync.Once
	lookup := &mockLookup{
		roleStatusFn: func(ctx context.Context, userID string) (common.Role, bool, error) {
			role := storedRole.Load().(common.Role)
			block.Do(func() {
				close(entered)
				<-release
			})
			return role, true, nil
		},
	}
	r := newTestResolver(lookup, time.Minute)
	ctx := context.Background()

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		st, err := r.Resolve(ctx, "user-a")
		assert.NoError(t, err)
		assert.Equal(t, common.RoleJobSeeker, st.Role)
	}()

	// While the first lookup is blocked mid-flight, the user's role changes
	// and the change invalidates the cache.
	<-entered
	storedRole.Store(common.RoleOrganizationOwner)
	r.Invalidate("user-a")
	close(release)
	<-firstDone

	st, err := r.Resolve(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, common.RoleOrganizationOwner, st.Role,
		"a resolve after invalidation must observe the post-change role, not the stale in-flight result")
	assert.Equal(t, int32(2), lookup.callCount())
}

func TestResolveErrorsAreSurfacedAndNotCached(t *testing.T) {
	lookup := &mockLookup{
		roleStatusFn: func(ctx context.Context, userID string) (common.Role, bool, error) {
			return "", false, common.ErrTransient
		},
	}
	r := newTestResolver(lookup, time.Minute)
	ctx := context.Background()

	_, err := r.Resolve(ctx, "user-a")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransient)

	// The failure must not be served from the cache on the next resolve.
	lookup.roleStatusFn = nil
	st, err := r.Resolve(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, common.RoleJobSeeker, st.Role)
	assert.Equal(t, int32(2), lookup.callCount())
}

func TestResolveUnconfirmedUser(t *testing.T) {
	lookup := &mockLookup{
		roleStatusFn: func(ctx context.Context, userID string) (common.Role, bool, error) {
			return "", false, nil
		},
	}
	r := newTestResolver(lookup, time.Minute)

	st, err := r.Resolve(context.Background(), "user-a")
	require.NoError(t, err)
	assert.False(t, st.Confirmed)
	assert.Equal(t, common.Role(""), st.Role)
}
