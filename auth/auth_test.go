package auth

import (
	"context"
	"testing"
	"time"

	"github.com/clubhive/clubhive-be/apperr"
	"github.com/clubhive/clubhive-be/db/memory"
	"github.com/clubhive/clubhive-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * 60 * 60

func newTestResolver(now int64) (*Resolver, *memory.Store) {
	store := memory.New()
	return &Resolver{
		db:  store,
		now: func() time.Time { return time.Unix(now, 0) },
	}, store
}

func TestByToken_EmptyCredential(t *testing.T) {
	resolver, _ := newTestResolver(1000000)

	resolved, err := resolver.ByToken(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, resolved.Login)
	assert.False(t, resolved.AllowNsfw)
	assert.Zero(t, resolved.UserID)
}

func TestByToken_UnknownCredential(t *testing.T) {
	resolver, _ := newTestResolver(1000000)

	resolved, err := resolver.ByToken(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, resolved.Login)
}

func TestByToken_ExpiredCredential(t *testing.T) {
	resolver, store := newTestResolver(1000000)
	store.AddUser(model.User{Id: 5, RegisteredAt: 1000000 - 400*day})
	store.AddAccessToken(model.AccessToken{Token: "stale", UserId: 5, ExpiresAt: 999999})

	resolved, err := resolver.ByToken(context.Background(), "stale")
	require.NoError(t, err)
	assert.False(t, resolved.Login)
}

func TestByToken_ValidCredential(t *testing.T) {
	resolver, store := newTestResolver(1000000)
	store.AddUser(model.User{Id: 5, GroupId: 9, RegisteredAt: 1000000 - 400*day})
	store.AddAccessToken(model.AccessToken{Token: "fresh", UserId: 5, ExpiresAt: 2000000})
	store.SetPermissionBlob(9, []byte(`a:1:{s:18:"manage_topic_state";s:1:"1";}`))

	resolved, err := resolver.ByToken(context.Background(), "fresh")
	require.NoError(t, err)
	assert.True(t, resolved.Login)
	assert.Equal(t, int64(5), resolved.UserID)
	assert.True(t, resolved.AllowNsfw)
	assert.True(t, resolved.Permission.ManageTopicState)
	assert.False(t, resolved.Permission.BanPost)
}

func TestByToken_MissingUserIsIntegrityFault(t *testing.T) {
	resolver, store := newTestResolver(1000000)
	store.AddAccessToken(model.AccessToken{Token: "orphan", UserId: 404, ExpiresAt: 2000000})

	_, err := resolver.ByToken(context.Background(), "orphan")
	var integrity *apperr.DataIntegrityError
	require.ErrorAs(t, err, &integrity)
}

func TestByToken_NsfwGatedOnAccountAge(t *testing.T) {
	now := int64(1000000000)

	cases := []struct {
		name      string
		regAt     int64
		allowNsfw bool
	}{
		{"exactly 90 days", now - 90*day, true},
		{"older than 90 days", now - 90*day - 1, true},
		{"one second short", now - 90*day + 1, false},
		{"new account", now - day, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver, store := newTestResolver(now)
			store.AddUser(model.User{Id: 5, RegisteredAt: tc.regAt})
			store.AddAccessToken(model.AccessToken{Token: "t", UserId: 5, ExpiresAt: now + day})

			resolved, err := resolver.ByToken(context.Background(), "t")
			require.NoError(t, err)
			assert.Equal(t, tc.allowNsfw, resolved.AllowNsfw)
		})
	}
}

func TestByToken_MissingPermissionBagFailsOpen(t *testing.T) {
	resolver, store := newTestResolver(1000000)
	store.AddUser(model.User{Id: 5, GroupId: 77, RegisteredAt: 0})
	store.AddAccessToken(model.AccessToken{Token: "t", UserId: 5, ExpiresAt: 2000000})

	resolved, err := resolver.ByToken(context.Background(), "t")
	require.NoError(t, err)
	assert.True(t, resolved.Login)
	assert.Equal(t, Permission{}, resolved.Permission)
}
