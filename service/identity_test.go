package service

import (
	"testing"

	"clubfund/models"
	"clubfund/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_Register(t *testing.T) {
	s := NewIdentityService(store.NewMemoryStore())

	created, err := s.Register("alice", "secret123")
	require.NoError(t, err)
	assert.True(t, created)

	user, found, err := s.FindByUsername("alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret123", user.Password)

	assert.True(t, s.VerifyPassword(user, "secret123"))
	assert.False(t, s.VerifyPassword(user, "wrong"))
}

func TestIdentityService_RegisterDuplicate(t *testing.T) {
	st := store.NewMemoryStore()
	s := NewIdentityService(st)

	created, err := s.Register("alice", "secret123")
	require.NoError(t, err)
	require.True(t, created)

	// second call fails, collection length unchanged
	created, err = s.Register("alice", "other456")
	require.NoError(t, err)
	assert.False(t, created)

	var users []models.User
	require.NoError(t, st.Load(store.CollectionUsers, &users))
	assert.Len(t, users, 1)

	// usernames compare case-sensitively
	created, err = s.Register("Alice", "other456")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestIdentityService_SequentialIDs(t *testing.T) {
	s := NewIdentityService(store.NewMemoryStore())

	for _, name := range []string{"a1", "a2", "a3"} {
		created, err := s.Register(name, "secret123")
		require.NoError(t, err)
		require.True(t, created)
	}

	user, found, err := s.FindByID(3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a3", user.Username)

	_, found, err = s.FindByID(99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIdentityService_Bootstrap(t *testing.T) {
	st := store.NewMemoryStore()
	s := NewIdentityService(st)

	require.NoError(t, s.Bootstrap("", ""))

	admin, found, err := s.FindByUsername(DefaultAdminUsername)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, admin.IsAdmin)
	assert.True(t, s.VerifyPassword(admin, DefaultAdminPassword))

	// bootstrap is a no-op once any user exists
	require.NoError(t, s.Bootstrap("", ""))
	var users []models.User
	require.NoError(t, st.Load(store.CollectionUsers, &users))
	assert.Len(t, users, 1)
}

func TestIdentityService_BootstrapOverride(t *testing.T) {
	s := NewIdentityService(store.NewMemoryStore())

	require.NoError(t, s.Bootstrap("treasurer", "s3cure-pass"))

	admin, found, err := s.FindByUsername("treasurer")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, admin.IsAdmin)
	assert.True(t, s.VerifyPassword(admin, "s3cure-pass"))
}
