package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	memrepo "hdmonks/database/repository/memory"
	"hdmonks/models"
	"hdmonks/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	mu        sync.Mutex
	m         map[string]string
	fail      error
	deleteErr error
}

func newMapCache() *mapCache { return &mapCache{m: map[string]string{}} }

func (c *mapCache) Set(_ context.Context, role models.Role, h, id string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.m[cacheKey(role, h)] = id
	return nil
}

func (c *mapCache) Get(_ context.Context, role models.Role, h string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return "", c.fail
	}
	return c.m[cacheKey(role, h)], nil
}

func (c *mapCache) Delete(_ context.Context, role models.Role, h string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.m, cacheKey(role, h))
	return nil
}

var secret = []byte("test-secret")

func newAuth(t *testing.T) (*DefaultAuthService, *mapCache) {
	t.Helper()
	cache := newMapCache()
	svc := NewAuthService(memrepo.NewPrincipals(), memrepo.NewPrincipals(), cache, secret, time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "admin", "admin@hdmonks.com", "admin-pass-1"))
	_, err := svc.RegisterPartner(ctx, models.PartnerRegistration{Username: "acme", Email: "ops@acme.com", Password: "partner-pass-1"})
	require.NoError(t, err)
	return svc, cache
}

func TestAuthenticateAndVerify(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Principal.Username)
	assert.Empty(t, resp.Principal.PasswordHash)

	sess, err := svc.Verify(ctx, models.RoleAdmin, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Principal.ID, sess.PrincipalID)
	assert.Equal(t, models.RoleAdmin, sess.Role)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, models.RoleAdmin, "nobody", "admin-pass-1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, models.RolePartner, "admin", "admin-pass-1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials, "admins do not exist in the partner namespace")
}

func TestVerify_RolesNeverCross(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	admin, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)
	partner, err := svc.Authenticate(ctx, models.RolePartner, "acme", "partner-pass-1")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, models.RoleAdmin, partner.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
	_, err = svc.Verify(ctx, models.RolePartner, admin.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerify_ExpiredAndForged(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	expired, _, err := utils.GenerateToken(secret, "id", "admin", models.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, models.RoleAdmin, expired)
	assert.ErrorIs(t, err, models.ErrTokenExpired)

	forged, _, err := utils.GenerateToken([]byte("other"), "id", "admin", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, models.RoleAdmin, forged)
	assert.ErrorIs(t, err, models.ErrInvalidToken)

	_, err = svc.Verify(ctx, models.RoleAdmin, "garbage")
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerify_UnregisteredTokenRejected(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)

	// Correctly signed but never issued by Authenticate.
	minted, _, err := utils.GenerateToken(secret, resp.Principal.ID, "admin", models.RoleAdmin, 2*time.Hour)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, models.RoleAdmin, minted)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestLogoutRevokes(t *testing.T) {
	svc, cache := newAuth(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, models.RolePartner, "acme", "partner-pass-1")
	require.NoError(t, err)
	sess, err := svc.Verify(ctx, models.RolePartner, resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess, resp.Token))
	assert.Empty(t, cache.m)

	_, err = svc.Verify(ctx, models.RolePartner, resp.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestNewLoginSupersedesOldToken(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	first, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // distinct iat so the tokens differ
	second, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = svc.Verify(ctx, models.RoleAdmin, first.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
	_, err = svc.Verify(ctx, models.RoleAdmin, second.Token)
	assert.NoError(t, err)
}

func TestVerify_CacheOutageFallsBackToStore(t *testing.T) {
	svc, cache := newAuth(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)

	cache.fail = errors.New("redis down")
	sess, err := svc.Verify(ctx, models.RoleAdmin, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
}

func TestLogout_EvictionFailureIsReported(t *testing.T) {
	svc, cache := newAuth(t)
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, models.RolePartner, "acme", "partner-pass-1")
	require.NoError(t, err)
	sess, err := svc.Verify(ctx, models.RolePartner, resp.Token)
	require.NoError(t, err)

	cache.deleteErr = errors.New("redis write timeout")
	assert.Error(t, svc.Logout(ctx, sess, resp.Token))

	cache.deleteErr = nil
	require.NoError(t, svc.Logout(ctx, sess, resp.Token), "retry succeeds")
	_, err = svc.Verify(ctx, models.RolePartner, resp.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestAuthenticate_EvictionFailureKeepsOldSession(t *testing.T) {
	svc, cache := newAuth(t)
	ctx := context.Background()

	first, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)

	cache.deleteErr = errors.New("redis write timeout")
	time.Sleep(1100 * time.Millisecond)
	_, err = svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.Error(t, err)

	_, err = svc.Verify(ctx, models.RoleAdmin, first.Token)
	assert.NoError(t, err, "no new session was recorded")

	cache.deleteErr = nil
	second, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	require.NoError(t, err)
	_, err = svc.Verify(ctx, models.RoleAdmin, first.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
	_, err = svc.Verify(ctx, models.RoleAdmin, second.Token)
	assert.NoError(t, err)
}

func TestRegisterPartner(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.RegisterPartner(ctx, models.PartnerRegistration{Username: "acme", Email: "x@acme.com", Password: "long-enough"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.RegisterPartner(ctx, models.PartnerRegistration{Username: "beta", Email: "beta@x.com", Password: "short"})
	assert.ErrorIs(t, err, models.ErrValidation)

	p, err := svc.RegisterPartner(ctx, models.PartnerRegistration{Username: "beta", Email: "Beta@X.com ", Password: "long-enough"})
	require.NoError(t, err)
	assert.Equal(t, "beta@x.com", p.Email)
	assert.Empty(t, p.PasswordHash)
}

func TestEnsureDefaultAdmin_Idempotent(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "admin", "admin@hdmonks.com", "different-pass"))
	_, err := svc.Authenticate(ctx, models.RoleAdmin, "admin", "admin-pass-1")
	assert.NoError(t, err, "existing admin keeps its password")

	require.NoError(t, svc.EnsureDefaultAdmin(ctx, "root", "root@hdmonks.com", ""))
	_, err = svc.Authenticate(ctx, models.RoleAdmin, "root", "")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
