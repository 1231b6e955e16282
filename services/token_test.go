package services

import (
	"testing"
	"time"

	"elm/models"
	"elm/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRevocationLifecycle(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	jti := uuid.NewString()
	require.NoError(t, RecordToken(tx, user.ID, jti, time.Now().Add(24*time.Hour)))

	revoked, err := IsTokenRevoked(tx, user.ID, jti)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, RevokeAllTokens(tx, user.ID))

	revoked, err = IsTokenRevoked(tx, user.ID, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	// A token issued after the revocation is unaffected
	freshJTI := uuid.NewString()
	require.NoError(t, RecordToken(tx, user.ID, freshJTI, time.Now().Add(24*time.Hour)))
	revoked, err = IsTokenRevoked(tx, user.ID, freshJTI)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestIsTokenRevokedUnknownJTI(t *testing.T) {
	tx := testutil.Tx(t)
	user := testutil.SeedUser(t, tx, models.RoleStudent)

	revoked, err := IsTokenRevoked(tx, user.ID, uuid.NewString())
	require.NoError(t, err)
	assert.True(t, revoked, "a jti that was never issued counts as revoked")
}

func TestRevokeAllTokensOnlyTargetsUser(t *testing.T) {
	tx := testutil.Tx(t)
	alice := testutil.SeedUser(t, tx, models.RoleStudent)
	bob := testutil.SeedUser(t, tx, models.RoleStudent)

	aliceJTI := uuid.NewString()
	bobJTI := uuid.NewString()
	require.NoError(t, RecordToken(tx, alice.ID, aliceJTI, time.Now().Add(24*time.Hour)))
	require.NoError(t, RecordToken(tx, bob.ID, bobJTI, time.Now().Add(24*time.Hour)))

	require.NoError(t, RevokeAllTokens(tx, alice.ID))

	revoked, err := IsTokenRevoked(tx, bob.ID, bobJTI)
	require.NoError(t, err)
	assert.False(t, revoked)
}
