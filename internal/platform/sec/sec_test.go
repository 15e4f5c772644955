// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies issue → verify of a viewer session.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "preprints")
	require.NoError(t, err)

	token, err := service.IssueSession("u123", "ada", "osf-token", time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u123", claims.UserID)
	assert.Equal(t, "ada", claims.Username)
	assert.Equal(t, "osf-token", claims.AccessToken)
}

/*
TestTokenService_Rejects covers expired, foreign-secret and foreign-issuer tokens.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "preprints")
	require.NoError(t, err)

	expired, err := service.IssueSession("u1", "ada", "", -time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(expired)
	assert.Error(t, err)

	other, err := sec.NewTokenService("other-secret", "preprints")
	require.NoError(t, err)
	foreign, err := other.IssueSession("u1", "ada", "", time.Hour)
	require.NoError(t, err)
	_, err = service.VerifyToken(foreign)
	assert.Error(t, err)

	otherIssuer, err := sec.NewTokenService("test-secret", "someone-else")
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.IssueSession("u1", "ada", "", time.Hour)
	require.NoError(t, err)
	_, err = service.VerifyToken(wrongIssuer)
	assert.Error(t, err)

	_, err = sec.NewTokenService("", "preprints")
	assert.ErrorIs(t, err, sec.ErrNoSecret)
}

/*
TestPermissions_Has checks set membership of the admin grant.
*/
func TestPermissions_Has(t *testing.T) {
	assert.True(t, sec.Permissions{sec.PermissionRead, sec.PermissionAdmin}.Has(sec.PermissionAdmin))
	assert.False(t, sec.Permissions{sec.PermissionRead, sec.PermissionWrite}.Has(sec.PermissionAdmin))
	assert.False(t, sec.Permissions(nil).Has(sec.PermissionAdmin))
}
