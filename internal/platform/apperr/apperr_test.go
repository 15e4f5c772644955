// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
)

/*
TestAs_ThroughWrapping verifies that AppErrors survive fmt.Errorf wrapping.
*/
func TestAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load preprint: %w", apperr.NotFound("Preprint"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Preprint not found", ae.Error())
	assert.True(t, apperr.HasCode(wrapped, "NOT_FOUND"))
	assert.False(t, apperr.HasCode(wrapped, "FORBIDDEN"))
}

/*
TestWrap_KeepsOriginalUntouched checks that Wrap clones before attaching a cause.
*/
func TestWrap_KeepsOriginalUntouched(t *testing.T) {
	base := apperr.NotFound("Node")
	cause := errors.New("upstream 404")

	wrapped := base.Wrap(cause)

	assert.Nil(t, base.Cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, base.Code, wrapped.Code)
}

/*
TestUpstream_HidesCause ensures the client message never contains the cause.
*/
func TestUpstream_HidesCause(t *testing.T) {
	ae := apperr.Upstream(errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusBadGateway, ae.HTTPStatus)
	assert.NotContains(t, ae.Error(), "dial tcp")
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}
