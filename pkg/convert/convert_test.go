// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eliezyer/ember-osf-preprints/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("x", 1))
	assert.Equal(t, 7, convert.ToIntD("7", 1))
}

func TestToTime(t *testing.T) {
	want := time.Date(2017, 3, 1, 12, 30, 0, 123456000, time.UTC)

	assert.True(t, want.Equal(convert.ToTime("2017-03-01T12:30:00.123456Z")))
	assert.True(t, want.Equal(convert.ToTime("2017-03-01T12:30:00.123456")))
	assert.True(t, convert.ToTime("").IsZero())
	assert.True(t, convert.ToTime("yesterday").IsZero())
}
