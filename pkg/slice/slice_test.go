// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliezyer/ember-osf-preprints/pkg/slice"
)

func TestMapFilter(t *testing.T) {
	upper := slice.Map([]string{"a", "b"}, strings.ToUpper)
	assert.Equal(t, []string{"A", "B"}, upper)
	assert.Nil(t, slice.Map[string, string](nil, strings.ToUpper))

	nonEmpty := slice.Filter([]string{"a", "", "c"}, func(s string) bool { return s != "" })
	assert.Equal(t, []string{"a", "c"}, nonEmpty)
}

func TestFlattenUnique(t *testing.T) {
	flat := slice.Flatten([][]string{{"A", "B"}, {}, {"C", "A"}})
	assert.Equal(t, []string{"A", "B", "C", "A"}, flat)
	assert.Equal(t, []string{"A", "B", "C"}, slice.Unique(flat))
	assert.Empty(t, slice.Unique([]string(nil)))
}
