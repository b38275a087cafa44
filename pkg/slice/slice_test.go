// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travelist/tourcat/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "22"}, slice.Map([]int{1, 22}, strconv.Itoa))
}
