// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMapSource(t *testing.T) {
	s := NewMapSource("defaults", map[string]string{"a": "1"})
	v, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestNewFuncSource(t *testing.T) {
	s := NewFuncSource("env", func(key string) (string, bool) {
		if key == "HOME" {
			return "/root", true
		}
		return "", false
	})
	v, ok := s.Lookup("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/root", v)
}

func TestEmptySource_IsEmpty(t *testing.T) {
	assert.True(t, EmptySource.isEmpty())
	s := NewMapSource("x", nil)
	assert.False(t, s.isEmpty())
}
