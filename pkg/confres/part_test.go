// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrap_SpecificFormHasNoBraces(t *testing.T) {
	keys := []string{
		"persistence.db.username",
		"persistence.db.{username}",
		"some.flag.for.{${found.key}}",
		"a.b.c.{d}.{e}",
	}
	for _, k := range keys {
		tree, err := Parse(k)
		require.NoError(t, err, k)
		specific := Normalize(tree, true)
		// Placeholders pass through Unwrap verbatim; only the text around
		// them must be free of override braces.
		regions := FindPlaceholders(specific)
		for i := len(regions) - 1; i >= 0; i-- {
			specific = specific[:regions[i].Start] + specific[regions[i].End:]
		}
		assert.NotContains(t, specific, "{", k)
		assert.NotContains(t, specific, "}", k)
	}
}

func TestUnwrap_GenericDropsOverrides(t *testing.T) {
	tree, err := Parse("persistence.db.{username}")
	require.NoError(t, err)
	assert.Equal(t, "persistence.db", Normalize(tree, false))
	assert.Equal(t, "persistence.db.username", Normalize(tree, true))
}

func TestUnwrap_RoundTripPreservesLiteralCharacters(t *testing.T) {
	key := "my-app.db_pool.max-size"
	tree, err := Parse(key)
	require.NoError(t, err)
	assert.Equal(t, key, Normalize(tree, true))
}

func TestUnwrap_GenericIsPrefixOfSpecificWhenTrailingOverride(t *testing.T) {
	tree, err := Parse("a.b.{c}")
	require.NoError(t, err)
	specific := Normalize(tree, true)
	generic := Normalize(tree, false)
	assert.True(t, strings.HasPrefix(specific, generic))
}
