// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPlaceholders_None(t *testing.T) {
	assert.Empty(t, FindPlaceholders("plain value"))
}

func TestFindPlaceholders_Single(t *testing.T) {
	regions := FindPlaceholders("jdbc:postgres://${db.host}:5432/app")
	if assert.Len(t, regions, 1) {
		r := regions[0]
		assert.Equal(t, "db.host", r.InnerKey)
		assert.Equal(t, "${db.host}", "jdbc:postgres://${db.host}:5432/app"[r.Start:r.End])
	}
}

func TestFindPlaceholders_Multiple(t *testing.T) {
	value := "${a.b}-${c.d}"
	regions := FindPlaceholders(value)
	if assert.Len(t, regions, 2) {
		assert.Equal(t, "a.b", regions[0].InnerKey)
		assert.Equal(t, "c.d", regions[1].InnerKey)
	}
}

func TestFindPlaceholders_BraceInsidePlaceholder(t *testing.T) {
	value := "${outer.{nested}.key}"
	regions := FindPlaceholders(value)
	if assert.Len(t, regions, 1) {
		assert.Equal(t, "outer.{nested}.key", regions[0].InnerKey)
	}
}

func TestFindPlaceholders_NestedPlaceholderAbandonsOuter(t *testing.T) {
	value := "${outer.${inner}}"
	regions := FindPlaceholders(value)
	if assert.Len(t, regions, 1) {
		assert.Equal(t, "inner", regions[0].InnerKey)
	}
}

func TestFindPlaceholders_LoneBraceOutsidePlaceholderIgnored(t *testing.T) {
	value := "literal {not a placeholder} ${real.key}"
	regions := FindPlaceholders(value)
	if assert.Len(t, regions, 1) {
		assert.Equal(t, "real.key", regions[0].InnerKey)
	}
}
