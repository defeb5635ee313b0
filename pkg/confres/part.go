// SPDX-License-Identifier: Apache-2.0

package confres

import "strings"

// Kind identifies the role a Part plays in a parsed property key.
type Kind int

const (
	KindRoot Kind = iota
	KindWhole
	KindLiteral
	KindOverride
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "ROOT"
	case KindWhole:
		return "WHOLE"
	case KindLiteral:
		return "LITERAL"
	case KindOverride:
		return "OVERRIDE"
	case KindPlaceholder:
		return "PLACEHOLDER"
	default:
		return "UNKNOWN"
	}
}

// Part is a node in the tree produced by Parse. Start and End are a
// half-open range into the original key string; Raw is that substring.
//
// ROOT has exactly one WHOLE child. OVERRIDE and PLACEHOLDER each have a
// single WHOLE child holding their interior. LITERAL nodes are leaves.
type Part struct {
	Kind     Kind
	Start    int
	End      int
	Raw      string
	Children []*Part
}

// PartTree is the parsed form of a property key, owning the Root part and
// a reference to the original key text.
type PartTree struct {
	Source string
	Root   *Part
}

// Unwrap renders a Part back to a string. When keepOverrides is true,
// override braces are dropped but their interior is kept ("specific"
// form); when false, override nodes vanish entirely ("generic" form).
// Placeholders are always passed through unchanged — their expansion is a
// later pass, not part of key normalization.
func (p *Part) Unwrap(keepOverrides bool) string {
	switch p.Kind {
	case KindLiteral:
		return p.Raw
	case KindPlaceholder:
		return p.Raw
	case KindOverride:
		if !keepOverrides {
			return ""
		}
		return p.Children[0].Unwrap(keepOverrides)
	case KindWhole:
		parts := make([]string, len(p.Children))
		for i, c := range p.Children {
			parts[i] = c.Unwrap(keepOverrides)
		}
		joined := strings.Join(parts, ".")
		return strings.TrimSuffix(joined, ".")
	case KindRoot:
		return p.Children[0].Unwrap(keepOverrides)
	default:
		return ""
	}
}
