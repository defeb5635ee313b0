// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"github.com/samber/oops"
)

// Error codes attached to ConfigurationError values via oops.Code, so
// callers can branch with errutil.AssertErrorCode or oops.AsOops(err).Code().
const (
	CodeExpansionLoop     = "CONFIG_EXPANSION_LOOP"
	CodeCoercionFailed    = "CONFIG_COERCION_FAILED"
	CodeMissingFile       = "CONFIG_MISSING_FILE"
	CodeDuplicateSource   = "CONFIG_DUPLICATE_SOURCE"
	CodeKeyNotConfigured  = "CONFIG_KEY_NOT_CONFIGURED"
	CodeKeyParseFailed    = "CONFIG_KEY_PARSE_FAILED"
	CodePropertiesFile    = "CONFIG_PROPERTIES_PARSE_FAILED"
	CodeParserInternalBug = "CONFIG_PARSER_INTERNAL_BUG"
)

// ParserError reports a property-key syntax violation at an exact byte
// offset into the original key string. Error() returns just the reason,
// matching the stable per-character messages in the key grammar; callers
// that want the composite "Could not parse property key, error at index N"
// form should use wrapParseError.
type ParserError struct {
	Index  int
	Reason string
}

func (e *ParserError) Error() string {
	return e.Reason
}

func syntaxError(index int, reason string) *ParserError {
	return &ParserError{Index: index, Reason: reason}
}

// wrapParseError turns a raw ParserError into the higher-level message a
// caller presents to users, preserving the offset and inner message.
func wrapParseError(err *ParserError) error {
	return oops.
		Code(CodeKeyParseFailed).
		With("index", err.Index).
		Wrapf(err, "Could not parse property key, error at index %d", err.Index)
}

func expansionLoopError(key string) error {
	return oops.Code(CodeExpansionLoop).With("key", key).Errorf("Property Expansion Loop")
}

func coercionError(key, typeName string) error {
	return oops.
		Code(CodeCoercionFailed).
		With("key", key).
		With("type", typeName).
		Errorf("Could not parse '%s' value as type '%s'", key, typeName)
}

func missingFileError(path string) error {
	return oops.
		Code(CodeMissingFile).
		With("path", path).
		Errorf("Missing required .properties file for configuration: %s", path)
}

func duplicateSourceError(label string) error {
	return oops.
		Code(CodeDuplicateSource).
		With("label", label).
		Errorf("Duplicate source label '%s' found", label)
}

func oopsPropertiesParseError(path string, cause error) error {
	return oops.
		Code(CodePropertiesFile).
		With("path", path).
		Wrapf(cause, "Could not parse properties file: %s", path)
}

// parserInternalLoopError reports that Parse's scanner made no progress
// across two consecutive iterations — a bug in the parser itself, not a
// malformed key, so it carries its own code rather than flowing through
// wrapParseError's "Could not parse property key" framing.
func parserInternalLoopError(index int) error {
	return oops.
		Code(CodeParserInternalBug).
		With("index", index).
		Errorf("infinite loop detected in property key parser at index %d (library bug)", index)
}

func keyNotConfiguredError(key string) error {
	return oops.
		Code(CodeKeyNotConfigured).
		With("key", key).
		Errorf("Key for [%s] not configured", key)
}
