package mockskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by advisory validation.
const (
	CodeInvalidSchema      = "invalid_schema"
	CodeUnsupportedRef     = "unsupported_ref"
	CodeUnsupportedKeyword = "unsupported_keyword"
	CodeTooDeep            = "too_deep"
)

// Sentinels for errors.Is; the typed errors below unwrap to them.
var (
	ErrInvalidSchema      = errors.New("mockskema: invalid schema")
	ErrUnsupportedFeature = errors.New("mockskema: unsupported feature")
)

// InvalidSchemaError is returned when the top-level schema is not an object.
type InvalidSchemaError struct {
	Got string // Go type of the rejected value
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("mockskema: schema must be an object, got %s", e.Got)
}

func (e *InvalidSchemaError) Unwrap() error { return ErrInvalidSchema }

// UnsupportedFeatureError is returned when a reachable node uses a keyword the
// generator cannot honor. Today that is only $ref.
type UnsupportedFeatureError struct {
	Feature string // e.g. "$ref"
	Path    string // JSON Pointer of the node declaring it
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("mockskema: %s is not supported (at %s)", e.Feature, e.Path)
}

func (e *UnsupportedFeatureError) Unwrap() error { return ErrUnsupportedFeature }

// DepthLimitError is returned only when WithMaxDepth is set and generation
// nests deeper than the limit.
type DepthLimitError struct {
	Limit int
	Path  string
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("mockskema: nesting deeper than %d at %s", e.Limit, e.Path)
}

// Issue represents a single advisory validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /properties/a/items).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"keyword":"if"}) for i18n.
	Params map[string]any
}

// Issues is a collection of advisory findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
