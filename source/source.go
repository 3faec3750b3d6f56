// Package source decodes JSON and YAML schema documents into the map form
// the generator walks.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DuplicateKeyError reports a key declared twice in the same object. Line and
// column are set for YAML input only.
type DuplicateKeyError struct {
	Key  string
	Path string // JSON Pointer of the enclosing object

	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("source: duplicate key %q in %s at %d:%d (first at %d:%d)", e.Key, e.Path, e.Line, e.Col, e.FirstLine, e.FirstCol)
	}
	return fmt.Sprintf("source: duplicate key %q in %s", e.Key, e.Path)
}

// Load decodes a schema document, choosing YAML for .yaml/.yml names and
// JSON otherwise.
func Load(name string, b []byte) (any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML(b)
	default:
		return JSON(b)
	}
}
