package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// JSON decodes one JSON document. Numbers are kept as json.Number and
// duplicate object keys are rejected with *DuplicateKeyError.
func JSON(b []byte) (any, error) { return JSONReader(bytes.NewReader(b)) }

// JSONReader is JSON over an io.Reader. Trailing data after the first value
// is an error.
func JSONReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source: empty JSON document")
		}
		return nil, fmt.Errorf("source: invalid JSON: %w", err)
	}
	v, err := decodeFrom(dec, tok, nil)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: invalid JSON: trailing data after document")
	}
	return v, nil
}

// decodeFrom builds the value starting at tok. path holds escaped pointer
// segments of the value being built.
func decodeFrom(dec *j.Decoder, tok any, path []string) (any, error) {
	d, ok := tok.(j.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		m := map[string]any{}
		for {
			kt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("source: invalid JSON: %w", err)
			}
			if kd, ok := kt.(j.Delim); ok && kd == '}' {
				return m, nil
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("source: invalid JSON: object key %v is not a string", kt)
			}
			if _, dup := m[key]; dup {
				return nil, &DuplicateKeyError{Key: key, Path: pointer(path)}
			}
			vt, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("source: invalid JSON: %w", err)
			}
			v, err := decodeFrom(dec, vt, append(path, escape(key)))
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
	case '[':
		arr := []any{}
		for i := 0; ; i++ {
			it, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("source: invalid JSON: %w", err)
			}
			if id, ok := it.(j.Delim); ok && id == ']' {
				return arr, nil
			}
			v, err := decodeFrom(dec, it, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	default:
		return nil, fmt.Errorf("source: invalid JSON: unexpected %q", rune(d))
	}
}

func escape(seg string) string {
	return strings.ReplaceAll(strings.ReplaceAll(seg, "~", "~0"), "/", "~1")
}

func pointer(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	return "/" + strings.Join(path, "/")
}
