package mockskema

import (
	"strconv"

	"github.com/reoring/mockskema/i18n"
)

// MaxAdvisoryDepth is the properties/items nesting accepted by ValidateForMock.
// It is a heuristic for schemas that would recurse without end; generation
// itself does not enforce it.
const MaxAdvisoryDepth = 10

// Keywords whose semantics the generator cannot honor, besides $ref.
var unsupportedKeywords = []string{"dependencies", "if", "then", "else"}

// Report is the advisory result of ValidateForMock.
type Report struct {
	Valid  bool
	Errors []string // localized, one per issue
	Issues Issues
}

// Err returns the issues as an error, or nil when the schema is valid.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	return r.Issues
}

// ValidateForMock reports whether schema is suitable for Generate, with
// messages in the current i18n language. It never fails; callers decide
// whether to generate anyway.
func ValidateForMock(schema any) Report {
	return validateForMock(schema, i18n.T)
}

// ValidateForMockLocale is ValidateForMock with messages in locale.
func ValidateForMockLocale(schema any, locale string) Report {
	return validateForMock(schema, i18n.For(locale).Message)
}

func validateForMock(schema any, msg func(code string, data map[string]string) string) Report {
	var iss Issues
	add := func(p PathRef, code string, data map[string]string) {
		kv := make([]any, 0, 2*len(data))
		for k, v := range data {
			kv = append(kv, k, v)
		}
		iss = append(iss, p.Issue(code, msg(code, data), kv...))
	}

	root, err := asObject(schema)
	if err != nil {
		add(RootPath(), CodeInvalidSchema, nil)
		return newReport(iss)
	}

	tooDeep := false
	walkSchema(root, RootPath(), 0, func(node map[string]any, p PathRef, depth int) bool {
		if depth > MaxAdvisoryDepth {
			if !tooDeep {
				add(p, CodeTooDeep, map[string]string{"max": strconv.Itoa(MaxAdvisoryDepth)})
				tooDeep = true
			}
			return false
		}
		if _, ok := node["$ref"]; ok {
			add(p, CodeUnsupportedRef, nil)
		}
		for _, kw := range unsupportedKeywords {
			if _, ok := node[kw]; ok {
				add(p, CodeUnsupportedKeyword, map[string]string{"keyword": kw})
			}
		}
		return true
	})
	return newReport(iss)
}

func newReport(iss Issues) Report {
	r := Report{Valid: len(iss) == 0, Issues: iss}
	for _, it := range iss {
		m := it.Message
		if it.Path != "/" {
			m += " (at " + it.Path + ")"
		}
		r.Errors = append(r.Errors, m)
	}
	return r
}
