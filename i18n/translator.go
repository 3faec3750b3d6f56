package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional values to embed in the message (for example,
// "keyword" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_schema":      "schema must be a JSON object",
		"unsupported_ref":     "schema references ($ref) are not supported for mock generation",
		"unsupported_keyword": "keyword \"{keyword}\" is not supported for mock generation",
		"too_deep":            "schema nesting is too deep (max {max} levels)",
	},
	"ja": {
		"invalid_schema":      "スキーマは JSON オブジェクトである必要があります",
		"unsupported_ref":     "モック生成ではスキーマ参照 ($ref) はサポートされていません",
		"unsupported_keyword": "モック生成ではキーワード \"{keyword}\" はサポートされていません",
		"too_deep":            "スキーマのネストが深すぎます (最大 {max} 階層)",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Supported reports whether lang has a built-in dictionary.
func Supported(lang string) bool {
	_, ok := dictionaries[normalize(lang)]
	return ok
}

// For returns the built-in Translator for lang, falling back to English.
func For(lang string) Translator {
	lang = normalize(lang)
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	SetTranslator(For(lang))
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}

// normalize maps tags such as "ja-JP" or "EN_us" to their base language.
func normalize(lang string) string {
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
