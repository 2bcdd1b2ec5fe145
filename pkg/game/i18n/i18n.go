// Package i18n holds the user-facing message catalogue.
// Catalogues are gettext .po files embedded in the binary; keys that have no
// translation are returned unchanged.
package i18n

import (
	"embed"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested language has no catalogue
const DefaultLanguage = "en"

//go:embed *.po
var catalogues embed.FS

var current = load(DefaultLanguage)

// Init selects the catalogue for lang, e.g. "sv" or "sv_SE.UTF-8".
// It returns the language actually selected.
func Init(lang string) string {
	code := normalize(lang)
	if !Available(code) {
		code = DefaultLanguage
	}
	current = load(code)
	return code
}

// Available reports whether a catalogue exists for the language code
func Available(code string) bool {
	_, err := catalogues.Open(code + ".po")
	return err == nil
}

// T returns the translation of key formatted with args
func T(key string, args ...any) string {
	return current.Get(key, args...)
}

func load(code string) *gotext.Po {
	po := gotext.NewPo()
	if data, err := catalogues.ReadFile(code + ".po"); err == nil {
		po.Parse(data)
	}
	return po
}

// normalize turns locale strings like "sv_SE.UTF-8" into "sv"
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_.-@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
