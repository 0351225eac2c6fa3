package presenter

import (
	"strings"

	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"golang.org/x/text/language"
)

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Language is the language a kind's participants are addressed in.
func Language(kind engine.Kind) language.Tag {
	if kind.Francophone() {
		return language.French
	}
	return language.English
}

// ParseLanguage picks the supported language that best fits an
// Accept-Language header. ok is false when the header names nothing usable.
func ParseLanguage(accept string) (tag language.Tag, ok bool) {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

func resolve(lang language.Tag, kind engine.Kind) language.Tag {
	if lang == language.Und {
		return Language(kind)
	}
	return lang
}

func isFrench(lang language.Tag) bool {
	base, _ := lang.Base()
	return base.String() == "fr"
}

// joinList joins items the way a sentence lists them: "a, b and c".
func joinList(lang language.Tag, items []string) string {
	conj := " and "
	if isFrench(lang) {
		conj = " et "
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + conj + items[len(items)-1]
	}
}
