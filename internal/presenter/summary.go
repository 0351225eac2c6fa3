package presenter

import (
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"golang.org/x/text/language"
)

// DisplayPicks lists the non-default picks of a draft by display name.
func DisplayPicks(kind engine.Kind, picks engine.Picks, lang language.Tag) string {
	lang = resolve(lang, kind)
	var shown []string
	for _, s := range kind.Catalog().Settings {
		v, ok := picks[s.Name]
		if !ok {
			continue
		}
		for _, c := range s.Other {
			if c.Name == v {
				shown = append(shown, displayChoice(kind, picks, lang, s.Name, c))
				break
			}
		}
	}
	if len(shown) == 0 {
		if isFrench(lang) {
			return "settings de base"
		}
		return "base settings"
	}
	return joinList(lang, shown)
}

func displayChoice(kind engine.Kind, picks engine.Picks, lang language.Tag, name string, c engine.Choice) string {
	if !kind.Francophone() || name != "mixed-er" || c.Name != "on" {
		return c.Display
	}
	switch {
	case picks.Get("dungeon-er", "off") == "off":
		return c.Display
	case picks.Get("mixed-dungeons", "separate") == "mixed":
		if isFrench(lang) {
			return "mixed ER (donjons inclus)"
		}
		return "mixed ER (including dungeons)"
	default:
		if isFrench(lang) {
			return "mixed ER (donjons non inclus)"
		}
		return "mixed ER (not including dungeons)"
	}
}
