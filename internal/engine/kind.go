package engine

import (
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("unknown draft kind")

// Kind selects the tournament ruleset. The string form is what gets stored
// on a race.
type Kind string

const (
	MultiworldS3    Kind = "mw3"
	MultiworldS4    Kind = "mw4"
	TournoiFrancoS3 Kind = "fr3"
	TournoiFrancoS4 Kind = "fr4"
)

var kinds = map[Kind]Rules{
	MultiworldS3:    newMultiworld(MultiworldS3, multiworldS3Catalog, multiworldS3Order),
	MultiworldS4:    newMultiworld(MultiworldS4, multiworldS4Catalog, multiworldS4Order),
	TournoiFrancoS3: newFrancophone(TournoiFrancoS3, francophoneS3Catalog, francophoneS3Order),
	TournoiFrancoS4: newFrancophone(TournoiFrancoS4, francophoneS4Catalog, francophoneS3Order),
}

func Kinds() []Kind {
	return []Kind{MultiworldS3, MultiworldS4, TournoiFrancoS3, TournoiFrancoS4}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Rules panics on a kind that was never registered.
func (k Kind) Rules() Rules {
	r, ok := kinds[k]
	if !ok {
		panic(fmt.Sprintf("engine: no rules for kind %q", string(k)))
	}
	return r
}

func (k Kind) Catalog() *Catalog { return k.Rules().Catalog() }

// Francophone reports whether k is a Tournoi Francophone season.
func (k Kind) Francophone() bool {
	_, ok := kinds[k].(*francophone)
	return ok
}

func (k Kind) String() string {
	switch k {
	case MultiworldS3:
		return "Multiworld S3"
	case MultiworldS4:
		return "Multiworld S4"
	case TournoiFrancoS3:
		return "Tournoi Francophone S3"
	case TournoiFrancoS4:
		return "Tournoi Francophone S4"
	default:
		return string(k)
	}
}
