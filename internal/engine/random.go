package engine

import (
	"context"
	"fmt"
	"math/rand"
)

// CompleteRandomly plays d to the end with uniformly random legal actions
// and returns the final settings. d itself is not modified. It panics if the
// engine rejects an action it offered, which would be a bug in the rules.
func CompleteRandomly(d Draft, kind Kind, rng *rand.Rand) Picks {
	picks, _ := completeRandomly(d, kind, rng)
	return picks
}

// completeRandomly also reports how many actions were applied after the
// go-first choice.
func completeRandomly(d Draft, kind Kind, rng *rand.Rand) (Picks, int) {
	d = d.Clone()
	ctx := context.Background()
	rules := kind.Rules()
	steps := 0
	for {
		sk, _ := rules.Derive(&d)
		var a Action
		switch sk.Phase {
		case PhaseGoFirst:
			a = GoFirst(rng.Intn(2) == 0)
		case PhaseBan:
			all := sk.AvailableSettings.All()
			n := len(all)
			if sk.Skippable {
				n++
			}
			if n == 0 {
				panic(fmt.Sprintf("engine: %s offers nothing to ban", kind))
			}
			if i := rng.Intn(n); i < len(all) {
				a = Ban(all[i].Name)
			} else {
				a = Skip()
			}
		case PhasePick:
			all := sk.AvailableChoices.All()
			n := len(all)
			if sk.Skippable {
				n++
			}
			if n == 0 {
				panic(fmt.Sprintf("engine: %s offers nothing to pick", kind))
			}
			if i := rng.Intn(n); i < len(all) {
				s := all[i]
				a = Pick(s.Name, s.Options[rng.Intn(len(s.Options))].Name)
			} else {
				a = Skip()
			}
		case PhaseBooleanChoice:
			a = BooleanChoice(rng.Intn(2) == 0)
		case PhaseDone:
			return d.Settings, steps
		}
		if _, err := rules.Apply(ctx, &d, Nop{}, a); err != nil {
			panic(fmt.Sprintf("engine: random draft made illegal action %+v: %v", a, err))
		}
		if a.Type != ActionGoFirst {
			steps++
		}
	}
}
