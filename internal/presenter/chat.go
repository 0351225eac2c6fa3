package presenter

import (
	"context"
	"fmt"

	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"golang.org/x/text/language"
)

// Chat phrases the draft for a plain-text race room where participants type
// “!commands”. Outcomes are silent: the next prompt already tells the room
// what happened.
type Chat struct {
	HighSeedName string
	LowSeedName  string
	// ReplyTo is the user whose command is being rejected.
	ReplyTo string
	// Lang overrides the kind's language when set.
	Lang language.Tag
}

var _ engine.Presenter = Chat{}

func (c Chat) style(kind engine.Kind) style {
	return style{lang: resolve(c.Lang, kind)}
}

func (c Chat) name(t engine.Team) string {
	return engine.Choose(t, c.HighSeedName, c.LowSeedName)
}

func (c Chat) Prompt(_ context.Context, p engine.Prompt) (string, error) {
	s := c.style(p.Kind)
	team := c.name(p.Team)
	if s.fr() {
		if msg := c.promptFR(s, team, p); msg != "" {
			return msg, nil
		}
		return "", fmt.Errorf("unknown prompt cue %q", p.Cue)
	}
	switch p.Cue {
	case engine.CueGoFirst:
		return fmt.Sprintf("%s, you have the higher seed. Choose whether you want to go %s or %s", team, s.command("first"), s.command("second")), nil
	case engine.CueBan:
		msg := fmt.Sprintf("%s, lock a setting to its default using %s", team, s.command("ban", "<setting>"))
		if p.Skippable {
			msg += fmt.Sprintf(", or use %s if you don't want to ban anything.", s.command("skip"))
		} else {
			msg += "."
		}
		if p.Slot == 0 {
			msg += fmt.Sprintf(" Use %s for a list of available settings.", s.command("settings"))
		}
		return msg, nil
	case engine.CuePickFirst:
		return fmt.Sprintf("%s, pick a setting using %s", team, s.command("draft", "<setting>", "<value>")), nil
	case engine.CuePickTwo:
		return fmt.Sprintf("%s, pick two settings.", team), nil
	case engine.CuePickSecond:
		return "And your second pick?", nil
	case engine.CuePick:
		return fmt.Sprintf("%s, pick a setting.", team), nil
	case engine.CuePickFinal:
		if p.Skippable {
			return fmt.Sprintf("%s, pick the final setting. You can also use %s if you want to leave the settings as they are.", team, s.command("skip")), nil
		}
		return fmt.Sprintf("%s, pick the final setting.", team), nil
	case engine.CueMixedDungeons:
		return fmt.Sprintf("%s, should dungeons be mixed with interiors and grottos? Answer with %s or %s.", team, s.command("yes"), s.command("no")), nil
	case engine.CueDone:
		return "Settings draft completed. You will be playing with " + DisplayPicks(p.Kind, p.Picks, s.lang) + ".", nil
	}
	return "", fmt.Errorf("unknown prompt cue %q", p.Cue)
}

func (c Chat) promptFR(s style, team string, p engine.Prompt) string {
	switch p.Cue {
	case engine.CueGoFirst:
		return fmt.Sprintf("%s, vous avez été sélectionné pour décider qui commencera le draft en premier. Si vous voulez commencer, veuillez entrer %s. Autrement, entrez %s.", team, s.command("first"), s.command("second"))
	case engine.CueBan:
		msg := fmt.Sprintf("%s, veuillez ban un setting en utilisant %s.", team, s.command("ban", "<setting>"))
		if p.Slot == 0 {
			msg += fmt.Sprintf(" Utilisez %s pour la liste des settings.", s.command("settings"))
		}
		return msg
	case engine.CuePickFirst:
		return fmt.Sprintf("%s, choisissez un setting avec %s. <configuration> signifie la valeur du setting.", team, s.command("draft", "<setting>", "<configuration>"))
	case engine.CuePickTwo:
		return fmt.Sprintf("%s, choisissez deux settings. Quel est votre premier ?", team)
	case engine.CuePickSecond:
		return "Et votre second ?"
	case engine.CuePick:
		return fmt.Sprintf("%s, choisissez un setting.", team)
	case engine.CuePickFinal:
		if p.Skippable {
			return fmt.Sprintf("%s, choisissez le dernier setting. Vous pouvez également utiliser %s si vous voulez laisser les settings comme ils sont.", team, s.command("skip"))
		}
		return fmt.Sprintf("%s, choisissez votre dernier setting.", team)
	case engine.CueMixedDungeons:
		return fmt.Sprintf("%s, est-ce que les donjons seront mixés avec les intérieurs et les grottos ? Répondez en utilisant %s ou %s.", team, s.command("yes"), s.command("no"))
	case engine.CueDone:
		return "Fin du draft ! Voici un récapitulatif : " + DisplayPicks(p.Kind, p.Picks, s.lang) + "."
	}
	return ""
}

func (Chat) Outcome(context.Context, engine.Outcome) (string, error) { return "", nil }

func (c Chat) Rejection(_ context.Context, r engine.Rejection) (string, error) {
	return c.style(r.Kind).rejection(c.ReplyTo, r), nil
}
