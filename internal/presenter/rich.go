package presenter

import (
	"context"
	"fmt"

	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"golang.org/x/text/language"
)

// TeamInfo is how a team is addressed in full sentences.
type TeamInfo struct {
	Name string
	// Plural teams take plural verbs ("The Bees have picked").
	Plural bool
}

// TeamDirectory resolves team ids to display names. Implementations may hit
// the database.
type TeamDirectory interface {
	Team(ctx context.Context, id engine.TeamID) (TeamInfo, error)
}

// Rich phrases the draft for clients that show full sentences and offer
// slash commands.
type Rich struct {
	Directory TeamDirectory
	HighSeed  engine.TeamID
	LowSeed   engine.TeamID
	// Game is the game number within a match, 0 when not part of one.
	Game int
	Lang language.Tag
}

var _ engine.Presenter = Rich{}

func (r Rich) team(ctx context.Context, t engine.Team) (TeamInfo, error) {
	id := engine.Choose(t, r.HighSeed, r.LowSeed)
	info, err := r.Directory.Team(ctx, id)
	if err != nil {
		return TeamInfo{}, fmt.Errorf("resolve team %s: %w", id, err)
	}
	return info, nil
}

func (r Rich) Prompt(ctx context.Context, p engine.Prompt) (string, error) {
	s := style{lang: resolve(r.Lang, p.Kind), slash: true}
	if p.Cue == engine.CueDone {
		picks := DisplayPicks(p.Kind, p.Picks, s.lang)
		if s.fr() {
			return "Fin du draft ! Voici un récapitulatif : " + picks + ".", nil
		}
		return "Settings draft completed. You will be playing with " + picks + ".", nil
	}
	info, err := r.team(ctx, p.Team)
	if err != nil {
		return "", err
	}
	if s.fr() {
		return r.promptFR(s, info.Name, p)
	}
	team := info.Name
	switch p.Cue {
	case engine.CueGoFirst:
		if r.Game > 1 {
			return fmt.Sprintf("%s: as the losers of the previous race, please choose whether you want to go %s or %s in the settings draft for game %d.", team, s.command("first"), s.command("second"), r.Game), nil
		}
		msg := fmt.Sprintf("%s: you have the higher seed. Choose whether you want to go %s or %s in the settings draft", team, s.command("first"), s.command("second"))
		if r.Game == 1 {
			msg += fmt.Sprintf(" for game %d", r.Game)
		}
		return msg + ".", nil
	case engine.CueBan:
		if p.Skippable {
			return fmt.Sprintf("%s: lock a setting to its default using %s, or use %s if you don't want to ban anything.", team, s.command("ban"), s.command("skip")), nil
		}
		return fmt.Sprintf("%s: lock a setting to its default using %s.", team, s.command("ban")), nil
	case engine.CuePickFirst, engine.CuePick:
		return fmt.Sprintf("%s: pick a setting using %s.", team, s.command("draft")), nil
	case engine.CuePickTwo:
		return fmt.Sprintf("%s: pick a setting using %s. You will have another pick after this.", team, s.command("draft")), nil
	case engine.CuePickSecond:
		return fmt.Sprintf("%s: pick your second setting using %s.", team, s.command("draft")), nil
	case engine.CuePickFinal:
		if p.Skippable {
			return fmt.Sprintf("%s: pick a setting using %s. You can also use %s if you want to leave the settings as they are.", team, s.command("draft"), s.command("skip")), nil
		}
		return fmt.Sprintf("%s: pick the final setting using %s.", team, s.command("draft")), nil
	case engine.CueMixedDungeons:
		return fmt.Sprintf("%s: should dungeons be mixed with interiors and grottos? Answer with %s or %s.", team, s.command("yes"), s.command("no")), nil
	}
	return "", fmt.Errorf("unknown prompt cue %q", p.Cue)
}

func (r Rich) promptFR(s style, team string, p engine.Prompt) (string, error) {
	switch p.Cue {
	case engine.CueGoFirst:
		msg := fmt.Sprintf("%s : Vous avez été sélectionné pour décider qui commencera le draft en premier. Si vous voulez commencer, veuillez entrer %s. Autrement, entrez %s.", team, s.command("first"), s.command("second"))
		if r.Game > 0 {
			msg = fmt.Sprintf("%s : Vous avez été sélectionné pour décider qui commencera le draft de la partie %d. Si vous voulez commencer, veuillez entrer %s. Autrement, entrez %s.", team, r.Game, s.command("first"), s.command("second"))
		}
		if p.Picks.Get("mq_ok", "no") == "ok" {
			msg += " Veuillez choisir combien de donjons Master Quest seront présents. Vous devez vous concerter pour choisir ce nombre."
		}
		return msg, nil
	case engine.CueBan:
		return fmt.Sprintf("%s : Veuillez ban un setting en utilisant %s.", team, s.command("ban")), nil
	case engine.CuePickFirst, engine.CuePick:
		return fmt.Sprintf("%s : Choisissez un setting en utilisant %s.", team, s.command("draft")), nil
	case engine.CuePickTwo:
		return fmt.Sprintf("%s : Choisissez un setting avec %s. Vous aurez un autre pick après celui-ci.", team, s.command("draft")), nil
	case engine.CuePickSecond:
		return fmt.Sprintf("%s : Choisissez votre second setting avec %s.", team, s.command("draft")), nil
	case engine.CuePickFinal:
		msg := fmt.Sprintf("%s : Choisissez un setting avec %s.", team, s.command("draft"))
		if p.Skippable {
			msg += fmt.Sprintf(" Vous pouvez également utiliser %s si vous voulez laisser les settings comme ils sont.", s.command("skip"))
		}
		return msg, nil
	case engine.CueMixedDungeons:
		return fmt.Sprintf("%s : Est-ce que les donjons seront mixés avec les intérieurs et les grottos ? Répondez en utilisant %s ou %s.", team, s.command("yes"), s.command("no")), nil
	}
	return "", fmt.Errorf("unknown prompt cue %q", p.Cue)
}

func (r Rich) Outcome(ctx context.Context, o engine.Outcome) (string, error) {
	info, err := r.team(ctx, o.Team)
	if err != nil {
		return "", err
	}
	lang := resolve(r.Lang, o.Kind)
	if isFrench(lang) {
		return outcomeFR(info.Name, o), nil
	}
	has := "has"
	if info.Plural {
		has = "have"
	}
	switch o.Type {
	case engine.OutcomeWentFirst:
		return fmt.Sprintf("%s %s chosen to go %s in the settings draft.", info.Name, has, firstSecond(o.First)), nil
	case engine.OutcomeBanned:
		return fmt.Sprintf("%s %s locked in %s.", info.Name, has, o.ValueDisplay), nil
	case engine.OutcomePicked:
		return fmt.Sprintf("%s %s picked %s.", info.Name, has, o.ValueDisplay), nil
	case engine.OutcomeSkipped:
		what := "final pick"
		if o.Phase == engine.PhaseBan {
			what = "ban"
		}
		return fmt.Sprintf("%s %s skipped their %s.", info.Name, has, what), nil
	case engine.OutcomeAnswered:
		if o.Answer {
			return fmt.Sprintf("%s %s chosen to mix dungeons with the other entrances.", info.Name, has), nil
		}
		return fmt.Sprintf("%s %s chosen to keep dungeons separate.", info.Name, has), nil
	}
	return "", fmt.Errorf("unknown outcome %q", o.Type)
}

func outcomeFR(team string, o engine.Outcome) string {
	switch o.Type {
	case engine.OutcomeWentFirst:
		if o.First {
			return team + " a choisi de partir premier pour le draft."
		}
		return team + " a choisi de partir second pour le draft."
	case engine.OutcomeBanned:
		return fmt.Sprintf("%s a banni %s.", team, o.SettingDisplay)
	case engine.OutcomePicked:
		if o.Default {
			return fmt.Sprintf("%s a banni %s.", team, o.SettingDisplay)
		}
		return fmt.Sprintf("%s a choisi %s.", team, o.ValueDisplay)
	case engine.OutcomeSkipped:
		if o.Phase == engine.PhaseBan {
			return team + " a passé son ban."
		}
		return team + " a passé son dernier pick."
	case engine.OutcomeAnswered:
		if o.Answer {
			return team + " a choisi les trois ER mixés."
		}
		return team + " a choisi de n'avoir que grottos et intérieurs mixés."
	}
	return ""
}

func firstSecond(first bool) string {
	if first {
		return "first"
	}
	return "second"
}

func (r Rich) Rejection(_ context.Context, rej engine.Rejection) (string, error) {
	s := style{lang: resolve(r.Lang, rej.Kind), slash: true}
	if rej.Reason == engine.ReasonWrongTurn && !s.fr() {
		return "Sorry, it's not your team's turn in the settings draft.", nil
	}
	return s.rejection("", rej), nil
}
