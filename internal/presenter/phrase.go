package presenter

import (
	"fmt"
	"strings"

	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"golang.org/x/text/language"
)

// style is how a surface writes commands: chat users type “!ban <setting>”,
// rich clients get slash commands with their own argument pickers.
type style struct {
	lang  language.Tag
	slash bool
}

func (s style) command(name string, args ...string) string {
	if s.slash {
		return "/" + name
	}
	if len(args) == 0 {
		return "“!" + name + "”"
	}
	return "“!" + name + " " + strings.Join(args, " ") + "”"
}

func (s style) fr() bool { return isFrench(s.lang) }

// sorry opens a rejection, addressing whoever sent the command if known.
func (s style) sorry(addressee string) string {
	word := "Sorry"
	if s.fr() {
		word = "Désolé"
	}
	if addressee == "" {
		return word + ", "
	}
	return word + " " + addressee + ", "
}

func (s style) rejection(addressee string, r engine.Rejection) string {
	fr := s.fr()
	msg := s.sorry(addressee)
	switch r.Reason {
	case engine.ReasonWrongTurn:
		if fr {
			return msg + "mais ce n'est pas votre tour."
		}
		return msg + "it's not your turn in the settings draft."
	case engine.ReasonFirstPickChosen:
		if fr {
			return msg + "le premier pick a déjà été sélectionné."
		}
		return msg + "first pick has already been chosen."
	case engine.ReasonFirstPickPending:
		if fr {
			return msg + fmt.Sprintf("le premier pick n'a pas encore été choisi, utilisez %s ou %s.", s.command("first"), s.command("second"))
		}
		return msg + fmt.Sprintf("first pick hasn't been chosen yet, use %s or %s.", s.command("first"), s.command("second"))
	case engine.ReasonUnknownSetting, engine.ReasonSettingLocked:
		return msg + s.settingRejection(r)
	case engine.ReasonBanValue:
		if fr {
			return msg + fmt.Sprintf("vous ne pouvez pas choisir de valeur pendant les bans. Utilisez %s.", s.command("ban", "<setting>"))
		}
		return msg + fmt.Sprintf("bans haven't been chosen yet. Use %s.", s.command("ban", "<setting>"))
	case engine.ReasonInvalidValue:
		if fr {
			return msg + "cette valeur n'est pas possible pour ce setting. Utilisez l'une des suivantes : " + s.or(r.Options) + "."
		}
		return msg + "that's not a possible value for this setting. Use one of the following: " + s.or(r.Options) + "."
	case engine.ReasonNotSkippable:
		if fr {
			return msg + "cette partie du draft ne peut pas être passée."
		}
		return msg + "this part of the draft can't be skipped."
	case engine.ReasonNotYesNo:
		if fr {
			return msg + "vous n'avez pas à répondre oui ou non."
		}
		return msg + "the current step is not a yes/no question."
	case engine.ReasonYesNoPending:
		if fr {
			return msg + fmt.Sprintf("avant que le draft ne puisse continuer, vous devez d'abord choisir si les donjons seront mixés ou non avec le reste. Utilisez %s ou %s.", s.command("yes"), s.command("no"))
		}
		return msg + fmt.Sprintf("before the draft can continue, you have to choose whether dungeons are mixed with the other entrances. Use %s or %s.", s.command("yes"), s.command("no"))
	case engine.ReasonCompleted:
		if fr {
			return msg + "ce draft est terminé."
		}
		return msg + "this settings draft is already completed."
	default:
		return msg + string(r.Reason)
	}
}

func (s style) settingRejection(r engine.Rejection) string {
	fr := s.fr()
	var b strings.Builder
	switch {
	case r.Reason == engine.ReasonSettingLocked && fr:
		b.WriteString("ce setting est déjà verrouillé.")
	case r.Reason == engine.ReasonSettingLocked:
		b.WriteString("that setting is already locked in.")
	case fr:
		b.WriteString("je ne reconnais pas ce setting.")
	default:
		b.WriteString("I don't recognize that setting.")
	}
	if len(r.Options) > 0 {
		if fr {
			b.WriteString(" Utilisez l'un des suivants : ")
		} else {
			b.WriteString(" Use one of the following: ")
		}
		b.WriteString(s.or(r.Options))
		b.WriteString(".")
	}
	if r.Skippable {
		what := "ban anything"
		if r.Phase == engine.PhasePick {
			what = "pick anything"
		}
		if fr {
			fmt.Fprintf(&b, " Utilisez %s si vous ne voulez rien choisir.", s.command("skip"))
		} else {
			fmt.Fprintf(&b, " Use %s if you don't want to %s.", s.command("skip"), what)
		}
	}
	return b.String()
}

func (s style) or(options []string) string {
	sep := " or "
	if s.fr() {
		sep = " ou "
	}
	return strings.Join(options, sep)
}
