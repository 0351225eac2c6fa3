// Package command parses the chat commands participants use to drive a
// settings draft.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midoshouse/midos.house-sub000/internal/engine"
)

const Prefix = "!"

var (
	ErrNotCommand     = errors.New("not a command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
)

// Command is one parsed chat line.
type Command struct {
	Name   string
	Action engine.Action
	// List is set for !settings, which asks for the catalog instead of acting.
	List bool
}

var usage = map[string]string{
	"first":    "!first",
	"second":   "!second",
	"ban":      "!ban <setting>",
	"draft":    "!draft <setting> <value>",
	"pick":     "!pick <setting> <value>",
	"skip":     "!skip",
	"yes":      "!yes",
	"no":       "!no",
	"settings": "!settings",
}

// Parse reads a line such as "!draft wincon th". Command names and arguments
// are case-insensitive.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return Command{}, ErrNotCommand
	}
	fields := strings.Fields(strings.ToLower(strings.TrimPrefix(line, Prefix)))
	if len(fields) == 0 {
		return Command{}, ErrNotCommand
	}
	name, args := fields[0], fields[1:]
	want, ok := arity(name)
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(args) != want {
		return Command{}, fmt.Errorf("%w: use %s", ErrUsage, usage[name])
	}

	cmd := Command{Name: name}
	switch name {
	case "first", "second":
		cmd.Action = engine.GoFirst(name == "first")
	case "ban":
		cmd.Action = engine.Ban(args[0])
	case "draft", "pick":
		cmd.Action = engine.Pick(args[0], args[1])
	case "skip":
		cmd.Action = engine.Skip()
	case "yes", "no":
		cmd.Action = engine.BooleanChoice(name == "yes")
	case "settings":
		cmd.List = true
	}
	return cmd, nil
}

func arity(name string) (int, bool) {
	switch name {
	case "first", "second", "skip", "yes", "no", "settings":
		return 0, true
	case "ban":
		return 1, true
	case "draft", "pick":
		return 2, true
	}
	return 0, false
}

// Format writes an action back as the chat line that produces it.
func Format(a engine.Action) string {
	switch a.Type {
	case engine.ActionGoFirst:
		if a.Choice {
			return "!first"
		}
		return "!second"
	case engine.ActionBan:
		return "!ban " + a.Setting
	case engine.ActionPick:
		return "!draft " + a.Setting + " " + a.Value
	case engine.ActionSkip:
		return "!skip"
	case engine.ActionBooleanChoice:
		if a.Choice {
			return "!yes"
		}
		return "!no"
	}
	return ""
}
