package types

import "encoding/json"

// Snapshot is the state of one race's draft.
//
//	version: bumps on every accepted action
//	phase: "go_first" | "ban" | "pick" | "boolean_choice" | "done"
//	active: team id expected to act, absent once done
//	prompt: what the active team is asked to do
//	draft: flat settings object, see Draft
type Snapshot struct {
	Race         string          `json:"race"`
	Kind         string          `json:"kind"`
	Version      int             `json:"version"`
	Phase        string          `json:"phase"`
	Active       string          `json:"active,omitempty"`
	Prompt       string          `json:"prompt"`
	Announcement string          `json:"announcement,omitempty"`
	Draft        json.RawMessage `json:"draft"`
	Step         *Step           `json:"step,omitempty"`
}

// Step lists what the active team may choose from.
type Step struct {
	Skippable bool   `json:"skippable"`
	Pages     []Page `json:"pages,omitempty"`
	// Resolved holds every setting's final value once the draft is done.
	Resolved map[string]string `json:"resolved,omitempty"`
}

type Page struct {
	Name     string    `json:"name"`
	Settings []Setting `json:"settings"`
}

type Setting struct {
	Name        string   `json:"name"`
	Display     string   `json:"display"`
	Default     string   `json:"default,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Description string   `json:"description,omitempty"`
}

type Option struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Hard    bool   `json:"hard,omitempty"`
}
