// Package types is the JSON protocol spoken over HTTP and the websocket.
//
// Client -> Server (websocket):
//
//	{"type":"Command","team":"<team id>","reply_to":"<user>","command":"!ban wincon"}
//	{"type":"Action","team":"<team id>","action":{"type":"pick","setting":"trials","value":"2"}}
//
// Server -> Client:
//
//	StateSnapshot: sent on join and after every accepted action.
//	Result: answer to the client's own Command/Action, with the outcome or
//	rejection text.
//	Catalog: answer to "!settings".
//	Error: malformed message.
package types

const (
	MsgCommand = "Command"
	MsgAction  = "Action"

	MsgStateSnapshot = "StateSnapshot"
	MsgResult        = "Result"
	MsgCatalog       = "Catalog"
	MsgError         = "Error"
)

type ClientMessage struct {
	Type    string  `json:"type"`
	Team    string  `json:"team"`
	ReplyTo string  `json:"reply_to,omitempty"`
	Command string  `json:"command,omitempty"`
	Action  *Action `json:"action,omitempty"`
}

// Action is a typed draft action. Choice is used by go_first and
// boolean_choice.
type Action struct {
	Type    string `json:"type"`
	Choice  bool   `json:"choice,omitempty"`
	Setting string `json:"setting,omitempty"`
	Value   string `json:"value,omitempty"`
}

// ServerMessage is any message sent to a client. Command echoes a submitted
// action in chat form and Reason is set on rejected actions.
type ServerMessage struct {
	Type     string    `json:"type"`
	Version  int       `json:"version,omitempty"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Message  string    `json:"message,omitempty"`
	Command  string    `json:"command,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Catalog  []Setting `json:"catalog,omitempty"`
	Error    string    `json:"error,omitempty"`
}

type CreateRaceRequest struct {
	Kind     string `json:"kind"`
	HighSeed string `json:"high_seed"`
	LowSeed  string `json:"low_seed"`
	Game     int    `json:"game,omitempty"`
}

type ActionRequest struct {
	Team    string  `json:"team"`
	ReplyTo string  `json:"reply_to,omitempty"`
	Command string  `json:"command,omitempty"`
	Action  *Action `json:"action,omitempty"`
}

type ActionResponse struct {
	// Command and Action echo what was submitted, whichever form it came in.
	Command  string    `json:"command"`
	Action   Action    `json:"action"`
	Message  string    `json:"message"`
	Reason   string    `json:"reason,omitempty"`
	Snapshot *Snapshot `json:"snapshot"`
}

type Health struct {
	Status string `json:"status"`
	Rooms  int    `json:"rooms"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// Team is a registered participant. Hard settings and MQ dungeons are only
// offered when both teams of a race accept them.
type Team struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Plural         bool   `json:"plural,omitempty"`
	HardSettingsOK bool   `json:"hard_settings_ok"`
	MQOK           bool   `json:"mq_ok"`
}
