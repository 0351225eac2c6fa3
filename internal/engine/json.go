package engine

import (
	"encoding/json"
	"fmt"
)

const (
	keyHighSeed    = "high_seed"
	keyWentFirst   = "went_first"
	keySkippedBans = "skipped_bans"
)

// MarshalJSON writes the settings next to the bookkeeping fields in one flat
// object, the way drafts are stored on a race:
//
//	{"high_seed":"t1","went_first":true,"skipped_bans":0,"wincon":"meds"}
func (d Draft) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Settings)+3)
	for k, v := range d.Settings {
		m[k] = v
	}
	m[keyHighSeed] = d.HighSeed
	m[keyWentFirst] = d.WentFirst
	m[keySkippedBans] = d.SkippedBans
	return json.Marshal(m)
}

// UnmarshalJSON accepts any extra string keys as settings so new settings
// never need a migration. A missing skipped_bans reads as 0.
func (d *Draft) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := Draft{Settings: Picks{}}
	for k, v := range raw {
		var err error
		switch k {
		case keyHighSeed:
			err = json.Unmarshal(v, &out.HighSeed)
		case keyWentFirst:
			err = json.Unmarshal(v, &out.WentFirst)
		case keySkippedBans:
			err = json.Unmarshal(v, &out.SkippedBans)
		default:
			var s string
			err = json.Unmarshal(v, &s)
			out.Settings[k] = s
		}
		if err != nil {
			return fmt.Errorf("draft field %q: %w", k, err)
		}
	}
	*d = out
	return nil
}
