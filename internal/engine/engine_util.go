package engine

import "sort"

// Picks maps a setting name to its chosen value. Auxiliary flags a kind
// declares are stored in the same map.
type Picks map[string]string

func (p Picks) Get(name, fallback string) string {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

func (p Picks) Clone() Picks {
	out := make(Picks, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the recorded names in sorted order.
func (p Picks) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of d that shares nothing with it.
func (d Draft) Clone() Draft {
	out := d
	out.Settings = d.Settings.Clone()
	if d.WentFirst != nil {
		first := *d.WentFirst
		out.WentFirst = &first
	}
	return out
}
