package engine

import "fmt"

// Choice is a non-default value of a setting.
type Choice struct {
	Name    string
	Display string
	Hard    bool
}

type Setting struct {
	Name           string
	Display        string
	Default        string
	DefaultDisplay string
	Other          []Choice
	Description    string
}

// AllHard is true when every alternative is marked hard, including when there
// are none.
func (s Setting) AllHard() bool {
	for _, c := range s.Other {
		if !c.Hard {
			return false
		}
	}
	return true
}

// Catalog is the static table of one kind. Settings drive the pick count;
// Synthetic entries are written by yes/no steps and resolved but never
// counted; Flags are bookkeeping keys stored alongside the picks.
type Catalog struct {
	Settings  []Setting
	Synthetic []Setting
	Flags     []string
}

func (c *Catalog) Lookup(name string) (Setting, bool) {
	for _, s := range c.Settings {
		if s.Name == name {
			return s, true
		}
	}
	return Setting{}, false
}

// MustLookup is for names the rules themselves refer to; a miss is a bug in
// the catalog data.
func (c *Catalog) MustLookup(name string) Setting {
	s, ok := c.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("engine: catalog has no setting %q", name))
	}
	return s
}

func (c *Catalog) Declares(key string) bool {
	if _, ok := c.Lookup(key); ok {
		return true
	}
	for _, s := range c.Synthetic {
		if s.Name == key {
			return true
		}
	}
	for _, f := range c.Flags {
		if f == key {
			return true
		}
	}
	return false
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Settings))
	for _, s := range c.Settings {
		names = append(names, s.Name)
	}
	return names
}

// Count is how many catalog settings p has decided.
func (c *Catalog) Count(p Picks) int {
	n := 0
	for _, s := range c.Settings {
		if _, ok := p[s.Name]; ok {
			n++
		}
	}
	return n
}

// Resolve fills every undecided setting with its default. Flags are left out.
func (c *Catalog) Resolve(p Picks) Picks {
	out := make(Picks, len(c.Settings)+len(c.Synthetic))
	for _, s := range c.Settings {
		out[s.Name] = p.Get(s.Name, s.Default)
	}
	for _, s := range c.Synthetic {
		out[s.Name] = p.Get(s.Name, s.Default)
	}
	return out
}

type BanSetting struct {
	Name           string
	Display        string
	Default        string
	DefaultDisplay string
	Description    string
}

// BanPage groups settings so a chat UI can paginate them.
type BanPage struct {
	Name     string
	Settings []BanSetting
}

type BanSettings []BanPage

func (b BanSettings) NumSettings() int {
	n := 0
	for _, page := range b {
		n += len(page.Settings)
	}
	return n
}

func (b BanSettings) Page(idx int) (BanPage, bool) {
	if idx < 0 || idx >= len(b) {
		return BanPage{}, false
	}
	return b[idx], true
}

func (b BanSettings) All() []BanSetting {
	all := make([]BanSetting, 0, b.NumSettings())
	for _, page := range b {
		all = append(all, page.Settings...)
	}
	return all
}

func (b BanSettings) Get(name string) (BanSetting, bool) {
	for _, page := range b {
		for _, s := range page.Settings {
			if s.Name == name {
				return s, true
			}
		}
	}
	return BanSetting{}, false
}

func (b BanSettings) Names() []string {
	var names []string
	for _, s := range b.All() {
		names = append(names, s.Name)
	}
	return names
}

type DraftSettingChoice struct {
	Name    string
	Display string
}

type DraftSetting struct {
	Name        string
	Display     string
	Options     []DraftSettingChoice
	Description string
}

func (s DraftSetting) Option(name string) (DraftSettingChoice, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o, true
		}
	}
	return DraftSettingChoice{}, false
}

func (s DraftSetting) OptionNames() []string {
	names := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		names = append(names, o.Name)
	}
	return names
}

type DraftPage struct {
	Name     string
	Settings []DraftSetting
}

type DraftSettings []DraftPage

func (d DraftSettings) NumSettings() int {
	n := 0
	for _, page := range d {
		n += len(page.Settings)
	}
	return n
}

func (d DraftSettings) Page(idx int) (DraftPage, bool) {
	if idx < 0 || idx >= len(d) {
		return DraftPage{}, false
	}
	return d[idx], true
}

func (d DraftSettings) All() []DraftSetting {
	all := make([]DraftSetting, 0, d.NumSettings())
	for _, page := range d {
		all = append(all, page.Settings...)
	}
	return all
}

func (d DraftSettings) Get(name string) (DraftSetting, bool) {
	for _, page := range d {
		for _, s := range page.Settings {
			if s.Name == name {
				return s, true
			}
		}
	}
	return DraftSetting{}, false
}

func (d DraftSettings) Names() []string {
	var names []string
	for _, s := range d.All() {
		names = append(names, s.Name)
	}
	return names
}

func banSetting(s Setting) BanSetting {
	return BanSetting{
		Name:           s.Name,
		Display:        s.Display,
		Default:        s.Default,
		DefaultDisplay: s.DefaultDisplay,
		Description:    s.Description,
	}
}
