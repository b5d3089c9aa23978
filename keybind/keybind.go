// Package keybind maps configurable key names to key events.
//
// Key names are normalized to one vocabulary shared by every host: lower-case
// named keys ("right", "pgdn", "esc"), case-sensitive runes ("g", "G") and
// modifiers joined with "+" in the order ctrl, alt, shift, meta.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of keys triggering one action, with its help text.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the keybind disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = normalizeKeys(keys...)
}

func (k Keybind) Help() Help {
	return k.help
}

// Enabled reports whether the keybind matches events and shows in help.
func (k Keybind) Enabled() bool {
	return !k.disabled
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

type Help struct {
	Key  string
	Desc string
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	return MatchesName(EventName(event), keybinds...)
}

// MatchesName reports whether the normalized key name triggers any of the
// enabled keybinds.
func MatchesName(name string, keybinds ...Keybind) bool {
	for _, keybind := range keybinds {
		if keybind.Enabled() && slices.Contains(keybind.keys, name) {
			return true
		}
	}
	return false
}

func normalizeKeys(keys ...string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = Normalize(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	return normalized
}

var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

var modifierNames = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

// keyAliases maps alternative spellings to the canonical key name.
var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"pgdown":   "pgdn",
	"del":      "delete",
	"ins":      "insert",
	"space":    " ",
}

// Normalize returns the canonical name of key, or "" when key names no key.
func Normalize(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	lower := strings.ToLower(key)
	if !strings.Contains(key, "+") && strings.HasPrefix(lower, "ctrl-") && len(key) > len("ctrl-") {
		key = "ctrl+" + key[len("ctrl-"):]
	}

	mods := make(map[string]bool, len(modifierOrder))
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierNames[strings.ToLower(part)]; ok {
			mods[mod] = true
			continue
		}
		primary = primaryName(part)
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods["shift"] = true
		primary = "tab"
	}
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return join(mods, primary)
}

func primaryName(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) > len("Rune[]") {
		return key[len("Rune[") : len(key)-1]
	}
	if len([]rune(key)) == 1 {
		return key
	}
	lower := strings.ToLower(key)
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	return lower
}

func join(mods map[string]bool, primary string) string {
	parts := make([]string, 0, len(modifierOrder)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

// keyNames holds the tcell keys with a name of their own.
var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

// EventName returns the normalized name of a key event.
func EventName(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key := event.Key()
	modifiers := event.Modifiers()
	mods := map[string]bool{
		"ctrl":  modifiers&tcell.ModCtrl != 0,
		"alt":   modifiers&tcell.ModAlt != 0,
		"shift": modifiers&tcell.ModShift != 0 || key == tcell.KeyBacktab,
		"meta":  modifiers&tcell.ModMeta != 0,
	}

	primary, named := keyNames[key]
	switch {
	case named:
	case key == tcell.KeyRune:
		// Shift is already part of the rune.
		primary = string(event.Rune())
		mods["shift"] = false
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	default:
		return Normalize(event.Name())
	}
	if len([]rune(primary)) == 1 && (mods["ctrl"] || mods["alt"] || mods["meta"]) {
		primary = strings.ToLower(primary)
	}
	return join(mods, primary)
}
