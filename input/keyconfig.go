package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"dot":       '.',
}

// keysByName indexes tcell key names case-insensitively
var keysByName map[string]tcell.Key

func init() {
	keysByName = make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		keysByName[strings.ToLower(name)] = k
	}
}

// ParseBindings builds a sparse override table from key → action name pairs
// Keys are single characters, rune aliases, or tcell key names ("Up", "Esc", "Ctrl-C")
// The "none" action unbinds a key
func ParseBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}

	for keyStr, actionName := range bindings {
		a, ok := ParseAction(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = a
			continue
		}

		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.Keys[k] = a
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func runeName(r rune) string {
	for name, ar := range runeAliases {
		if ar == r {
			return name
		}
	}
	return string(r)
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}

// LoadKeyTable merges config bindings over the defaults
func LoadKeyTable(bindings map[string]string) (*KeyTable, error) {
	if len(bindings) == 0 {
		return DefaultKeyTable(), nil
	}
	override, err := ParseBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}
