package input

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be written as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// nameToKey is the lowercased inverse of tcell.KeyNames
var nameToKey = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// binding identifies one physical key
type binding struct {
	key tcell.Key
	r   rune
}

// resolveKey maps a key name to a binding
// Single characters bind runes (case-insensitive); longer names bind tcell special keys
func resolveKey(name string) (binding, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return binding{key: tcell.KeyRune, r: r}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return binding{key: tcell.KeyRune, r: toLower(r)}, nil
	}
	if k, ok := nameToKey[strings.ToLower(name)]; ok {
		return binding{key: k}, nil
	}
	return binding{}, errors.Errorf("unknown key name %q", name)
}

// bindingOf maps a key event to its lookup binding
func bindingOf(ev *tcell.EventKey) binding {
	if ev.Key() == tcell.KeyRune {
		return binding{key: tcell.KeyRune, r: toLower(ev.Rune())}
	}
	return binding{key: ev.Key()}
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
