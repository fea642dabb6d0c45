package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/jellyreel/internal/config"
	"github.com/depeter/jellyreel/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"f11":       ebiten.KeyF11,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// parseKeys converts a comma-separated list of key names. Unknown names
// are logged and skipped.
func parseKeys(list string) []ebiten.Key {
	var keys []ebiten.Key
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, ok := parseKey(name)
		if !ok {
			log.Printf("Unknown key %q in keybinds", name)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// bindings are the parsed [keybinds] section.
type bindings struct {
	prev, next, play, stop, fullscreen []ebiten.Key
}

func parseBindings(kb config.KeybindConfig) bindings {
	return bindings{
		prev:       parseKeys(kb.Prev),
		next:       parseKeys(kb.Next),
		play:       parseKeys(kb.Play),
		stop:       parseKeys(kb.Stop),
		fullscreen: parseKeys(kb.Fullscreen),
	}
}

// carousel returns the bindings the home screen handles itself.
func (b bindings) carousel() ui.Keys {
	return ui.Keys{Prev: b.prev, Next: b.next, Play: b.play}
}

// justPressed reports whether any of keys was just pressed without Alt.
func (b bindings) justPressed(keys []ebiten.Key) bool {
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		return false
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
