package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownKey = errors.New("scene: unknown key name")

// ParseKey maps a key name such as "Z", "space" or "Left" to an ebiten key.
// Names are matched case-insensitively by ebiten.Key's text unmarshaller.
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

// GameKeys parses the configured left/right game keys.
func GameKeys(left, right string) (ebiten.Key, ebiten.Key, error) {
	l, err := ParseKey(left)
	if err != nil {
		return 0, 0, fmt.Errorf("key_left: %w", err)
	}
	r, err := ParseKey(right)
	if err != nil {
		return 0, 0, fmt.Errorf("key_right: %w", err)
	}
	return l, r, nil
}
