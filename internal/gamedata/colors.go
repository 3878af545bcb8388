package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidColor is returned for a color that is not #RRGGBB or #RGB.
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor converts a template color ("#CC3333", "CC3333" or the
// shorthand "#C33") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 24)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
