package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const hexDigits = "0123456789abcdefABCDEF"

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 || strings.Trim(digits, hexDigits) != "" {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q", hex)
	}
	return tcell.GetColor("#" + digits), nil
}
