package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode is the value of the --color flag.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(value) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(value), nil
	default:
		return "", NewUserError(fmt.Sprintf("invalid --color value %q (want auto, always or never)", value))
	}
}

// Enabled resolves the mode against actual terminal detection.
func (m ColorMode) Enabled(isTTY bool) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
