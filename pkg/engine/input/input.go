package input

import (
	"strings"
)

// CodeInterrupt is emitted for Ctrl+C in raw mode.
const CodeInterrupt = "Interrupt"

// DecodeTerminalKeys turns one raw-mode read from a terminal into DOM-style key
// codes. Terminals only report presses, so callers synthesise releases.
func DecodeTerminalKeys(buf []byte) []string {
	var codes []string
	for i := 0; i < len(buf); {
		code, n := decodeOne(buf[i:])
		if code != "" {
			codes = append(codes, code)
		}
		i += n
	}
	return codes
}

// decodeOne decodes the key at the start of buf and reports how many bytes it used.
func decodeOne(buf []byte) (string, int) {
	b := buf[0]

	if b == 0x1b {
		// Lone ESC is the Escape key; ESC [ X and ESC O X are cursor keys.
		if len(buf) < 3 || (buf[1] != '[' && buf[1] != 'O') {
			return "Escape", 1
		}
		switch buf[2] {
		case 'A':
			return "ArrowUp", 3
		case 'B':
			return "ArrowDown", 3
		case 'C':
			return "ArrowRight", 3
		case 'D':
			return "ArrowLeft", 3
		}
		// Unknown escape sequence - discard it
		return "", 3
	}

	switch {
	case b == 3:
		return CodeInterrupt, 1
	case b == '\r' || b == '\n':
		return "Enter", 1
	case b == '\t':
		return "Tab", 1
	case b == 127 || b == 8:
		return "Backspace", 1
	case b == '[':
		return "BracketLeft", 1
	case b == ']':
		return "BracketRight", 1
	case b == ' ':
		return "Space", 1
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return "Key" + strings.ToUpper(string(b)), 1
	case b >= '0' && b <= '9':
		return "Digit" + string(b), 1
	}
	return "", 1
}
