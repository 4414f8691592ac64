package input

import (
	"bufio"
	"io"
	"os"
	"time"
	"unicode"

	"golang.org/x/term"
)

const (
	keyCtrlC     = 3
	keyBackspace = 127
	keyEscape    = 0x1b
)

// KeyReader turns a raw byte stream into key codes understood by the bindings
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader reads key presses from r
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadCode blocks until one key press is available and returns its code.
// Unknown escape sequences come back as "".
func (k *KeyReader) ReadCode() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == keyEscape:
		return k.readEscape()
	case b == keyCtrlC:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == keyBackspace || b == 8:
		return "backspace", nil
	case b >= 32 && b < 127:
		return string(unicode.ToLower(rune(b))), nil
	}
	return "", nil
}

// ReadRaw wraps ReadCode into a RawInput event
func (k *KeyReader) ReadRaw() (RawInput, error) {
	code, err := k.ReadCode()
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, err
}

// readEscape decodes CSI (ESC [) and SS3 (ESC O) arrow sequences. A lone
// escape with nothing buffered behind it is the escape key itself.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}
	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}

// EnterRawMode puts stdin into raw mode and returns a function restoring it.
func EnterRawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// IsInteractive reports whether stdin is a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
