package typedio

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// lineReader abstracts the input side of a console so that the same Console
// can read from a plain stream, from the controlling terminal, or from a
// scripted source in tests.
//
// Implementations:
//   - streamLineReader: buffered reads from any io.Reader (stdin by default)
//   - ttyLineReader: reads from the controlling terminal via go-tty
//   - mockLineReader: scripted lines and errors for testing
type lineReader interface {
	ReadLine() (string, error) // Read one line without its terminator
	Close() error              // Release the underlying resource
}

// streamLineReader reads lines from a buffered io.Reader.
type streamLineReader struct {
	reader *bufio.Reader
}

func newStreamLineReader(r io.Reader) *streamLineReader {
	return &streamLineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line. A final line without a terminator is still
// returned as a line; io.EOF is reported only when no data is left.
func (s *streamLineReader) ReadLine() (string, error) {
	return readLineFrom(s.reader)
}

func (s *streamLineReader) Close() error {
	return nil
}

// runeSource yields the keys typed on a terminal, one rune at a time.
type runeSource interface {
	ReadRune() (rune, error)
}

// Control keys handled while reading from the terminal.
const (
	keyCtrlD     = 4
	keyBackspace = 8
	keyDelete    = 127
)

// ttyLineReader reads from the controlling terminal even when stdin is
// redirected.
//
// go-tty switches the terminal to non-canonical mode without echo, so the
// reader does its own line discipline: printable runes are echoed, backspace
// erases, and Enter ends the line whether it arrives as '\r' or '\n'.
// Ctrl+D on an empty line is end of input.
type ttyLineReader struct {
	tty    *tty.TTY
	source runeSource
	echo   io.Writer
	skipLF bool // The previous line ended with '\r'
	closed bool // Prevents a double close, which panics on Windows
}

// newTTYLineReader opens the controlling terminal and returns a reader for
// it together with a writer that reaches the same terminal.
func newTTYLineReader() (*ttyLineReader, io.Writer, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open terminal")
	}
	return &ttyLineReader{
		tty:    t,
		source: t,
		echo:   t.Output(),
	}, t.Output(), nil
}

func (t *ttyLineReader) ReadLine() (string, error) {
	if t.closed {
		return "", errors.Wrap(os.ErrClosed, "terminal")
	}

	var line []rune
	for {
		r, err := t.source.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				t.write("\n")
				return string(line), nil
			}
			return "", err
		}

		if t.skipLF {
			t.skipLF = false
			if r == '\n' {
				continue
			}
		}

		switch r {
		case '\r', '\n':
			t.skipLF = r == '\r'
			t.write("\n")
			return string(line), nil
		case keyCtrlD:
			if len(line) == 0 {
				t.write("\n")
				return "", io.EOF
			}
		case keyBackspace, keyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				t.write("\b \b")
			}
		default:
			if unicode.IsPrint(r) {
				line = append(line, r)
				t.write(string(r))
			}
		}
	}
}

// write echoes s back to the terminal. Echo is best effort.
func (t *ttyLineReader) write(s string) {
	if t.echo != nil {
		_, _ = io.WriteString(t.echo, s)
	}
}

func (t *ttyLineReader) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}

func readLineFrom(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineTerminator(line), nil
		}
		return "", err
	}
	return trimLineTerminator(line), nil
}

func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// setupOutput prepares w for writing and reports whether it is a terminal
// that can display ANSI colors.
func setupOutput(w io.Writer) (io.Writer, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return w, false
	}
	isTerminal := term.IsTerminal(int(f.Fd()))
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI color support
		return colorable.NewColorable(f), isTerminal
	}
	return f, isTerminal
}

// IsTerminal reports whether r is attached to an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
