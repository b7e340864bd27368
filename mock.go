package typedio

import (
	"io"
	"strings"
)

// mockStep is one scripted answer of a mock input source.
type mockStep struct {
	line       string // Line content when the step is present
	err        error  // Read error returned instead of a line
	panicValue any    // Value to panic with instead of returning
}

// mockLineReader implements lineReader for testing.
//
// It replays a fixed sequence of lines and errors and then reports io.EOF,
// so tests can drive a real Console through transport failures without a
// terminal.
type mockLineReader struct {
	steps  []mockStep
	pos    int
	closed bool
}

func newMockLineReader(steps ...mockStep) *mockLineReader {
	return &mockLineReader{steps: steps}
}

func (m *mockLineReader) ReadLine() (string, error) {
	if m.pos >= len(m.steps) {
		return "", io.EOF
	}
	step := m.steps[m.pos]
	m.pos++
	if step.panicValue != nil {
		panic(step.panicValue)
	}
	if step.err != nil {
		return "", step.err
	}
	return step.line, nil
}

func (m *mockLineReader) Close() error {
	m.closed = true
	return nil
}

// mockTransport implements Transport for testing the protocol layer.
//
// Features:
//   - Deterministic input: a scripted sequence of present, absent and
//     panicking reads, absent once the script is exhausted
//   - Output capture: everything written, in order, with a separate count
//     of each error message
//   - Read counting: number of ReadLine calls and the prompts they used
type mockTransport struct {
	steps   []mockStep
	absent  map[int]bool // Step indexes that return "no line"
	pos     int
	out     strings.Builder
	prompts []string
	errs    []string // ReadLine error messages, one per call
}

func newMockTransport(lines ...string) *mockTransport {
	steps := make([]mockStep, len(lines))
	for i, line := range lines {
		steps[i] = mockStep{line: line}
	}
	return &mockTransport{steps: steps, absent: map[int]bool{}}
}

// withAbsent marks the read at index i as returning no line.
func (m *mockTransport) withAbsent(i int) *mockTransport {
	m.absent[i] = true
	return m
}

// withPanic makes the read at index i panic with v.
func (m *mockTransport) withPanic(i int, v any) *mockTransport {
	m.steps[i].panicValue = v
	return m
}

func (m *mockTransport) WriteText(s string) {
	m.out.WriteString(s)
}

func (m *mockTransport) WriteLine(s string) {
	m.out.WriteString(s)
	m.out.WriteString("\n")
}

func (m *mockTransport) ReadLine(prompt, errorMessage string) (string, bool) {
	m.WriteText(prompt)
	m.prompts = append(m.prompts, prompt)
	m.errs = append(m.errs, errorMessage)

	if m.pos >= len(m.steps) {
		m.pos++
		return "", false
	}
	i := m.pos
	m.pos++
	if m.steps[i].panicValue != nil {
		panic(m.steps[i].panicValue)
	}
	if m.absent[i] {
		return "", false
	}
	return m.steps[i].line, true
}

// reads returns the number of ReadLine calls so far.
func (m *mockTransport) reads() int {
	return m.pos
}

// output returns everything written so far.
func (m *mockTransport) output() string {
	return m.out.String()
}

// mockRuneSource implements runeSource for testing the terminal reader.
// It replays keys and then reports io.EOF.
type mockRuneSource struct {
	keys []rune
	pos  int
}

func newMockRuneSource(keys string) *mockRuneSource {
	return &mockRuneSource{keys: []rune(keys)}
}

func (m *mockRuneSource) ReadRune() (rune, error) {
	if m.pos >= len(m.keys) {
		return 0, io.EOF
	}
	r := m.keys[m.pos]
	m.pos++
	return r, nil
}
