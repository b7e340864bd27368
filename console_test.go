package typedio

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newForTesting creates a console reading the given input and writing to the
// returned buffer.
func newForTesting(t *testing.T, input string, options ...Option) (*Console, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	options = append([]Option{
		WithInput(strings.NewReader(input)),
		WithOutput(out),
		WithLogger(zaptest.NewLogger(t)),
	}, options...)

	c, err := NewConsole(options...)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, c.Close()) })
	return c, out
}

func TestNewConsoleDefaults(t *testing.T) {
	t.Parallel()

	c, _ := newForTesting(t, "")

	assert.Equal(t, DefaultPrompt, c.Prompt())
	assert.Equal(t, DefaultErrorMessage, c.ErrorMessage())
	assert.Equal(t, DefaultChoiceErrorMessage, c.config.ChoiceErrorMessage)
	assert.NotNil(t, c.Logger())
}

func TestNewConsoleOptions(t *testing.T) {
	t.Parallel()

	c, out := newForTesting(t, "x\n3\n",
		WithPrompt("> "),
		WithErrorMessage("nope"),
		WithChoiceErrorMessage("again"),
	)

	assert.Equal(t, int32(3), c.ReadInt())
	assert.Equal(t, "> nope\n> ", out.String())
	assert.Equal(t, "again", c.config.ChoiceErrorMessage)
}

func TestConsoleWrite(t *testing.T) {
	t.Parallel()

	c, out := newForTesting(t, "")

	c.WriteText("test")
	c.WriteLine("line")
	c.WriteLine("")
	c.WriteError("oops")

	assert.Equal(t, "testline\n\noops\n", out.String())
}

func TestConsoleReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain lines", input: "string\n\n-1\n   \n", want: []string{"string", "", "-1", "   "}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "last line without terminator", input: "a\nb", want: []string{"a", "b"}},
		{name: "empty input", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, out := newForTesting(t, tt.input)

			var got []string
			for {
				line, ok := c.ReadLine("> ", "error")
				if !ok {
					break
				}
				got = append(got, line)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.Repeat("> ", len(tt.want)+1), out.String(), "end of input writes no error")
		})
	}
}

func TestConsoleReadLineTransportError(t *testing.T) {
	t.Parallel()

	out := &strings.Builder{}
	c := newFromConfig(Config{Output: out}, newMockLineReader(
		mockStep{err: errors.New("device not ready")},
		mockStep{line: "after"},
	))

	line, ok := c.ReadLine("? ", "Cannot read!")
	assert.False(t, ok)
	assert.Empty(t, line)

	line, ok = c.ReadLine("? ", "Cannot read!")
	assert.True(t, ok)
	assert.Equal(t, "after", line)

	assert.Equal(t, "? Cannot read!\n? ", out.String())
}

func TestConsoleTypedReadRecoversFromTransportError(t *testing.T) {
	t.Parallel()

	out := &strings.Builder{}
	c := newFromConfig(Config{Output: out}, newMockLineReader(
		mockStep{err: io.ErrUnexpectedEOF},
		mockStep{line: "12"},
	))

	assert.Equal(t, int64(12), c.ReadLongPrompt("n: ", "bad"))
	// The transport and the retry loop each report the failed attempt.
	assert.Equal(t, "n: bad\nbad\nn: ", out.String())
}

func TestConsoleTypedReads(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"1", "100", "-1", "0"} {
			c, _ := newForTesting(t, input+"\n")
			want, err := ParseInt(input)
			require.NoError(t, err)
			assert.Equal(t, want, c.ReadIntPrompt("", ""))
		}
	})

	t.Run("double", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"1.0", "100.0", "-1.0", "0.0"} {
			c, _ := newForTesting(t, input+"\n")
			want, err := ParseDouble(input)
			require.NoError(t, err)
			assert.Equal(t, want, c.ReadDoublePrompt("", ""))
		}
	})

	t.Run("big decimal", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"123.1234567891011121314151617", "0.123456", "-10000000.0000000", "0"} {
			c, _ := newForTesting(t, input+"\n")
			got := c.ReadBigDecimalPrompt("", "")
			want, _, err := apd.NewFromString(input)
			require.NoError(t, err)
			assert.Equal(t, 0, want.Cmp(got))
			assert.Equal(t, input, got.Text('f'))
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		c, out := newForTesting(t, "x\n1\n2\n3\n4.5\n5.5\nTrue\n9\n10\n")
		assert.Equal(t, int32(1), c.ReadInt())
		assert.Equal(t, int64(2), c.ReadLong())
		assert.Equal(t, int8(3), c.ReadInt8())
		assert.Equal(t, 4.5, c.ReadDouble())
		assert.Equal(t, float32(5.5), c.ReadFloat())
		assert.True(t, c.ReadBool())
		assert.Equal(t, int16(9), c.ReadInt16())
		assert.Equal(t, "10", c.ReadBigInt().String())
		assert.Equal(t, 1, strings.Count(out.String(), DefaultErrorMessage+"\n"))
		assert.True(t, strings.HasPrefix(out.String(), DefaultPrompt+DefaultErrorMessage+"\n"+DefaultPrompt))
	})

	t.Run("dates", func(t *testing.T) {
		t.Parallel()
		c, _ := newForTesting(t, "10/10/2010\n01/01/1999 20:00:00\n2020-12-31\n31.12.2020 23:59\n")
		assert.Equal(t, time.Date(2010, 10, 10, 0, 0, 0, 0, time.UTC), c.ReadDate())
		assert.Equal(t, time.Date(1999, 1, 1, 20, 0, 0, 0, time.UTC), c.ReadDateTime())
		assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), c.ReadDatePattern("", "", "yyyy-MM-dd"))
		assert.Equal(t, time.Date(2020, 12, 31, 23, 59, 0, 0, time.UTC), c.ReadDateTimePattern("", "", "dd.MM.yyyy HH:mm"))
	})
}

func TestConsoleReadWithCallback(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"1", "100", "-1", "0"} {
			c, _ := newForTesting(t, input+"\n")
			want, err := ParseInt(input)
			require.NoError(t, err)
			sideEffect := "i"

			got := c.ReadIntFunc("", "", func(v int32) {
				sideEffect += fmt.Sprint(v)
			})

			assert.Equal(t, want, got)
			assert.Equal(t, "i"+input, sideEffect)
		}
	})

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"10/10/2010", "01/01/1999"} {
			c, _ := newForTesting(t, input+"\n")
			var sideEffect time.Time

			got := c.ReadDateFunc("", "", func(d time.Time) { sideEffect = d.AddDate(0, 0, 1) })

			want, err := ParseDate(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, got.AddDate(0, 0, 1), sideEffect)
		}
	})

	t.Run("date-time", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"10/10/2010 09:00:30", "01/01/1999 00:00:00", "01/01/1999 20:00:00"} {
			c, _ := newForTesting(t, input+"\n")
			var sideEffect time.Time

			got := c.ReadDateTimeFunc("", "", func(d time.Time) { sideEffect = d.Add(time.Second) })

			want, err := ParseDateTime(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, got.Add(time.Second), sideEffect)
		}
	})

	t.Run("callback skipped for rejected lines", func(t *testing.T) {
		t.Parallel()
		c, out := newForTesting(t, "abc\n\n1.5\n")
		var calls []float64

		got := c.ReadDoubleFunc("", "bad", func(v float64) { calls = append(calls, v) })

		assert.Equal(t, 1.5, got)
		assert.Equal(t, []float64{1.5}, calls)
		assert.Equal(t, "bad\nbad\n", out.String())
	})

	t.Run("remaining types", func(t *testing.T) {
		t.Parallel()
		c, _ := newForTesting(t, "5\n6\n7\n8\nfalse\n123456789012345678901234567890\n1.10\n")
		var seen []string
		record := func(v any) { seen = append(seen, fmt.Sprint(v)) }

		c.ReadLongFunc("", "", func(v int64) { record(v) })
		c.ReadInt8Func("", "", func(v int8) { record(v) })
		c.ReadInt16Func("", "", func(v int16) { record(v) })
		c.ReadFloatFunc("", "", func(v float32) { record(v) })
		c.ReadBoolFunc("", "", func(v bool) { record(v) })
		c.ReadBigIntFunc("", "", func(v *big.Int) { record(v) })
		c.ReadBigDecimalFunc("", "", func(v *apd.Decimal) { record(v.Text('f')) })

		assert.Equal(t, []string{"5", "6", "7", "8", "false", "123456789012345678901234567890", "1.10"}, seen)
	})
}

func TestConsoleReadWithDefaults(t *testing.T) {
	t.Parallel()

	c, out := newForTesting(t, strings.Join([]string{
		"x", "1", "2", "3", "4", "5", "6.5", "7.5", "true",
		"10/10/2010", "01/01/1999 20:00:00", "2020-02-30", "31.12.2020 23:59", "text",
	}, "\n")+"\n", WithPrompt("> "), WithErrorMessage("no"))

	var seen []string
	record := func(v any) { seen = append(seen, fmt.Sprint(v)) }

	c.ReadIntFuncDefault(func(v int32) { record(v) })
	c.ReadLongFuncDefault(func(v int64) { record(v) })
	c.ReadInt8FuncDefault(func(v int8) { record(v) })
	c.ReadInt16FuncDefault(func(v int16) { record(v) })
	c.ReadBigIntFuncDefault(func(v *big.Int) { record(v) })
	c.ReadDoubleFuncDefault(func(v float64) { record(v) })
	c.ReadFloatFuncDefault(func(v float32) { record(v) })
	c.ReadBoolFuncDefault(func(v bool) { record(v) })
	c.ReadDateFuncDefault(func(v time.Time) { record(v.Format(time.DateOnly)) })
	c.ReadDateTimeFuncDefault(func(v time.Time) { record(v.Format(time.DateTime)) })
	record(c.ReadDatePatternDefault("yyyy-MM-dd").Format(time.DateOnly))
	record(c.ReadDateTimePatternDefault("dd.MM.yyyy HH:mm").Format(time.DateTime))
	c.ReadStringFuncDefault(func(v string) { record(v) })

	assert.Equal(t, []string{
		"1", "2", "3", "4", "5", "6.5", "7.5", "true",
		"2010-10-10", "1999-01-01 20:00:00", "2020-02-29", "2020-12-31 23:59:00", "text",
	}, seen)
	assert.True(t, strings.HasPrefix(out.String(), "> no\n> > "))
	assert.Equal(t, 1, strings.Count(out.String(), "no\n"))

	c2, _ := newForTesting(t, "0.25\n")
	got := c2.ReadBigDecimalFuncDefault(func(v *apd.Decimal) { record(v.Text('f')) })
	assert.Equal(t, "0.25", got.Text('f'))
}

func TestConsoleReadString(t *testing.T) {
	t.Parallel()

	c, out := newForTesting(t, "first\nsecond\n")

	line, ok := c.ReadString()
	assert.True(t, ok)
	assert.Equal(t, "first", line)

	var seen string
	line, ok = c.ReadStringFunc("name: ", "err", func(s string) { seen = s })
	assert.True(t, ok)
	assert.Equal(t, "second", line)
	assert.Equal(t, "second", seen)

	called := false
	_, ok = c.ReadStringFunc("name: ", "err", func(string) { called = true })
	assert.False(t, ok)
	assert.False(t, called, "no callback without a line")

	assert.Equal(t, DefaultPrompt+"name: name: ", out.String())
}

func TestConsoleReadStringPrompt(t *testing.T) {
	t.Parallel()

	c, out := newForTesting(t, "  spaced  \n")

	line, ok := c.ReadStringPrompt("? ", "err")
	assert.True(t, ok)
	assert.Equal(t, "  spaced  ", line, "lines are not trimmed")

	_, ok = c.ReadStringPrompt("? ", "err")
	assert.False(t, ok)
	assert.Equal(t, "? ? ", out.String())
}

func TestDefaultConsole(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.Same(t, c, Default())
	assert.Equal(t, DefaultPrompt, c.Prompt())
	assert.NoError(t, c.Close())
	assert.Same(t, c, Default(), "closing the default console keeps it")
}

func TestDefaultConsoleConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	consoles := make([]*Console, 8)
	for i := range consoles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			consoles[i] = Default()
			assert.NoError(t, consoles[i].Close())
		}()
	}
	wg.Wait()

	for _, c := range consoles {
		assert.Same(t, Default(), c)
	}
	assert.True(t, Default().shared)
}

func TestConsoleCloseTwice(t *testing.T) {
	t.Parallel()

	reader := newMockLineReader()
	c := newFromConfig(Config{Output: io.Discard}, reader)

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.True(t, reader.closed)
}

func TestConsoleIgnoresColorsOffTerminal(t *testing.T) {
	t.Parallel()

	c, out := newForTesting(t, "x\n1\n", WithColorScheme(ThemeDark))

	assert.Equal(t, int32(1), c.ReadIntPrompt("n: ", "bad"))
	assert.Equal(t, "n: bad\nn: ", out.String())
	assert.NotContains(t, out.String(), "\x1b[")
}
