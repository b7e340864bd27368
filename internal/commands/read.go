package commands

import (
	"fmt"
	"math/big"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/nao1215/typedio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrInputEnded is returned when input ends before a value was accepted.
var ErrInputEnded = errors.New("input ended before a valid value was entered")

// valueReader reads one value from t and formats it for stdout.
type valueReader func(t typedio.Transport, prompt, errorMessage, pattern string) string

var valueReaders = map[string]valueReader{
	"int":      formatted(typedio.ParseInt, func(v int32) string { return strconv.FormatInt(int64(v), 10) }),
	"long":     formatted(typedio.ParseLong, func(v int64) string { return strconv.FormatInt(v, 10) }),
	"int8":     formatted(typedio.ParseInt8, func(v int8) string { return strconv.FormatInt(int64(v), 10) }),
	"int16":    formatted(typedio.ParseInt16, func(v int16) string { return strconv.FormatInt(int64(v), 10) }),
	"bigint":   formatted(typedio.ParseBigInt, func(v *big.Int) string { return v.String() }),
	"decimal":  formatted(typedio.ParseBigDecimal, func(v *apd.Decimal) string { return v.Text('f') }),
	"double":   formatted(typedio.ParseDouble, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }),
	"float":    formatted(typedio.ParseFloat, func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }),
	"bool":     formatted(typedio.ParseBool, strconv.FormatBool),
	"string":   formatted(typedio.ParseString, func(v string) string { return v }),
	"date":     dated(typedio.DefaultDatePattern, typedio.DateParser, time.DateOnly),
	"datetime": dated(typedio.DefaultDateTimePattern, typedio.DateTimeParser, "2006-01-02T15:04:05"),
}

func formatted[T any](conv func(string) (T, error), format func(T) string) valueReader {
	return func(t typedio.Transport, prompt, errorMessage, _ string) string {
		return format(typedio.Read(t, prompt, errorMessage, conv))
	}
}

func dated(defaultPattern string, parser func(string) func(string) (time.Time, error), layout string) valueReader {
	return func(t typedio.Transport, prompt, errorMessage, pattern string) string {
		if pattern == "" {
			pattern = defaultPattern
		}
		return typedio.Read(t, prompt, errorMessage, parser(pattern)).Format(layout)
	}
}

func typeNames() []string {
	names := make([]string, 0, len(valueReaders))
	for name := range valueReaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readCmd(cfg *settings) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "read <type>",
		Short: "Ask until a value of the given type is entered",
		Long: fmt.Sprintf(`Ask until a value of the given type is entered and print it.

Types: %s

Dates are printed as 2006-01-02 and date-times as 2006-01-02T15:04:05.
Use --pattern to change the input pattern (default %q for dates and
%q for date-times).`,
			strings.Join(typeNames(), ", "), typedio.DefaultDatePattern, typedio.DefaultDateTimePattern),
		Args:      cobra.ExactArgs(1),
		ValidArgs: typeNames(),
		Example: `  typedio read int --prompt "Age: "
  typedio read date --pattern yyyy-MM-dd
  typedio read decimal --error "Not a number"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, ok := valueReaders[strings.ToLower(args[0])]
			if !ok {
				return errors.Newf("unknown type %q (available: %s)", args[0], strings.Join(typeNames(), ", "))
			}
			if pattern != "" && !strings.HasPrefix(strings.ToLower(args[0]), "date") {
				return errors.New("--pattern only applies to date and datetime")
			}

			c, err := newConsole(cmd, cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			var value string
			err = untilInputEnds(c, func(t typedio.Transport) {
				value = reader(t, cfg.Prompt, cfg.ErrorMessage, pattern)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Date pattern, e.g. yyyy-MM-dd or dd.MM.yyyy HH:mm")
	return cmd
}

// newConsole creates a console for cmd: input from cmd's stdin and prompts on
// its stderr, or both on the controlling terminal with --tty.
func newConsole(cmd *cobra.Command, cfg *settings) (*typedio.Console, error) {
	options := []typedio.Option{
		typedio.WithPrompt(cfg.Prompt),
		typedio.WithErrorMessage(cfg.ErrorMessage),
		typedio.WithChoiceErrorMessage(cfg.ChoiceErrorMessage),
		typedio.WithLogger(newLogger(cmd.ErrOrStderr(), cfg.Verbose)),
	}
	if cfg.Theme != "" {
		options = append(options, typedio.WithColorScheme(typedio.Themes[cfg.Theme]))
	}
	if cfg.TTY {
		options = append(options, typedio.WithTTY())
	} else {
		options = append(options,
			typedio.WithInput(cmd.InOrStdin()),
			typedio.WithOutput(cmd.ErrOrStderr()),
		)
	}

	c, err := typedio.NewConsole(options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open console")
	}
	return c, nil
}

// endAwareConsole stops the goroutine running a read once input has ended.
// Typed reads retry forever, so a script piping a finite input would
// otherwise never terminate.
type endAwareConsole struct {
	*typedio.Console
	ended chan struct{}
}

func (c *endAwareConsole) ReadLine(prompt, errorMessage string) (string, bool) {
	line, ok := c.Console.ReadLine(prompt, errorMessage)
	if !ok {
		c.Logger().Debug("aborting read", zap.String("prompt", prompt))
		close(c.ended)
		runtime.Goexit()
	}
	return line, ok
}

// untilInputEnds runs read on its own goroutine and returns ErrInputEnded if
// the console runs out of lines before read returns.
func untilInputEnds(c *typedio.Console, read func(t typedio.Transport)) error {
	t := &endAwareConsole{Console: c, ended: make(chan struct{})}
	done := make(chan struct{})

	go func() {
		defer func() {
			select {
			case <-t.ended:
			default:
				close(done)
			}
		}()
		read(t)
	}()

	select {
	case <-done:
		return nil
	case <-t.ended:
		return ErrInputEnded
	}
}
