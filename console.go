package typedio

import (
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Fixed texts and date patterns shared by every console.
const (
	// DefaultPrompt is written before a read when no prompt is given.
	DefaultPrompt = "Please enter value: "
	// DefaultErrorMessage is written after a rejected line when no message is given.
	DefaultErrorMessage = "Can't read value!"
	// DefaultChoiceErrorMessage is the error message of menu choices.
	DefaultChoiceErrorMessage = "Cannot read line. Try again."
	// DefaultDatePattern is the pattern used by date reads.
	DefaultDatePattern = "dd/MM/yyyy"
	// DefaultDateTimePattern is the pattern used by date-time reads.
	DefaultDateTimePattern = "dd/MM/yyyy HH:mm:ss"
)

// Common errors
var (
	// ErrNoLine is reported when a read attempt produced no line, either at
	// end of input or after a transport error.
	ErrNoLine = errors.New("no line")
	// ErrConversion marks a line that could not be converted.
	ErrConversion = errors.New("conversion failed")
	// ErrPattern marks an unusable date or date-time pattern.
	ErrPattern = errors.New("invalid pattern")
)

// Transport is the line-oriented console a typed read talks to.
//
// ReadLine writes prompt, reads one line and returns it with true. When no
// line is available it returns false; after a low-level read error it also
// writes errorMessage. It never retries.
type Transport interface {
	WriteText(s string)
	WriteLine(s string)
	ReadLine(prompt, errorMessage string) (string, bool)
}

// Config holds the configuration for a console.
type Config struct {
	Input              io.Reader    // Input stream (default: os.Stdin)
	Output             io.Writer    // Output stream (default: os.Stdout)
	UseTTY             bool         // Read from and write to the controlling terminal
	Prompt             string       // Prompt used by reads without explicit arguments
	ErrorMessage       string       // Error message used by reads without explicit arguments
	ChoiceErrorMessage string       // Error message used by ChoiceDefault
	ColorScheme        *ColorScheme // Colors for prompts and errors (nil for plain text)
	Logger             *zap.Logger  // Diagnostic logger (nil for no logging)
}

// Option represents a configuration option for a console.
type Option func(*Config)

// WithInput sets the stream lines are read from.
func WithInput(r io.Reader) Option {
	return func(c *Config) {
		c.Input = r
	}
}

// WithOutput sets the stream prompts and messages are written to.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithTTY makes the console talk to the controlling terminal instead of the
// standard streams. Use it when stdin or stdout is redirected but the user
// still has to be asked.
func WithTTY() Option {
	return func(c *Config) {
		c.UseTTY = true
	}
}

// WithPrompt sets the default prompt.
func WithPrompt(prompt string) Option {
	return func(c *Config) {
		c.Prompt = prompt
	}
}

// WithErrorMessage sets the default error message of typed reads.
func WithErrorMessage(message string) Option {
	return func(c *Config) {
		c.ErrorMessage = message
	}
}

// WithChoiceErrorMessage sets the default error message of menu choices.
func WithChoiceErrorMessage(message string) Option {
	return func(c *Config) {
		c.ChoiceErrorMessage = message
	}
}

// WithColorScheme sets the color scheme. Colors are only emitted when the
// output is a terminal.
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Console is a Transport bound to an input and an output stream.
type Console struct {
	config   Config
	input    lineReader
	renderer *renderer
	logger   *zap.Logger
	shared   bool // Default console, never closed
}

var (
	defaultConsole     *Console
	defaultConsoleOnce sync.Once
)

// Default returns the process-wide console bound to stdin and stdout.
//
// It is created on first use and lives until the process exits.
func Default() *Console {
	defaultConsoleOnce.Do(func() {
		defaultConsole = newFromConfig(Config{}, newStreamLineReader(os.Stdin))
		defaultConsole.shared = true
	})
	return defaultConsole
}

// NewConsole creates a console with the given options.
//
// Example:
//
//	c, err := typedio.NewConsole(
//		typedio.WithTTY(),
//		typedio.WithPrompt("> "),
//		typedio.WithErrorMessage("Try again."),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
func NewConsole(options ...Option) (*Console, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}

	if config.UseTTY {
		input, output, err := newTTYLineReader()
		if err != nil {
			return nil, err
		}
		if config.Output == nil {
			config.Output = output
		}
		return newFromConfig(config, input), nil
	}

	if config.Input == nil {
		config.Input = os.Stdin
	}
	return newFromConfig(config, newStreamLineReader(config.Input)), nil
}

func newFromConfig(config Config, input lineReader) *Console {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.ErrorMessage == "" {
		config.ErrorMessage = DefaultErrorMessage
	}
	if config.ChoiceErrorMessage == "" {
		config.ChoiceErrorMessage = DefaultChoiceErrorMessage
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	output, colors := setupOutput(config.Output)
	scheme := config.ColorScheme
	if !colors {
		scheme = nil
	}

	return &Console{
		config:   config,
		input:    input,
		renderer: newRenderer(output, scheme),
		logger:   config.Logger,
	}
}

// WriteText writes s without a line terminator.
func (c *Console) WriteText(s string) {
	c.write(c.renderer.text(s))
}

// WriteLine writes s followed by a line terminator.
func (c *Console) WriteLine(s string) {
	c.write(c.renderer.line(s))
}

// WriteError writes an error message followed by a line terminator, in the
// error color when colors are enabled.
func (c *Console) WriteError(s string) {
	c.write(c.renderer.errorLine(s))
}

func (c *Console) write(err error) {
	if err != nil {
		c.logger.Warn("failed to write output", zap.Error(err))
	}
}

// ReadLine writes prompt and reads one line.
//
// It returns false at end of input. After any other read error it writes
// errorMessage first. Empty lines are returned as present.
func (c *Console) ReadLine(prompt, errorMessage string) (string, bool) {
	c.write(c.renderer.prompt(prompt))

	line, err := c.input.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			c.logger.Debug("end of input", zap.String("prompt", prompt))
			return "", false
		}
		c.logger.Warn("failed to read line", zap.String("prompt", prompt), zap.Error(err))
		c.WriteError(errorMessage)
		return "", false
	}

	c.logger.Debug("line read", zap.String("prompt", prompt), zap.Int("length", len(line)))
	return line, true
}

// Prompt returns the default prompt of the console.
func (c *Console) Prompt() string {
	return c.config.Prompt
}

// ErrorMessage returns the default error message of the console.
func (c *Console) ErrorMessage() string {
	return c.config.ErrorMessage
}

// Logger returns the diagnostic logger of the console.
func (c *Console) Logger() *zap.Logger {
	return c.logger
}

// Close releases the controlling terminal if the console opened one.
// It is safe to call Close multiple times. Closing the default console
// has no effect.
func (c *Console) Close() error {
	if c.shared {
		return nil
	}
	if c.input != nil {
		return c.input.Close()
	}
	return nil
}
