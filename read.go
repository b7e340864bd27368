package typedio

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// errorWriter is implemented by transports that render error messages
// differently from plain lines.
type errorWriter interface {
	WriteError(s string)
}

// loggerProvider is implemented by transports that carry a logger.
type loggerProvider interface {
	Logger() *zap.Logger
}

// Read prompts on t until a line converts with conv and returns the result.
//
// A missing line, a conversion error and a panicking conversion are all
// failures: errorMessage is written as a line and the read starts over with
// the same prompt. There is no retry limit, so Read returns only once a
// valid value has been entered.
//
// Example:
//
//	n := typedio.Read(c, "Count: ", "Not a number!", typedio.ParseInt)
func Read[T any](t Transport, prompt, errorMessage string, conv func(string) (T, error)) T {
	logger := loggerOf(t)
	for attempt := 1; ; attempt++ {
		value, err := attemptRead(t, prompt, errorMessage, conv)
		if err == nil {
			if attempt > 1 {
				logger.Debug("value accepted after retries", zap.Int("attempts", attempt))
			}
			return value
		}
		logger.Debug("read attempt rejected",
			zap.String("prompt", prompt),
			zap.Int("attempt", attempt),
			zap.Error(err))
		writeError(t, errorMessage)
	}
}

// ReadFunc is Read followed by a call to f with the accepted value.
//
// f runs exactly once, after the successful attempt, and never for a
// rejected line. A nil f is ignored.
func ReadFunc[T any](t Transport, prompt, errorMessage string, conv func(string) (T, error), f func(T)) T {
	value := Read(t, prompt, errorMessage, conv)
	if f != nil {
		f(value)
	}
	return value
}

// attemptRead performs one read and one conversion. Panics on the read path
// are reported as errors.
func attemptRead[T any](t Transport, prompt, errorMessage string, conv func(string) (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = errors.Mark(errors.Newf("read panicked: %v", r), ErrConversion)
		}
	}()

	line, ok := t.ReadLine(prompt, errorMessage)
	if !ok {
		return value, ErrNoLine
	}
	return conv(line)
}

func writeError(t Transport, message string) {
	if w, ok := t.(errorWriter); ok {
		w.WriteError(message)
		return
	}
	t.WriteLine(message)
}

func loggerOf(t Transport) *zap.Logger {
	if p, ok := t.(loggerProvider); ok {
		if logger := p.Logger(); logger != nil {
			return logger
		}
	}
	return zap.NewNop()
}
