package typedio

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Choice writes menu as a line, reads one line using menu as the prompt and
// returns its first character.
//
// A blank line or a missing line is "no choice" and returns false without
// retrying. If reading panics, errorMessage is written and the whole choice
// is asked again, this time with DefaultChoiceErrorMessage instead of
// errorMessage.
func Choice(t Transport, menu, errorMessage string) (rune, bool) {
	return choice(t, menu, errorMessage, DefaultChoiceErrorMessage)
}

// Choice asks for a menu choice on the console. See the package-level Choice.
//
// Example:
//
//	r, ok := c.Choice("[y]es / [n]o", "Please answer y or n.")
//	if ok && r == 'y' {
//		// ...
//	}
func (c *Console) Choice(menu, errorMessage string) (rune, bool) {
	return choice(c, menu, errorMessage, c.config.ChoiceErrorMessage)
}

// ChoiceDefault asks for a menu choice with the console's default choice
// error message.
func (c *Console) ChoiceDefault(menu string) (rune, bool) {
	return c.Choice(menu, c.config.ChoiceErrorMessage)
}

func choice(t Transport, menu, errorMessage, fallback string) (rune, bool) {
	logger := loggerOf(t)
	for {
		t.WriteLine(menu)
		r, ok, err := readChoice(t, menu, errorMessage)
		if err == nil {
			return r, ok
		}
		logger.Warn("menu choice failed", zap.String("menu", menu), zap.Error(err))
		writeError(t, errorMessage)
		// The retry deliberately drops the caller's message.
		errorMessage = fallback
	}
}

func readChoice(t Transport, menu, errorMessage string) (r rune, ok bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, ok = 0, false
			err = errors.Newf("read panicked: %v", p)
		}
	}()

	line, present := t.ReadLine(menu, errorMessage)
	if !present || strings.TrimSpace(line) == "" {
		return 0, false, nil
	}
	first, _ := utf8.DecodeRuneInString(line)
	return first, true, nil
}
