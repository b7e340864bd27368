package typedio

import (
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Typed reads bound to a console. For every type there are four forms:
//
//   - ReadX() uses the console's default prompt and error message
//   - ReadXPrompt(prompt, errorMessage) uses the given texts
//   - ReadXFunc(prompt, errorMessage, f) also calls f with the accepted value
//   - ReadXFuncDefault(f) is ReadXFunc with the default texts
//
// Dates also take a custom pattern, with ReadDatePattern and
// ReadDatePatternDefault and their date-time counterparts.
//
// All of them retry until a valid value is entered; see Read.

// ReadInt reads a 32-bit integer.
func (c *Console) ReadInt() int32 {
	return c.ReadIntPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadIntPrompt reads a 32-bit integer.
func (c *Console) ReadIntPrompt(prompt, errorMessage string) int32 {
	return Read(c, prompt, errorMessage, ParseInt)
}

// ReadIntFunc reads a 32-bit integer and passes it to f.
func (c *Console) ReadIntFunc(prompt, errorMessage string, f func(int32)) int32 {
	return ReadFunc(c, prompt, errorMessage, ParseInt, f)
}

// ReadIntFuncDefault is ReadIntFunc with the default prompt and error
// message.
func (c *Console) ReadIntFuncDefault(f func(int32)) int32 {
	return c.ReadIntFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadLong reads a 64-bit integer.
func (c *Console) ReadLong() int64 {
	return c.ReadLongPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadLongPrompt reads a 64-bit integer.
func (c *Console) ReadLongPrompt(prompt, errorMessage string) int64 {
	return Read(c, prompt, errorMessage, ParseLong)
}

// ReadLongFunc reads a 64-bit integer and passes it to f.
func (c *Console) ReadLongFunc(prompt, errorMessage string, f func(int64)) int64 {
	return ReadFunc(c, prompt, errorMessage, ParseLong, f)
}

// ReadLongFuncDefault is ReadLongFunc with the default prompt and error
// message.
func (c *Console) ReadLongFuncDefault(f func(int64)) int64 {
	return c.ReadLongFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadInt8 reads an 8-bit integer.
func (c *Console) ReadInt8() int8 {
	return c.ReadInt8Prompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadInt8Prompt reads an 8-bit integer.
func (c *Console) ReadInt8Prompt(prompt, errorMessage string) int8 {
	return Read(c, prompt, errorMessage, ParseInt8)
}

// ReadInt8Func reads an 8-bit integer and passes it to f.
func (c *Console) ReadInt8Func(prompt, errorMessage string, f func(int8)) int8 {
	return ReadFunc(c, prompt, errorMessage, ParseInt8, f)
}

// ReadInt8FuncDefault is ReadInt8Func with the default prompt and error
// message.
func (c *Console) ReadInt8FuncDefault(f func(int8)) int8 {
	return c.ReadInt8Func(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadInt16 reads a 16-bit integer.
func (c *Console) ReadInt16() int16 {
	return c.ReadInt16Prompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadInt16Prompt reads a 16-bit integer.
func (c *Console) ReadInt16Prompt(prompt, errorMessage string) int16 {
	return Read(c, prompt, errorMessage, ParseInt16)
}

// ReadInt16Func reads a 16-bit integer and passes it to f.
func (c *Console) ReadInt16Func(prompt, errorMessage string, f func(int16)) int16 {
	return ReadFunc(c, prompt, errorMessage, ParseInt16, f)
}

// ReadInt16FuncDefault is ReadInt16Func with the default prompt and error
// message.
func (c *Console) ReadInt16FuncDefault(f func(int16)) int16 {
	return c.ReadInt16Func(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadBigInt reads an integer of any magnitude.
func (c *Console) ReadBigInt() *big.Int {
	return c.ReadBigIntPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadBigIntPrompt reads an integer of any magnitude.
func (c *Console) ReadBigIntPrompt(prompt, errorMessage string) *big.Int {
	return Read(c, prompt, errorMessage, ParseBigInt)
}

// ReadBigIntFunc reads an integer of any magnitude and passes it to f.
func (c *Console) ReadBigIntFunc(prompt, errorMessage string, f func(*big.Int)) *big.Int {
	return ReadFunc(c, prompt, errorMessage, ParseBigInt, f)
}

// ReadBigIntFuncDefault is ReadBigIntFunc with the default prompt and error
// message.
func (c *Console) ReadBigIntFuncDefault(f func(*big.Int)) *big.Int {
	return c.ReadBigIntFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadBigDecimal reads an exact decimal number.
func (c *Console) ReadBigDecimal() *apd.Decimal {
	return c.ReadBigDecimalPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadBigDecimalPrompt reads an exact decimal number.
func (c *Console) ReadBigDecimalPrompt(prompt, errorMessage string) *apd.Decimal {
	return Read(c, prompt, errorMessage, ParseBigDecimal)
}

// ReadBigDecimalFunc reads an exact decimal number and passes it to f.
func (c *Console) ReadBigDecimalFunc(prompt, errorMessage string, f func(*apd.Decimal)) *apd.Decimal {
	return ReadFunc(c, prompt, errorMessage, ParseBigDecimal, f)
}

// ReadBigDecimalFuncDefault is ReadBigDecimalFunc with the default prompt
// and error message.
func (c *Console) ReadBigDecimalFuncDefault(f func(*apd.Decimal)) *apd.Decimal {
	return c.ReadBigDecimalFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadDouble reads a float64.
func (c *Console) ReadDouble() float64 {
	return c.ReadDoublePrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadDoublePrompt reads a float64.
func (c *Console) ReadDoublePrompt(prompt, errorMessage string) float64 {
	return Read(c, prompt, errorMessage, ParseDouble)
}

// ReadDoubleFunc reads a float64 and passes it to f.
func (c *Console) ReadDoubleFunc(prompt, errorMessage string, f func(float64)) float64 {
	return ReadFunc(c, prompt, errorMessage, ParseDouble, f)
}

// ReadDoubleFuncDefault is ReadDoubleFunc with the default prompt and error
// message.
func (c *Console) ReadDoubleFuncDefault(f func(float64)) float64 {
	return c.ReadDoubleFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadFloat reads a float32.
func (c *Console) ReadFloat() float32 {
	return c.ReadFloatPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadFloatPrompt reads a float32.
func (c *Console) ReadFloatPrompt(prompt, errorMessage string) float32 {
	return Read(c, prompt, errorMessage, ParseFloat)
}

// ReadFloatFunc reads a float32 and passes it to f.
func (c *Console) ReadFloatFunc(prompt, errorMessage string, f func(float32)) float32 {
	return ReadFunc(c, prompt, errorMessage, ParseFloat, f)
}

// ReadFloatFuncDefault is ReadFloatFunc with the default prompt and error
// message.
func (c *Console) ReadFloatFuncDefault(f func(float32)) float32 {
	return c.ReadFloatFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadBool reads a boolean. Only "true", in any case, is true; every other
// line is false, so this read retries only when no line is available.
func (c *Console) ReadBool() bool {
	return c.ReadBoolPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadBoolPrompt reads a boolean.
func (c *Console) ReadBoolPrompt(prompt, errorMessage string) bool {
	return Read(c, prompt, errorMessage, ParseBool)
}

// ReadBoolFunc reads a boolean and passes it to f.
func (c *Console) ReadBoolFunc(prompt, errorMessage string, f func(bool)) bool {
	return ReadFunc(c, prompt, errorMessage, ParseBool, f)
}

// ReadBoolFuncDefault is ReadBoolFunc with the default prompt and error
// message.
func (c *Console) ReadBoolFuncDefault(f func(bool)) bool {
	return c.ReadBoolFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadDate reads a date in DefaultDatePattern.
func (c *Console) ReadDate() time.Time {
	return c.ReadDatePrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadDatePrompt reads a date in DefaultDatePattern.
func (c *Console) ReadDatePrompt(prompt, errorMessage string) time.Time {
	return Read(c, prompt, errorMessage, ParseDate)
}

// ReadDateFunc reads a date in DefaultDatePattern and passes it to f.
func (c *Console) ReadDateFunc(prompt, errorMessage string, f func(time.Time)) time.Time {
	return ReadFunc(c, prompt, errorMessage, ParseDate, f)
}

// ReadDateFuncDefault is ReadDateFunc with the default prompt and error
// message.
func (c *Console) ReadDateFuncDefault(f func(time.Time)) time.Time {
	return c.ReadDateFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadDatePattern reads a date in a custom pattern such as "yyyy-MM-dd".
func (c *Console) ReadDatePattern(prompt, errorMessage, pattern string) time.Time {
	return Read(c, prompt, errorMessage, DateParser(pattern))
}

// ReadDatePatternDefault reads a date in a custom pattern with the default
// prompt and error message.
func (c *Console) ReadDatePatternDefault(pattern string) time.Time {
	return c.ReadDatePattern(c.config.Prompt, c.config.ErrorMessage, pattern)
}

// ReadDateTime reads a date-time in DefaultDateTimePattern.
func (c *Console) ReadDateTime() time.Time {
	return c.ReadDateTimePrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadDateTimePrompt reads a date-time in DefaultDateTimePattern.
func (c *Console) ReadDateTimePrompt(prompt, errorMessage string) time.Time {
	return Read(c, prompt, errorMessage, ParseDateTime)
}

// ReadDateTimeFunc reads a date-time in DefaultDateTimePattern and passes it to f.
func (c *Console) ReadDateTimeFunc(prompt, errorMessage string, f func(time.Time)) time.Time {
	return ReadFunc(c, prompt, errorMessage, ParseDateTime, f)
}

// ReadDateTimeFuncDefault is ReadDateTimeFunc with the default prompt and
// error message.
func (c *Console) ReadDateTimeFuncDefault(f func(time.Time)) time.Time {
	return c.ReadDateTimeFunc(c.config.Prompt, c.config.ErrorMessage, f)
}

// ReadDateTimePattern reads a date-time in a custom pattern.
func (c *Console) ReadDateTimePattern(prompt, errorMessage, pattern string) time.Time {
	return Read(c, prompt, errorMessage, DateTimeParser(pattern))
}

// ReadDateTimePatternDefault reads a date-time in a custom pattern with the
// default prompt and error message.
func (c *Console) ReadDateTimePatternDefault(pattern string) time.Time {
	return c.ReadDateTimePattern(c.config.Prompt, c.config.ErrorMessage, pattern)
}

// ReadString reads one line with the default prompt and error message.
// It does not retry: false means no line was available.
func (c *Console) ReadString() (string, bool) {
	return c.ReadStringPrompt(c.config.Prompt, c.config.ErrorMessage)
}

// ReadStringPrompt reads one line. It does not retry.
func (c *Console) ReadStringPrompt(prompt, errorMessage string) (string, bool) {
	return c.ReadLine(prompt, errorMessage)
}

// ReadStringFunc reads one line and passes it to f when one was available.
func (c *Console) ReadStringFunc(prompt, errorMessage string, f func(string)) (string, bool) {
	line, ok := c.ReadLine(prompt, errorMessage)
	if ok && f != nil {
		f(line)
	}
	return line, ok
}

// ReadStringFuncDefault is ReadStringFunc with the default prompt and error
// message.
func (c *Console) ReadStringFuncDefault(f func(string)) (string, bool) {
	return c.ReadStringFunc(c.config.Prompt, c.config.ErrorMessage, f)
}
