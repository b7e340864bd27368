// Package typedio reads typed values from a text console.
//
// Each read prompts the user, reads one line, converts it into the requested
// type and, when the conversion fails, prints an error message and asks
// again. The caller never sees a conversion error: a read returns only once
// a valid value has been entered.
//
// Key Features:
//
//   - Typed reads for int32, int64, int8, int16, float32, float64, bool,
//     *big.Int, *apd.Decimal, dates and date-times
//   - One generic retry loop (Read) usable with any conversion function
//   - Success callbacks (ReadFunc and the Read*Func methods)
//   - Single-character menu choices
//   - Day/month/year date patterns ("dd/MM/yyyy", "dd/MM/yyyy HH:mm:ss")
//   - Optional reading from the controlling terminal when stdin is redirected
//   - Optional colored prompts and error messages
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/nao1215/typedio"
//	)
//
//	func main() {
//		c := typedio.Default()
//
//		age := c.ReadIntPrompt("Age: ", "Not a number, try again.")
//		fmt.Printf("You are %d years old\n", age)
//	}
//
// Custom Conversions:
//
// Read accepts any function that turns a line into a value:
//
//	port := typedio.Read(c, "Port: ", "Invalid port!", func(s string) (uint16, error) {
//		n, err := strconv.ParseUint(s, 10, 16)
//		return uint16(n), err
//	})
//
// A conversion that panics is treated like one that returns an error.
//
// Menu Choices:
//
//	r, ok := c.ChoiceDefault("[a]dd  [d]elete  [q]uit")
//	if !ok {
//		// blank line or end of input
//	}
//
// Unlike the typed reads, Choice does not retry on a blank line or on end of
// input; it reports "no choice" and leaves the decision to the caller.
//
// Blocking Behavior:
//
// Typed reads block until a valid value arrives. When input is exhausted
// they keep printing the error message and retrying; there is no timeout and
// no cancellation. This matches a single linear conversation with one user.
//
// Thread Safety:
//
// A Console is one conversation with one user and is not safe for
// concurrent use.
package typedio
