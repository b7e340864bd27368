// Package main demonstrates basic usage of the typedio library.
package main

import (
	"fmt"

	"github.com/nao1215/typedio"
)

func main() {
	// The default console reads stdin and writes stdout
	c := typedio.Default()

	fmt.Println("Basic typedio Example")
	fmt.Println("Invalid answers are asked again until they parse")
	fmt.Println()

	for {
		r, ok := c.Choice("[i]nteger [d]ouble [b]ool [t]ext [q]uit", "Please pick a letter.")
		if !ok || r == 'q' {
			fmt.Println("Goodbye!")
			return
		}

		switch r {
		case 'i':
			n := c.ReadIntPrompt("Integer: ", "That is not an integer!")
			fmt.Printf("You typed %d, doubled %d\n", n, int64(n)*2)
		case 'd':
			f := c.ReadDoublePrompt("Double: ", "That is not a number!")
			fmt.Printf("You typed %g, halved %g\n", f, f/2)
		case 'b':
			c.ReadBoolFunc("Bool: ", "", func(b bool) {
				fmt.Printf("You typed %t\n", b)
			})
		case 't':
			if s, ok := c.ReadStringFunc("Text: ", "", nil); ok {
				fmt.Printf("You typed %q\n", s)
			}
		default:
			fmt.Printf("Unknown choice %q\n", r)
		}
	}
}
