// Package main records expenses with exact decimal amounts, reading from the
// controlling terminal so the summary can be redirected to a file.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/nao1215/typedio"
	"go.uber.org/zap"
)

type expense struct {
	when   time.Time
	amount *apd.Decimal
	note   string
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	c, err := typedio.NewConsole(
		typedio.WithTTY(),
		typedio.WithColorScheme(typedio.ThemeDark),
		typedio.WithErrorMessage("Invalid value, try again."),
		typedio.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("failed to open terminal: %v", err)
	}
	defer c.Close()

	var (
		expenses []expense
		total    apd.Decimal
	)
	for {
		r, ok := c.ChoiceDefault("[a]dd expense / [d]one")
		if !ok || r != 'a' {
			break
		}

		e := expense{
			when:   c.ReadDatePattern("Date (yyyy-MM-dd): ", "Use a date like 2024-03-31.", "yyyy-MM-dd"),
			amount: c.ReadBigDecimalPrompt("Amount: ", "Use a number like 12.50."),
		}
		e.note, _ = c.ReadStringFunc("Note: ", "", nil)

		if _, err := apd.BaseContext.WithPrecision(34).Add(&total, &total, e.amount); err != nil {
			c.WriteError(err.Error())
			continue
		}
		expenses = append(expenses, e)
	}

	for _, e := range expenses {
		fmt.Printf("%s\t%s\t%s\n", e.when.Format(time.DateOnly), e.amount.Text('f'), e.note)
	}
	fmt.Printf("total\t%s\n", total.Text('f'))
}
