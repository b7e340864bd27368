package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// ErrNoChoice is returned when the answer to a menu was blank or missing.
var ErrNoChoice = errors.New("no choice made")

func choiceCmd(cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "choice <menu>",
		Short: "Show a menu and print the first character of the answer",
		Long: `Show a menu and print the first character of the answer.

A blank answer or the end of input is not a choice: nothing is printed and
the command exits with status 1, so scripts can fall back to a default.`,
		Args: cobra.ExactArgs(1),
		Example: `  answer=$(typedio choice "[y]es / [n]o") || answer=n
  typedio choice "[a]dd [d]elete [q]uit" --choice-error "Try again"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			r, ok := c.ChoiceDefault(args[0])
			if !ok {
				cmd.SilenceErrors = true
				return ErrNoChoice
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(r))
			return nil
		},
	}
	return cmd
}
