// Package commands implements the typedio command line interface.
package commands

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the CLI version reported by --version.
const Version = "0.1.0"

// RootCmd creates and returns the root command for the typedio CLI
func RootCmd() *cobra.Command {
	v := viper.New()
	cfg := &settings{}

	cmd := &cobra.Command{
		Use:   "typedio",
		Short: "Ask for typed values in shell scripts",
		Long: `typedio prompts for a value of a given type and keeps asking until the
answer is valid, then prints the value on stdout.

Prompts and error messages go to stderr (or to the terminal with --tty),
so the result can be captured:

  age=$(typedio read int --prompt "Age: ")
  when=$(typedio read date --pattern yyyy-MM-dd)
  answer=$(typedio choice "[y]es / [n]o")

Settings are read from typedio.yaml (current directory or
~/.config/typedio) and TYPEDIO_* environment variables; flags win.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSettings(v)
			if err != nil {
				return err
			}
			*cfg = loaded
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default: typedio.yaml)")
	flags.String("prompt", "", "Prompt text")
	flags.String("error", "", "Error message printed after invalid input")
	flags.String("choice-error", "", "Error message for menu choices")
	flags.String("theme", "", "Color theme: default, dark, light, accessible")
	flags.Bool("tty", false, "Talk to the controlling terminal instead of stdin/stderr")
	flags.BoolP("verbose", "v", false, "Log every attempt to stderr")
	bindFlags(v, flags)

	cmd.AddCommand(readCmd(cfg))
	cmd.AddCommand(choiceCmd(cfg))

	return cmd
}

// newLogger returns a development logger writing to w when verbose is set,
// and a no-op logger otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Named("typedio")
}
