package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nao1215/typedio"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings holds the resolved CLI configuration.
type settings struct {
	Prompt             string
	ErrorMessage       string
	ChoiceErrorMessage string
	Theme              string
	TTY                bool
	Verbose            bool
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"prompt":       "prompt",
	"error":        "error",
	"choice-error": "choice_error",
	"theme":        "theme",
	"tty":          "tty",
	"verbose":      "verbose",
	"config":       "config",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		// Lookup cannot fail for flags registered by RootCmd.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// loadSettings resolves flags, TYPEDIO_* environment variables, the config
// file and the library defaults, in that order of precedence.
func loadSettings(v *viper.Viper) (settings, error) {
	v.SetDefault("prompt", typedio.DefaultPrompt)
	v.SetDefault("error", typedio.DefaultErrorMessage)
	v.SetDefault("choice_error", typedio.DefaultChoiceErrorMessage)

	v.SetEnvPrefix("TYPEDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("typedio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "typedio"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.GetString("config") != "" {
			return settings{}, errors.Wrap(err, "failed to read config")
		}
	}

	cfg := settings{
		Prompt:             v.GetString("prompt"),
		ErrorMessage:       v.GetString("error"),
		ChoiceErrorMessage: v.GetString("choice_error"),
		Theme:              strings.ToLower(v.GetString("theme")),
		TTY:                v.GetBool("tty"),
		Verbose:            v.GetBool("verbose"),
	}
	if cfg.Theme != "" {
		if _, ok := typedio.Themes[cfg.Theme]; !ok {
			return settings{}, errors.Newf("unknown theme %q", cfg.Theme)
		}
	}
	return cfg, nil
}
