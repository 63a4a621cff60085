package main

import (
	"fmt"
	"github.com/myrjola/cluedo/internal/errors"
	"github.com/myrjola/cluedo/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"log/slog"
	"strings"
)

var ErrNoPlayers = errors.NewSentinel("at least one player is required")

type config struct {
	board            string
	journal          string
	players          []string
	seed             uint64
	verbose          bool
	withholdSolution bool
}

func (c *config) validate() error {
	if len(c.players) == 0 {
		return ErrNoPlayers
	}
	for i, name := range c.players {
		if strings.TrimSpace(name) == "" {
			return errors.Wrap(ErrNoPlayers, "blank player name", slog.Int("position", i+1))
		}
	}
	return nil
}

// bindEnv lets every flag of cmd be set with a CLUEDO_ prefixed environment variable. Flags given on the command
// line take precedence, so the environment is applied only after parsing and only to unchanged flags.
func bindEnv(cmd *cobra.Command) {
	v := viper.New()
	v.SetEnvPrefix("CLUEDO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs := cmd.Flags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		var errorList []error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = v.BindPFlag(f.Name, f)
			_ = v.BindEnv(f.Name)
			if f.Changed || !v.IsSet(f.Name) {
				return
			}
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				errorList = append(errorList, errors.Wrap(err, "apply environment", slog.String("flag", f.Name)))
			}
		})
		return errors.Join(errorList...)
	}
}

// loadCatalog reads the board section of the config file at path. An empty path selects the classic board.
func loadCatalog(path string) (models.Catalog, error) {
	if path == "" {
		return models.DefaultCatalog(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return models.Catalog{}, errors.Wrap(err, "read board config", slog.String("path", path))
	}

	var catalog models.Catalog
	if err := v.UnmarshalKey("board", &catalog); err != nil {
		return models.Catalog{}, errors.Wrap(err, "decode board", slog.String("path", path))
	}
	if err := catalog.Validate(); err != nil {
		return models.Catalog{}, errors.Wrap(err, "validate board", slog.String("path", path))
	}
	return catalog, nil
}
