package main

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/cluedo/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

const releaseVersion = "0.1.0"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cluedo",
		Short:         "A turn-based deduction game for the terminal",
		Long:          `Find out who did it, with what and where. Players take turns moving, suggesting and accusing.`,
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddGroup(&cobra.Group{
		ID:    "game",
		Title: "Game",
	})
	cmd.AddCommand(newPlayCmd(&config{}))
	cmd.AddCommand(newBoardCmd())

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("cluedo v{{.Version}}\n")

	return cmd
}
