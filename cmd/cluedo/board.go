package main

import (
	"fmt"
	"github.com/myrjola/cluedo/internal/models"
	"github.com/spf13/cobra"
	"strings"
)

func newBoardCmd() *cobra.Command {
	var board string
	cmd := &cobra.Command{
		Use:     "board",
		GroupID: "game",
		Short:   "Show the board",
		Long:    `Lists the locations, tools and characters of the board a game would be played on.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(board)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, category := range models.Categories {
				_, _ = fmt.Fprintf(out, "%s: %s\n", category, strings.Join(catalog.Values(category), ", "))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&board, "board", "", "config file with a board section listing locations, tools and characters (env: CLUEDO_BOARD)")
	bindEnv(cmd)
	return cmd
}
