package main

import (
	"github.com/myrjola/cluedo/internal/console"
	"github.com/myrjola/cluedo/internal/errors"
	"github.com/myrjola/cluedo/internal/game"
	"github.com/myrjola/cluedo/internal/journal"
	"github.com/myrjola/cluedo/internal/logging"
	"github.com/myrjola/cluedo/internal/random"
	"github.com/myrjola/cluedo/internal/sqlite"
	"github.com/spf13/cobra"
	"log/slog"
)

func newPlayCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "play",
		GroupID: "game",
		Short:   "Play a game",
		Long: `Starts an interactive game. The players take turns in the order given with --player.
A correct accusation wins the game.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return play(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfg.board, "board", "", "config file with a board section listing locations, tools and characters (env: CLUEDO_BOARD)")
	fs.StringVar(&cfg.journal, "journal", ":memory:", "SQLite database the actions of the game are recorded to (env: CLUEDO_JOURNAL)")
	fs.StringSliceVarP(&cfg.players, "player", "p", []string{"Player 1", "Player 2"}, "player name, repeat for every player (env: CLUEDO_PLAYER)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for a reproducible game, 0 picks a random one (env: CLUEDO_SEED)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug output to stderr (env: CLUEDO_VERBOSE)")
	fs.BoolVar(&cfg.withholdSolution, "withhold-solution", false, "never deal the solution's cards to players (env: CLUEDO_WITHHOLD_SOLUTION)")
	bindEnv(cmd)

	return cmd
}

func play(cmd *cobra.Command, cfg *config) error {
	var (
		ctx     = cmd.Context()
		session *game.Session
		dbs     *sqlite.Database
		result  console.Result
		err     error
	)

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		AddSource: cfg.verbose,
		Level:     level,
	})))

	catalog, err := loadCatalog(cfg.board)
	if err != nil {
		return err
	}

	src := random.NewSecure()
	if cfg.seed != 0 {
		src = random.NewSeeded(cfg.seed)
	}
	var opts []game.Option
	if cfg.withholdSolution {
		opts = append(opts, game.WithSolutionWithheld())
	}
	if session, err = game.NewSession(catalog, src, logger, opts...); err != nil {
		return errors.Wrap(err, "create session")
	}

	if dbs, err = sqlite.NewDatabase(ctx, cfg.journal, logger); err != nil {
		return errors.Wrap(err, "open journal")
	}
	defer func() {
		if closeErr := dbs.Close(ctx); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close journal", errors.SlogError(closeErr))
		}
	}()

	c := console.New(session, cmd.InOrStdin(), cmd.OutOrStdout(), journal.NewRepository(dbs, logger), logger)
	if err = c.Deal(ctx, cfg.players); err != nil {
		return errors.Wrap(err, "deal")
	}
	if result, err = c.Run(ctx); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "game aborted", errors.SlogError(err))
		return err
	}

	attrs := []slog.Attr{slog.String("session", session.ID()), slog.String("outcome", string(result.Outcome))}
	if result.Winner != nil {
		attrs = append(attrs, slog.String("winner", result.Winner.Name))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "game over", attrs...)
	return nil
}
