package console

import (
	"bufio"
	"context"
	"fmt"
	"github.com/myrjola/cluedo/internal/errors"
	"github.com/myrjola/cluedo/internal/game"
	"github.com/myrjola/cluedo/internal/journal"
	"github.com/myrjola/cluedo/internal/logging"
	"github.com/myrjola/cluedo/internal/models"
	"io"
	"log/slog"
	"strings"
)

var errEndOfInput = errors.NewSentinel("end of input")

// Recorder stores the actions taken during a session.
type Recorder interface {
	Record(ctx context.Context, entry journal.Entry) error
	List(ctx context.Context, sessionID string) ([]journal.Entry, error)
}

// Outcome tells how a game ended.
type Outcome string

const (
	OutcomeSolved Outcome = "solved"
	OutcomeQuit   Outcome = "quit"
)

// Result of a finished game. Winner is set only when the mystery was solved.
type Result struct {
	Outcome Outcome
	Winner  *models.Participant
}

// Console runs the interactive text loop of a session. It validates input against the catalog before calling
// the session and keeps track of whose turn it is.
type Console struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
	journal Recorder
	logger  *slog.Logger
	turn    int
}

// New creates a console reading commands from in and writing prompts and results to out.
func New(session *game.Session, in io.Reader, out io.Writer, recorder Recorder, logger *slog.Logger) *Console {
	return &Console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		journal: recorder,
		logger:  logger.With("source", "Console"),
		turn:    0,
	}
}

// Deal adds the named participants to the session and distributes the clues among them.
func (c *Console) Deal(ctx context.Context, names []string) error {
	ctx = logging.WithAttrs(ctx, slog.String("session", c.session.ID()))
	if err := c.record(ctx, journal.Entry{Kind: journal.KindSessionCreated}); err != nil {
		return err
	}
	for _, name := range names {
		p := c.session.AddParticipant(name)
		if err := c.record(ctx, journal.Entry{Kind: journal.KindParticipantJoined, Participant: p.Name}); err != nil {
			return err
		}
	}
	if err := c.session.DistributeClues(); err != nil {
		return errors.Wrap(err, "deal", slog.Int("participants", len(names)))
	}
	return c.record(ctx, journal.Entry{Kind: journal.KindCluesDistributed})
}

// Run plays turns until a participant solves the mystery, someone quits or the input ends.
func (c *Console) Run(ctx context.Context) (Result, error) {
	participants := c.session.Participants()
	if len(participants) == 0 {
		return Result{}, errors.Wrap(game.ErrNoParticipants, "run console")
	}
	ctx = logging.WithAttrs(ctx, slog.String("session", c.session.ID()))
	c.logger.LogAttrs(ctx, slog.LevelInfo, "game started", slog.Int("participants", len(participants)))

	for {
		p := participants[c.turn%len(participants)]
		turnCtx := logging.WithAttrs(ctx, slog.String("participant", p.Name))
		result, done, err := c.playTurn(turnCtx, p)
		if errors.Is(err, errEndOfInput) {
			c.logger.LogAttrs(turnCtx, slog.LevelInfo, "input ended")
			c.printf("\nGame ended.\n")
			if err = c.record(turnCtx, journal.Entry{Kind: journal.KindQuit, Participant: p.Name}); err != nil {
				return Result{}, err
			}
			return Result{Outcome: OutcomeQuit, Winner: nil}, nil
		}
		if err != nil {
			return Result{}, err
		}
		if done {
			return result, nil
		}
		c.turn++
	}
}

// playTurn prompts p for actions until one of them ends the turn.
func (c *Console) playTurn(ctx context.Context, p *models.Participant) (Result, bool, error) {
	c.printf("\n%s's turn.\n", p.Name)
	c.printf("Current location: %s\n", locationText(p))
	c.printf("Your hand: %s\n", handText(p))

	for {
		action, err := c.prompt("Choose an action (move/suggest/accuse/hand/history/help/quit): ")
		if err != nil {
			return Result{}, false, err
		}
		switch strings.ToLower(action) {
		case "move":
			return Result{}, false, c.move(ctx, p)
		case "suggest":
			if _, ok := p.Location(); !ok {
				c.printf("You must move to a location before making a suggestion.\n")
				continue
			}
			return Result{}, false, c.suggest(ctx, p)
		case "accuse":
			solved, err := c.accuse(ctx, p)
			if err != nil || !solved {
				return Result{}, false, err
			}
			return Result{Outcome: OutcomeSolved, Winner: p}, true, nil
		case "hand":
			c.printf("Your hand: %s\n", handText(p))
		case "history":
			if err = c.history(ctx); err != nil {
				return Result{}, false, err
			}
		case "help":
			c.help()
		case "quit":
			c.logger.LogAttrs(ctx, slog.LevelInfo, "game ended by player")
			c.printf("Game ended.\n")
			if err = c.record(ctx, journal.Entry{Kind: journal.KindQuit, Participant: p.Name}); err != nil {
				return Result{}, false, err
			}
			return Result{Outcome: OutcomeQuit, Winner: nil}, true, nil
		default:
			c.logger.LogAttrs(ctx, slog.LevelWarn, "invalid action selected", slog.String("action", action))
			c.printf("Invalid action.\n")
		}
	}
}

func (c *Console) move(ctx context.Context, p *models.Participant) error {
	location, err := c.choose(ctx, models.CategoryLocation)
	if err != nil {
		return err
	}
	c.session.MoveParticipant(p, location)
	c.printf("%s moved to %s.\n", p.Name, location)
	return c.record(ctx, journal.Entry{Kind: journal.KindMoved, Participant: p.Name, Location: location})
}

func (c *Console) suggest(ctx context.Context, p *models.Participant) error {
	location, _ := p.Location()
	tool, err := c.choose(ctx, models.CategoryTool)
	if err != nil {
		return err
	}
	character, err := c.choose(ctx, models.CategoryCharacter)
	if err != nil {
		return err
	}

	match := c.session.EvaluateSuggestion(location, tool, character)
	if match {
		c.printf("Suggestion matches the solution!\n")
	} else {
		c.printf("Suggestion does not match the solution.\n")
	}
	return c.record(ctx, journal.Entry{
		Kind:        journal.KindSuggested,
		Participant: p.Name,
		Location:    location,
		Tool:        tool,
		Character:   character,
		Outcome:     outcome(match),
	})
}

func (c *Console) accuse(ctx context.Context, p *models.Participant) (bool, error) {
	var proposal models.Proposal
	for _, category := range models.Categories {
		value, err := c.choose(ctx, category)
		if err != nil {
			return false, err
		}
		switch category {
		case models.CategoryLocation:
			proposal.Location = value
		case models.CategoryTool:
			proposal.Tool = value
		case models.CategoryCharacter:
			proposal.Character = value
		}
	}

	solved := c.session.EvaluateAccusation(proposal.Location, proposal.Tool, proposal.Character)
	if solved {
		c.logger.LogAttrs(ctx, slog.LevelInfo, "mystery solved")
		c.printf("%s has solved the mystery!\n", p.Name)
		c.printf("It was %s.\n", c.session.Solution())
	} else {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "accusation is incorrect")
		c.printf("%s's accusation is incorrect.\n", p.Name)
	}
	err := c.record(ctx, journal.Entry{
		Kind:        journal.KindAccused,
		Participant: p.Name,
		Location:    proposal.Location,
		Tool:        proposal.Tool,
		Character:   proposal.Character,
		Outcome:     outcome(solved),
	})
	return solved, err
}

func (c *Console) history(ctx context.Context) error {
	entries, err := c.journal.List(ctx, c.session.ID())
	if err != nil {
		return errors.Wrap(err, "list history")
	}
	if len(entries) == 0 {
		c.printf("Nothing has happened yet.\n")
		return nil
	}
	for i, entry := range entries {
		c.printf("%d. %s\n", i+1, describe(entry))
	}
	return nil
}

func (c *Console) help() {
	c.printf(`move     move to another location (ends your turn)
suggest  suggest a tool and a character in your current location (ends your turn)
accuse   name the location, tool and character; a correct accusation wins the game (ends your turn)
hand     show your clues
history  show what has happened so far
quit     end the game
`)
}

// choose prompts for a value of category until the input matches the catalog.
func (c *Console) choose(ctx context.Context, category models.Category) (string, error) {
	catalog := c.session.Catalog()
	values := catalog.Values(category)
	for {
		input, err := c.prompt(fmt.Sprintf("Choose a %s [%s]: ", category, strings.Join(values, ", ")))
		if err != nil {
			return "", err
		}
		if value, ok := catalog.Lookup(category, input); ok {
			return value, nil
		}
		c.logger.LogAttrs(ctx, slog.LevelWarn, "invalid selection",
			slog.String("category", string(category)),
			slog.String("input", input),
		)
		c.printf("Invalid %s.\n", category)
	}
}

// prompt writes the question and reads one trimmed line of input.
func (c *Console) prompt(question string) (string, error) {
	c.printf("%s", question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) record(ctx context.Context, entry journal.Entry) error {
	entry.SessionID = c.session.ID()
	if err := c.journal.Record(ctx, entry); err != nil {
		return errors.Wrap(err, "record action")
	}
	return nil
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func outcome(match bool) string {
	if match {
		return journal.OutcomeMatch
	}
	return journal.OutcomeNoMatch
}

func locationText(p *models.Participant) string {
	if location, ok := p.Location(); ok {
		return location
	}
	return "none"
}

func handText(p *models.Participant) string {
	hand := p.Hand()
	if len(hand) == 0 {
		return "no clues"
	}
	values := make([]string, len(hand))
	for i, clue := range hand {
		values[i] = clue.Value
	}
	return strings.Join(values, ", ")
}

func describe(entry journal.Entry) string {
	switch entry.Kind {
	case journal.KindSessionCreated:
		return "The game was set up."
	case journal.KindParticipantJoined:
		return fmt.Sprintf("%s joined.", entry.Participant)
	case journal.KindCluesDistributed:
		return "The clues were dealt."
	case journal.KindMoved:
		return fmt.Sprintf("%s moved to %s.", entry.Participant, entry.Location)
	case journal.KindSuggested:
		return fmt.Sprintf("%s suggested %s with the %s in the %s: %s.",
			entry.Participant, entry.Character, entry.Tool, entry.Location, entry.Outcome)
	case journal.KindAccused:
		return fmt.Sprintf("%s accused %s with the %s in the %s: %s.",
			entry.Participant, entry.Character, entry.Tool, entry.Location, entry.Outcome)
	case journal.KindQuit:
		return fmt.Sprintf("%s ended the game.", entry.Participant)
	}
	return string(entry.Kind)
}
