package game

import (
	"github.com/myrjola/cluedo/internal/errors"
	"github.com/myrjola/cluedo/internal/models"
	"github.com/myrjola/cluedo/internal/random"
	"log/slog"
	"slices"
)

var (
	ErrNoParticipants     = errors.NewSentinel("no participants to distribute clues to")
	ErrAlreadyDistributed = errors.NewSentinel("clues already distributed")
	ErrInvalidSolution    = errors.NewSentinel("solution not in catalog")
)

const sessionIDLength = 8

// Session holds the secret solution, the shuffled clues and the participants of one game.
//
// The solution and clues are fixed when the session is created. Participants and their locations change as the
// game goes on. A Session is not safe for concurrent use; turn order is the caller's concern.
type Session struct {
	id           string
	catalog      models.Catalog
	solution     models.Solution
	clues        []models.Clue
	participants []*models.Participant
	distributed  bool
	logger       *slog.Logger
}

type options struct {
	solution         *models.Solution
	withholdSolution bool
}

// Option configures NewSession.
type Option func(*options)

// WithSolution forces the solution instead of drawing it from the random source.
func WithSolution(solution models.Solution) Option {
	return func(o *options) {
		o.solution = &solution
	}
}

// WithSolutionWithheld leaves the solution's values out of the clues so that no participant is dealt them.
func WithSolutionWithheld() Option {
	return func(o *options) {
		o.withholdSolution = true
	}
}

// NewSession draws the solution and shuffles the clues using src.
//
// The solution is drawn uniformly and independently per category in the order location, tool, character. The
// clues are every catalog value, shuffled.
func NewSession(catalog models.Catalog, src random.Source, logger *slog.Logger, opts ...Option) (*Session, error) {
	var (
		o   options
		id  string
		err error
	)
	for _, opt := range opts {
		opt(&o)
	}

	if err = catalog.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate catalog")
	}

	var solution models.Solution
	if o.solution != nil {
		solution = *o.solution
		for _, category := range models.Categories {
			if value := solution.Value(category); !catalog.Contains(category, value) {
				return nil, errors.Wrap(ErrInvalidSolution, "forced solution",
					slog.String("category", string(category)),
					slog.String("value", value),
				)
			}
		}
	} else {
		solution = models.Solution{
			Location:  random.Choice(src, catalog.Locations),
			Tool:      random.Choice(src, catalog.Tools),
			Character: random.Choice(src, catalog.Characters),
		}
	}

	clues := catalog.Clues()
	if o.withholdSolution {
		clues = slices.DeleteFunc(clues, func(c models.Clue) bool {
			return solution.Value(c.Category) == c.Value
		})
	}
	random.Shuffle(src, len(clues), func(i, j int) {
		clues[i], clues[j] = clues[j], clues[i]
	})

	if id, err = random.Letters(sessionIDLength); err != nil {
		return nil, errors.Wrap(err, "generate session ID")
	}

	s := &Session{
		id:           id,
		catalog:      catalog,
		solution:     solution,
		clues:        clues,
		participants: []*models.Participant{},
		distributed:  false,
		logger:       logger.With("source", "Session", "session", id),
	}
	s.logger.Info("session created", slog.Int("clues", len(clues)))
	s.logger.Debug("solution drawn",
		slog.String("location", solution.Location),
		slog.String("tool", solution.Tool),
		slog.String("character", solution.Character),
	)
	return s, nil
}

// ID identifies the session in logs and the journal.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the valid values per category.
func (s *Session) Catalog() models.Catalog {
	return s.catalog
}

// Solution returns the hidden solution. Callers must not show it to participants before the game ends.
func (s *Session) Solution() models.Solution {
	return s.solution
}

// Clues returns the shuffled clues in dealing order.
func (s *Session) Clues() []models.Clue {
	return slices.Clone(s.clues)
}

// Participants returns the participants in the order they were added.
func (s *Session) Participants() []*models.Participant {
	return slices.Clone(s.participants)
}

// Distributed reports whether the clues have been dealt.
func (s *Session) Distributed() bool {
	return s.distributed
}

// AddParticipant adds a participant with an empty hand and no location. Names need not be unique.
//
// Participants added after the clues have been dealt get no clues.
func (s *Session) AddParticipant(name string) *models.Participant {
	p := models.NewParticipant(len(s.participants)+1, name)
	s.participants = append(s.participants, p)
	s.logger.Info("participant added", slog.Int("participant", p.ID), slog.String("name", name))
	return p
}

// DistributeClues deals the clues round-robin: clue i goes to participant i mod the participant count.
//
// Clues can be dealt only once. ErrAlreadyDistributed is returned on repeated calls and ErrNoParticipants when
// there is nobody to deal to.
func (s *Session) DistributeClues() error {
	if s.distributed {
		return errors.Wrap(ErrAlreadyDistributed, "distribute clues")
	}
	if len(s.participants) == 0 {
		return errors.Wrap(ErrNoParticipants, "distribute clues")
	}
	for i, clue := range s.clues {
		p := s.participants[i%len(s.participants)]
		p.Receive(clue)
		s.logger.Debug("clue dealt", slog.String("name", p.Name), slog.String("clue", clue.Value))
	}
	s.distributed = true
	s.logger.Info("clues distributed", slog.Int("participants", len(s.participants)))
	return nil
}

// MoveParticipant overwrites the participant's location. The location is not validated against the catalog.
func (s *Session) MoveParticipant(p *models.Participant, location string) {
	p.MoveTo(location)
	s.logger.Debug("participant moved", slog.String("name", p.Name), slog.String("location", location))
}

// EvaluateSuggestion reports whether the suggested combination is the solution.
func (s *Session) EvaluateSuggestion(location, tool, character string) bool {
	match := s.solution.Matches(models.Proposal{Location: location, Tool: tool, Character: character})
	s.logger.Info("suggestion evaluated", proposalAttrs(location, tool, character, match)...)
	return match
}

// EvaluateAccusation reports whether the accused combination is the solution. It differs from
// EvaluateSuggestion only in what the caller does with the result.
func (s *Session) EvaluateAccusation(location, tool, character string) bool {
	match := s.solution.Matches(models.Proposal{Location: location, Tool: tool, Character: character})
	s.logger.Info("accusation evaluated", proposalAttrs(location, tool, character, match)...)
	return match
}

func proposalAttrs(location, tool, character string, match bool) []any {
	return []any{
		slog.String("location", location),
		slog.String("tool", tool),
		slog.String("character", character),
		slog.Bool("match", match),
	}
}
