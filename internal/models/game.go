package models

import (
	"fmt"
	"slices"
)

// Clue is a single revealed value of a category. It does not tell whether the value is part of the solution.
type Clue struct {
	Category Category
	Value    string
}

func (c Clue) String() string {
	return c.Value
}

// Solution is the hidden combination all suggestions and accusations are checked against.
type Solution struct {
	Location  string
	Tool      string
	Character string
}

// Matches reports whether the proposal equals the solution in every category.
func (s Solution) Matches(p Proposal) bool {
	return s.Location == p.Location && s.Tool == p.Tool && s.Character == p.Character
}

// Value returns the component of the solution for category.
func (s Solution) Value(category Category) string {
	switch category {
	case CategoryLocation:
		return s.Location
	case CategoryTool:
		return s.Tool
	case CategoryCharacter:
		return s.Character
	}
	return ""
}

func (s Solution) String() string {
	return fmt.Sprintf("%s with the %s in the %s", s.Character, s.Tool, s.Location)
}

// Proposal is a combination put forward by a suggestion or an accusation.
type Proposal struct {
	Location  string
	Tool      string
	Character string
}

// Participant takes turns, moves between locations and holds a hand of clues.
type Participant struct {
	ID       int
	Name     string
	location string
	hasMoved bool
	hand     []Clue
}

// NewParticipant creates a participant with an empty hand and no location.
func NewParticipant(id int, name string) *Participant {
	return &Participant{
		ID:   id,
		Name: name,
		hand: []Clue{},
	}
}

// Location returns the current location. ok is false until the participant has moved.
func (p *Participant) Location() (location string, ok bool) {
	return p.location, p.hasMoved
}

// MoveTo overwrites the current location.
func (p *Participant) MoveTo(location string) {
	p.location = location
	p.hasMoved = true
}

// Hand returns the received clues in the order they were dealt.
func (p *Participant) Hand() []Clue {
	return slices.Clone(p.hand)
}

// Receive appends clue to the hand.
func (p *Participant) Receive(clue Clue) {
	p.hand = append(p.hand, clue)
}
