package models_test

import (
	"github.com/myrjola/cluedo/internal/models"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog models.Catalog
		wantErr bool
	}{
		{
			name:    "default catalog",
			catalog: models.DefaultCatalog(),
			wantErr: false,
		},
		{
			name: "minimal catalog",
			catalog: models.Catalog{
				Locations:  []string{"Kitchen"},
				Tools:      []string{"Knife"},
				Characters: []string{"A"},
			},
			wantErr: false,
		},
		{
			name: "empty category",
			catalog: models.Catalog{
				Locations:  []string{"Kitchen"},
				Tools:      nil,
				Characters: []string{"A"},
			},
			wantErr: true,
		},
		{
			name: "blank value",
			catalog: models.Catalog{
				Locations:  []string{"Kitchen", "  "},
				Tools:      []string{"Knife"},
				Characters: []string{"A"},
			},
			wantErr: true,
		},
		{
			name: "duplicate within category",
			catalog: models.Catalog{
				Locations:  []string{"Kitchen", "kitchen"},
				Tools:      []string{"Knife"},
				Characters: []string{"A"},
			},
			wantErr: true,
		},
		{
			name: "duplicate across categories",
			catalog: models.Catalog{
				Locations:  []string{"Kitchen"},
				Tools:      []string{"Knife"},
				Characters: []string{"Kitchen"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := models.DefaultCatalog()

	got, ok := catalog.Lookup(models.CategoryLocation, "  dining room ")
	require.True(t, ok)
	require.Equal(t, "Dining Room", got)

	_, ok = catalog.Lookup(models.CategoryTool, "Dining Room")
	require.False(t, ok, "value of another category must not match")

	_, ok = catalog.Lookup(models.CategoryCharacter, "Sherlock")
	require.False(t, ok)
}

func TestCatalog_Clues(t *testing.T) {
	catalog := models.DefaultCatalog()
	clues := catalog.Clues()
	require.Len(t, clues, 21)
	for _, clue := range clues {
		require.True(t, catalog.Contains(clue.Category, clue.Value), "clue %v not in its category", clue)
	}
}

func TestParticipant(t *testing.T) {
	p := models.NewParticipant(1, "Player 1")

	_, ok := p.Location()
	require.False(t, ok, "location must be unset initially")
	require.Empty(t, p.Hand())

	p.MoveTo("Hall")
	p.MoveTo("Study")
	location, ok := p.Location()
	require.True(t, ok)
	require.Equal(t, "Study", location)

	p.Receive(models.Clue{Category: models.CategoryTool, Value: "Rope"})
	hand := p.Hand()
	hand[0].Value = "mutated"
	require.Equal(t, "Rope", p.Hand()[0].Value, "Hand must return a copy")
}

func TestSolution_Matches(t *testing.T) {
	solution := models.Solution{Location: "Kitchen", Tool: "Knife", Character: "A"}
	require.True(t, solution.Matches(models.Proposal{Location: "Kitchen", Tool: "Knife", Character: "A"}))
	require.False(t, solution.Matches(models.Proposal{Location: "Hall", Tool: "Knife", Character: "A"}))
	require.False(t, solution.Matches(models.Proposal{Location: "Kitchen", Tool: "Rope", Character: "A"}))
	require.False(t, solution.Matches(models.Proposal{Location: "Kitchen", Tool: "Knife", Character: "B"}))
	require.Equal(t, "Knife", solution.Value(models.CategoryTool))
}
