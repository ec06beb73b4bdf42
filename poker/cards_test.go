package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit)
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if got := NewCard(Ten, Hearts).Pretty(); got != "10♥" {
		t.Errorf("Expected '10♥', got %s", got)
	}
	if got := NewCard(Two, Clubs).String(); got != "2c" {
		t.Errorf("Expected '2c', got %s", got)
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"ten as T", "Td", NewCard(Ten, Diamonds), false},
		{"ten as 10", "10d", NewCard(Ten, Diamonds), false},
		{"upper-case suit", "KH", NewCard(King, Hearts), false},
		{"suit symbol", "Q♣", NewCard(Queen, Clubs), false},
		{"surrounding space", " 7s ", NewCard(Seven, Spades), false},
		{"unknown rank", "1s", Card{}, true},
		{"unknown suit", "Ax", Card{}, true},
		{"too short", "A", Card{}, true},
		{"too long", "10dd", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"AsKs", "As Ks"},
		{"As Ks Qh", "As Ks Qh"},
		{"10h,Jh", "Th Jh"},
		{"2c 10d3h", "2c Td 3h"},
		{"", ""},
	}
	for _, tt := range tests {
		cards, err := ParseCards(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, FormatCards(cards), tt.input)
	}

	_, err := ParseCards("AsK")
	assert.Error(t, err)
	_, err = ParseCards("As Kx")
	assert.Error(t, err)
}

func TestCardJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]Card{NewCard(Ace, Spades), NewCard(Ten, Clubs)})
	require.NoError(t, err)
	assert.JSONEq(t, `["As","Tc"]`, string(data))

	var cards []Card
	require.NoError(t, json.Unmarshal([]byte(`["10h","2d"]`), &cards))
	assert.Equal(t, []Card{NewCard(Ten, Hearts), NewCard(Two, Diamonds)}, cards)

	_, err = json.Marshal(Card{})
	assert.Error(t, err)
	assert.Error(t, json.Unmarshal([]byte(`"Zz"`), &Card{}))
}

func TestStreet(t *testing.T) {
	t.Parallel()

	for _, s := range []Street{Preflop, Flop, Turn, River} {
		parsed, err := ParseStreet(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, 0, Preflop.BoardSize())
	assert.Equal(t, 3, Flop.BoardSize())
	assert.Equal(t, 4, Turn.BoardSize())
	assert.Equal(t, 5, River.BoardSize())

	var s Street
	require.NoError(t, json.Unmarshal([]byte(`"turn"`), &s))
	assert.Equal(t, Turn, s)
	_, err := ParseStreet("showdown")
	assert.Error(t, err)
}
