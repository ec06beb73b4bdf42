// Package profile persists the trainee's rating and counters as a JSON file.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokercoach/internal/fileutil"
	"github.com/lox/pokercoach/internal/rating"
)

// Hand preferences accepted in PreferredHands
var handPreferences = []string{"ANY", "PREFLOP", "OUTS", "FINAL"}

// Profile is the persisted trainee state
type Profile struct {
	Rating         int       `json:"elo"`
	Tier           string    `json:"rank"`
	TotalHands     int       `json:"totalHands"`
	TotalDecisions int       `json:"totalDecisions"`
	CorrectOuts    int       `json:"correctOutsCount"`
	LastPlayed     time.Time `json:"lastPlayedISO"`
	LastScore      *int      `json:"lastCoachScore,omitempty"`
	PreferredHands string    `json:"preferredHands"`
}

// Default returns a fresh profile stamped with now
func Default(now time.Time) Profile {
	return Profile{
		Rating:         0,
		Tier:           rating.TierFor(0).Name,
		LastPlayed:     now.UTC(),
		PreferredHands: "ANY",
	}
}

// normalize repairs values a hand-edited or older file may carry
func (p *Profile) normalize() {
	p.Rating = rating.Clamp(p.Rating)
	p.Tier = rating.TierFor(p.Rating).Name
	p.TotalHands = max(0, p.TotalHands)
	p.TotalDecisions = max(0, p.TotalDecisions)
	p.CorrectOuts = max(0, p.CorrectOuts)
	p.PreferredHands = strings.ToUpper(p.PreferredHands)
	if !slices.Contains(handPreferences, p.PreferredHands) {
		p.PreferredHands = "ANY"
	}
}

// Store reads and writes one profile file. Updates are serialised within the process.
type Store struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
	mu     sync.Mutex
}

// NewStore returns a store for path
func NewStore(path string, clock quartz.Clock, logger *log.Logger) *Store {
	return &Store{
		path:   path,
		clock:  clock,
		logger: logger.WithPrefix("profile"),
	}
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved profile. A missing or unreadable file yields a
// default profile rather than an error.
func (s *Store) Load() (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Profile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(s.clock.Now()), nil
	} else if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("Discarding corrupt profile", "path", s.path, "error", err)
		return Default(s.clock.Now()), nil
	}
	p.normalize()
	return p, nil
}

// Save writes the profile atomically
func (s *Store) Save(p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(p)
}

func (s *Store) save(p Profile) error {
	p.normalize()
	if err := fileutil.WriteJSONAtomic(s.path, p, 0o644); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.logger.Debug("Saved profile", "path", s.path, "elo", p.Rating, "rank", p.Tier)
	return nil
}

// Reset deletes the saved profile
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to reset profile: %w", err)
	}
	s.logger.Info("Profile reset", "path", s.path)
	return nil
}

// update loads the profile, applies fn, stamps LastPlayed and saves
func (s *Store) update(fn func(*Profile)) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return Profile{}, err
	}
	fn(&p)
	p.LastPlayed = s.clock.Now().UTC()
	if err := s.save(p); err != nil {
		return Profile{}, err
	}
	p.normalize()
	return p, nil
}

// RecordDecision applies a rating delta for a graded decision
func (s *Store) RecordDecision(score, delta int) (Profile, error) {
	return s.update(func(p *Profile) {
		p.Rating = rating.Clamp(p.Rating + delta)
		p.TotalDecisions++
		p.LastScore = &score
	})
}

// RecordOutsAnswer counts an outs answer, crediting it when correct
func (s *Store) RecordOutsAnswer(correct bool) (Profile, error) {
	return s.update(func(p *Profile) {
		if correct {
			p.CorrectOuts++
		}
	})
}

// RecordHand counts a completed hand
func (s *Store) RecordHand() (Profile, error) {
	return s.update(func(p *Profile) {
		p.TotalHands++
	})
}

// SetPreferredHands stores the kind of spots the trainee wants dealt
func (s *Store) SetPreferredHands(pref string) (Profile, error) {
	return s.update(func(p *Profile) {
		p.PreferredHands = pref
	})
}
