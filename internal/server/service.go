package server

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/showdown"
)

// Service runs the coaching operations shared by the HTTP and WebSocket
// surfaces. It holds no per-request state.
type Service struct {
	engine *coach.Engine
	clock  quartz.Clock
	logger *log.Logger
}

// NewService creates a service around engine
func NewService(engine *coach.Engine, clock quartz.Clock, logger *log.Logger) *Service {
	return &Service{
		engine: engine,
		clock:  clock,
		logger: logger.WithPrefix("service"),
	}
}

// Coach validates and grades one decision
func (s *Service) Coach(req CoachRequest) (CoachResponse, error) {
	if err := ValidateCoachRequest(req); err != nil {
		return CoachResponse{}, err
	}

	start := s.clock.Now()
	result := s.engine.Decide(req.State, req.HeroAction, req.RaiseSize)
	resp := CoachResponse{Result: result}
	if req.OutsAnswer != nil {
		grade := coach.GradeOuts(*req.OutsAnswer, coach.SnapshotOuts(req.State))
		resp.OutsGrade = &grade
	}

	s.logger.Debug("Graded decision",
		"street", req.State.Street,
		"action", req.HeroAction,
		"best", result.BestAction,
		"score", result.Score,
		"took", s.clock.Since(start))
	return resp, nil
}

// Showdown validates and settles a completed hand
func (s *Service) Showdown(in showdown.Input) (showdown.Result, error) {
	if err := ValidateShowdown(in); err != nil {
		return showdown.Result{}, err
	}
	result := showdown.Resolve(in)
	s.logger.Debug("Resolved showdown", "players", len(result.Players), "hero", result.HeroWouldResult)
	return result, nil
}

// Scenario deals a spot from the request's seed, or a fresh seed when zero
func (s *Service) Scenario(req ScenarioRequest) (ScenarioResponse, error) {
	mode, err := scenario.ParseMode(req.Mode)
	if err != nil {
		return ScenarioResponse{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}
	g := scenario.New(randutil.New(seed))
	g.Focus = scenario.ParseFocus(req.Focus)

	spot := g.Generate(mode)
	s.logger.Debug("Generated scenario", "mode", mode, "seed", seed, "street", spot.State.Street)
	return ScenarioResponse{Spot: spot, Seed: seed}, nil
}
