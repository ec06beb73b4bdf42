package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/poker"
)

// CalibrateCmd grades generated spots in parallel and reports how the
// engine's recommendations and scores are distributed
type CalibrateCmd struct {
	Spots   int    `short:"n" default:"1000" help:"Number of spots to grade"`
	Workers int    `short:"w" help:"Concurrent workers (default: number of CPUs)"`
	Mode    string `short:"m" default:"hands" enum:"hands,game" help:"Scenario mode"`
	Action  string `short:"a" help:"Hero action to grade in every spot (default: a random action per spot)"`
	Seed    int64  `help:"Base seed (0 picks one)"`
}

// calibration is the aggregate of one calibrate run
type calibration struct {
	Spots      int
	BestAction map[coach.Action]int
	Verdicts   map[coach.Verdict]int
	Streets    map[poker.Street]int
	ScoreSum   int
	MinScore   int
	MaxScore   int
}

func (c *CalibrateCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	mode, err := scenario.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	var fixed coach.Action
	if c.Action != "" {
		if fixed, err = coach.ParseAction(c.Action); err != nil {
			return err
		}
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := randutil.Seed(c.Seed)
	e.logger.Info("Calibrating", "spots", c.Spots, "workers", workers, "mode", mode, "seed", seed)

	results, err := calibrateSpots(context.Background(), e.engine(), mode, fixed, c.Spots, workers, seed)
	if err != nil {
		return err
	}
	printCalibration(os.Stdout, summarize(results))
	return nil
}

type graded struct {
	Street poker.Street
	Result coach.Result
}

// calibrateSpots grades n spots. Spot i is dealt from seed+i, so the output
// does not depend on the worker count.
func calibrateSpots(ctx context.Context, engine *coach.Engine, mode scenario.Mode, fixed coach.Action, n, workers int, seed int64) ([]graded, error) {
	results := make([]graded, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := randutil.New(seed + int64(i))
			spot := scenario.New(rng).Generate(mode)
			action := fixed
			if action == "" {
				action = randutil.Pick(rng, []coach.Action{coach.Fold, coach.Call, coach.Raise})
			}
			results[i] = graded{
				Street: spot.State.Street,
				Result: engine.Decide(spot.State, action, nil),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func summarize(results []graded) calibration {
	cal := calibration{
		Spots:      len(results),
		BestAction: make(map[coach.Action]int),
		Verdicts:   make(map[coach.Verdict]int),
		Streets:    make(map[poker.Street]int),
		MinScore:   100,
	}
	if len(results) == 0 {
		cal.MinScore = 0
	}
	for _, r := range results {
		cal.BestAction[r.Result.BestAction]++
		cal.Verdicts[r.Result.Verdict]++
		cal.Streets[r.Street]++
		cal.ScoreSum += r.Result.Score
		cal.MinScore = min(cal.MinScore, r.Result.Score)
		cal.MaxScore = max(cal.MaxScore, r.Result.Score)
	}
	return cal
}

// MeanScore is the average score over all spots
func (c calibration) MeanScore() float64 {
	if c.Spots == 0 {
		return 0
	}
	return float64(c.ScoreSum) / float64(c.Spots)
}

func (c calibration) pct(n int) float64 {
	if c.Spots == 0 {
		return 0
	}
	return 100 * float64(n) / float64(c.Spots)
}

func printCalibration(w io.Writer, c calibration) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Calibration over %d spots", c.Spots)))

	fmt.Fprintln(w, "\nRecommended action:")
	for _, a := range []coach.Action{coach.Fold, coach.Call, coach.Raise} {
		fmt.Fprintf(w, "  %-6s %6d  %5.1f%%\n", a, c.BestAction[a], c.pct(c.BestAction[a]))
	}

	fmt.Fprintln(w, "\nStreets:")
	streets := make([]poker.Street, 0, len(c.Streets))
	for s := range c.Streets {
		streets = append(streets, s)
	}
	sort.Slice(streets, func(i, j int) bool { return streets[i] < streets[j] })
	for _, s := range streets {
		fmt.Fprintf(w, "  %-7s %6d  %5.1f%%\n", s, c.Streets[s], c.pct(c.Streets[s]))
	}

	fmt.Fprintln(w, "\nVerdicts:")
	for _, v := range []coach.Verdict{coach.VerdictPerfect, coach.VerdictGreat, coach.VerdictGood, coach.VerdictNeutral, coach.VerdictNotIdeal, coach.VerdictBad} {
		label := verdictStyle(v).Render(fmt.Sprintf("%-9s", v))
		fmt.Fprintf(w, "  %s %6d  %5.1f%%\n", label, c.Verdicts[v], c.pct(c.Verdicts[v]))
	}

	fmt.Fprintf(w, "\nScore: mean %.1f, min %d, max %d\n", c.MeanScore(), c.MinScore, c.MaxScore)
}
