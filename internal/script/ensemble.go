package script

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/bitleak/internal/trail"
)

// Ensemble replays one script under consecutive seeds in parallel. Each run
// owns its own effect, so runs share nothing.
type Ensemble struct {
	script    *Script
	numRuns   int
	seedStart int64
}

func NewEnsemble(s *Script, numRuns int, seedStart int64) *Ensemble {
	if seedStart == 0 {
		seedStart = 1
	}
	return &Ensemble{script: s, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one report per seed, in seed order. At most GOMAXPROCS runs
// play at once and the first failure cancels the rest.
func (e *Ensemble) Run(ctx context.Context, tuning trail.Tuning) ([]*Report, error) {
	reports := make([]*Report, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < e.numRuns; i++ {
		eg.Go(func() error {
			sc := *e.script
			sc.Seed = e.seedStart + int64(i)
			rep, err := Play(ctx, &sc, tuning)
			if err != nil {
				return fmt.Errorf("seed %d: %w", sc.Seed, err)
			}
			reports[i] = rep
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Spread is the min, mean and max of one report field across an ensemble.
type Spread struct {
	Min, Mean, Max float64
}

func SpreadOf(reports []*Report, field func(*Report) float64) Spread {
	if len(reports) == 0 {
		return Spread{}
	}
	sp := Spread{Min: field(reports[0]), Max: field(reports[0])}
	total := 0.0
	for _, r := range reports {
		v := field(r)
		total += v
		sp.Min = min(sp.Min, v)
		sp.Max = max(sp.Max, v)
	}
	sp.Mean = total / float64(len(reports))
	return sp
}
