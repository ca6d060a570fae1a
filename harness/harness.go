// SPDX-License-Identifier: MIT
// Package: twocolor/harness
//
// harness.go - concurrent randomized trials of bipartite.New + bipartite.Verify.
//
// Contract:
//   - Trial i builds its graph from seed+i only; results are stored by index.
//   - The first failing trial cancels the rest; its error carries the index.
//   - A cancelled ctx stops scheduling and Run returns ctx.Err() wrapped.

package harness

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/twocolor/bipartite"
	"github.com/katalvlaran/twocolor/builder"
	"github.com/katalvlaran/twocolor/core"
)

// TrialResult is the outcome of one trial.
type TrialResult struct {
	Trial     int
	Seed      int64
	Vertices  int
	Edges     int
	Bipartite bool
	OddCycle  []int // nil when Bipartite
}

// Report aggregates a harness run. Results are ordered by trial index.
type Report struct {
	RunID        string
	Trials       int
	Bipartite    int
	NonBipartite int
	Results      []TrialResult
}

// Run executes cfg.Trials trials and certifies every checker result.
func Run(ctx context.Context, opts ...Option) (*Report, error) {
	cfg := NewConfig(opts...)
	runID := uuid.NewString()
	log := cfg.Logger.With("run", runID)

	results := make([]TrialResult, cfg.Trials)

	errg, gctx := errgroup.WithContext(ctx)
	errg.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Trials; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		errg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runTrial(cfg, i)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = res
			log.DebugContext(gctx, "trial finished",
				"trial", i, "seed", res.Seed, "edges", res.Edges, "bipartite", res.Bipartite)

			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}

	rep := &Report{RunID: runID, Trials: cfg.Trials, Results: results}
	for _, r := range results {
		if r.Bipartite {
			rep.Bipartite++
		} else {
			rep.NonBipartite++
		}
	}
	log.InfoContext(ctx, "harness finished",
		"trials", rep.Trials, "bipartite", rep.Bipartite, "non_bipartite", rep.NonBipartite)

	return rep, nil
}

// BuildTrialGraph returns the graph trial i of cfg runs on: a random bipartite
// graph on V1+V2 vertices with Edges cross edges, plus ExtraEdges random pairs.
func BuildTrialGraph(cfg Config, i int) (*core.Graph, error) {
	return builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithSeed(cfg.Seed + int64(i))},
		builder.RandomBipartite(cfg.V1, cfg.V2, cfg.Edges),
		builder.RandomEdges(cfg.ExtraEdges),
	)
}

func runTrial(cfg Config, i int) (TrialResult, error) {
	g, err := BuildTrialGraph(cfg, i)
	if err != nil {
		return TrialResult{}, err
	}

	c, err := bipartite.New(g)
	if err != nil {
		return TrialResult{}, err
	}
	if err = bipartite.Verify(g, c); err != nil {
		return TrialResult{}, err
	}

	return TrialResult{
		Trial:     i,
		Seed:      cfg.Seed + int64(i),
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Bipartite: c.IsBipartite(),
		OddCycle:  c.OddCycle(),
	}, nil
}
