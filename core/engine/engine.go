// core/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"sync"

	"kmpmatch-core/fasta"
	"kmpmatch-core/kmp"
)

// Config holds matching parameters.
type Config struct {
	Workers int // parallel workers (>= 1)
}

// Engine matches a pattern set against genome records with KMP.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Run finds every occurrence of every pattern in every genome record and
// returns them in the canonical order (see Less). Patterns are split
// round-robin across cfg.Workers goroutines. Each worker builds the
// failure tables for its own shard and appends matches to a private
// buffer, so the scan loop is lock-free; genome and patterns are shared
// read-only. Run blocks until every worker has finished.
//
// Any worker error aborts the whole run: silently dropping one shard's
// matches would truncate the result set. The first error by worker index
// wins, keeping failures as reproducible as the output.
func (e *Engine) Run(ctx context.Context, genome, patterns []fasta.Record) ([]Match, error) {
	shards, err := Partition(len(patterns), e.cfg.Workers)
	if err != nil {
		return nil, err
	}

	bufs := make([][]Match, len(shards))
	errs := make([]error, len(shards))

	var wg sync.WaitGroup
	wg.Add(len(shards))
	for w := range shards {
		go func(w int) {
			defer wg.Done()
			bufs[w], errs[w] = scanShard(ctx, genome, patterns, shards[w])
		}(w)
	}
	wg.Wait()

	for _, werr := range errs {
		if werr != nil {
			return nil, werr
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make([]Match, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}
	SortMatches(out)
	return out, nil
}

// scanShard is one worker: build failure tables for the owned patterns,
// then scan every genome record in record order with every owned pattern
// in shard order.
func scanShard(ctx context.Context, genome, patterns []fasta.Record, shard []int) ([]Match, error) {
	tables := make([][]int, len(shard))
	for i, p := range shard {
		table, err := kmp.BuildTable(patterns[p].Seq)
		if err != nil {
			return nil, fmt.Errorf("pattern %d (%s): %w", p, patterns[p].ID, err)
		}
		tables[i] = table
	}

	var out []Match
	for r := range genome {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		rec := &genome[r]
		for i, p := range shard {
			err := kmp.Scan(rec.Seq, patterns[p].Seq, tables[i], func(pos int) error {
				out = append(out, Match{
					PatternIdx: p,
					PatternID:  patterns[p].ID,
					RecordIdx:  r,
					RecordID:   rec.ID,
					Pos:        pos,
				})
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
