// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"kmpmatch-core/engine"
	"kmpmatch-core/fasta"
)

// ForEachMatch loads every genome record from genomeFiles (file order,
// then record order within each file), runs the engine over the full
// pattern set, and visits each match in the canonical output order.
// Records across all files share one global index so the total order
// extends naturally to multi-file runs; SourceFile is filled in here
// because only the pipeline knows which file a record came from.
//
// onRecord, if non-nil, is called once per genome record as it is loaded
// (progress reporting); it must not retain the record.
func ForEachMatch(
	ctx context.Context,
	genomeFiles []string,
	patterns []fasta.Record,
	eng *engine.Engine,
	onRecord func(fasta.Record),
	visit func(engine.Match) error,
) error {
	var (
		records []fasta.Record
		sources []string
	)
	for _, path := range genomeFiles {
		err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			records = append(records, rec)
			sources = append(sources, path)
			if onRecord != nil {
				onRecord(rec)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	matches, err := eng.Run(ctx, records, patterns)
	if err != nil {
		return err
	}
	for i := range matches {
		matches[i].SourceFile = sources[matches[i].RecordIdx]
		if err := visit(matches[i]); err != nil {
			return err
		}
	}
	return nil
}
