// Package search runs the search pipeline over a docset index: scan,
// score, rank.
package search

import (
	"context"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/zealdoc"
	"golang.org/x/sync/errgroup"
)

// Ensure Searcher implements zealdoc.Searcher at compile time.
var _ zealdoc.Searcher = (*Searcher)(nil)

// chunkSize is the number of records scored by one worker task.
const chunkSize = 2048

// Searcher searches docset indexes, scoring candidates in parallel.
type Searcher struct {
	Indexes zealdoc.IndexOpener
	// Concurrency bounds the number of scoring workers.
	// Zero or less uses GOMAXPROCS.
	Concurrency int
}

// Search scans the docset index, scores every candidate against query and
// returns the ranked results. With a non-empty query the scan is narrowed to
// names containing query unless opts.FullScan is set.
func (s *Searcher) Search(ctx context.Context, docset *zealdoc.Docset, query string, opts zealdoc.SearchOptions) ([]*zealdoc.Result, error) {
	idx, err := s.Indexes.OpenIndex(ctx, docset)
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	var filter zealdoc.RecordFilter
	if query != "" && !opts.FullScan {
		filter.Contains = query
	}

	records, err := scan(ctx, idx, filter, opts.Unique)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, zealdoc.Errorf(zealdoc.EUNAVAILABLE, "docset %q: reading index: %v", docset.Name, err)
	}

	results, err := s.score(ctx, query, records, docset.DocumentsPath())
	if err != nil {
		return nil, err
	}

	zealdoc.Rank(query, results)
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// scan drains the index into memory. With unique set, records repeating an
// earlier name, kind and path are dropped.
func scan(ctx context.Context, idx zealdoc.Index, filter zealdoc.RecordFilter, unique bool) ([]*zealdoc.Record, error) {
	var seen map[uint64]struct{}
	if unique {
		seen = make(map[uint64]struct{})
	}

	var records []*zealdoc.Record
	for rec, err := range idx.Records(ctx, filter) {
		if err != nil {
			return nil, err
		}
		if seen != nil {
			key := recordKey(rec)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordKey(rec *zealdoc.Record) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(rec.Name)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(rec.Kind)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(rec.Path)
	return d.Sum64()
}

// score matches records against query. Each chunk of records is scored by
// its own task and written to its own slot, so the output keeps scan order
// regardless of scheduling.
func (s *Searcher) score(ctx context.Context, query string, records []*zealdoc.Record, root string) ([]*zealdoc.Result, error) {
	if query == "" {
		results := make([]*zealdoc.Result, len(records))
		for i, rec := range records {
			results[i] = zealdoc.NewResult(rec, 0, root)
		}
		return results, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	chunks := make([][]*zealdoc.Result, (len(records)+chunkSize-1)/chunkSize)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for c := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo := c * chunkSize
			hi := min(lo+chunkSize, len(records))
			var out []*zealdoc.Result
			for _, rec := range records[lo:hi] {
				if score, ok := zealdoc.Match(query, rec.Name); ok {
					out = append(out, zealdoc.NewResult(rec, score, root))
				}
			}
			chunks[c] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []*zealdoc.Result
	for _, chunk := range chunks {
		results = append(results, chunk...)
	}
	return results, nil
}
