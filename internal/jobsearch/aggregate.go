package jobsearch

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// Aggregate fans out to every source concurrently and merges the results.
//
// Each source writes into its own slot, so no lock is needed. A failed
// source is logged and contributes nothing; the other sources' results
// still come back. Merge order is source order, then a stable dedup by
// Link keeps the first occurrence. Zero combined results is a valid
// outcome, not a failure.
func Aggregate(ctx context.Context, sources []Source, q Query) []JobPosting {
	results := make([][]JobPosting, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			jobs, err := src.Search(gctx, q)
			if err != nil {
				log.Printf("[aggregator] %s search failed: %v", src.Name(), err)
				return nil
			}
			results[i] = jobs
			return nil
		})
	}
	// Goroutines never return errors; Wait is just the join point.
	_ = g.Wait()

	var combined []JobPosting
	for _, jobs := range results {
		combined = append(combined, jobs...)
	}
	return Dedup(combined)
}

// Dedup removes postings whose Link was already seen, preserving the
// relative order of first occurrences.
func Dedup(jobs []JobPosting) []JobPosting {
	seen := make(map[string]bool, len(jobs))
	unique := make([]JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if seen[job.Link] {
			continue
		}
		seen[job.Link] = true
		unique = append(unique, job)
	}
	return unique
}
