package rank

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lexrank/core"
	"github.com/poiesic/lexrank/index"
)

// DefaultTopN is the number of results returned when the caller does not
// ask for a specific count.
const DefaultTopN = 5

// CatalogView provides a consistent snapshot of the catalog and its
// term-weight model. The returned pair must agree: one model row per
// record, in catalog order.
type CatalogView interface {
	Snapshot() ([]*core.Record, *index.Model)
}

// Result is one ranked match.
type Result struct {
	Record     *core.Record
	Similarity float64 // Percentage in [0, 100], rounded to 2 decimal places
	Evidence   string  // Comma-joined token overlap with the query, or NoOverlap
}

// Ranker scores catalog records against free-text queries.
type Ranker struct {
	catalog CatalogView
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// NewRanker creates a new ranker over the given catalog view.
func NewRanker(catalog CatalogView, opts ...Option) (*Ranker, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Ranker{
		catalog: catalog,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Release()
			return nil, err
		}
	}

	return r, nil
}

// Release frees the scoring pool. The ranker must not be used afterwards.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// Rank returns up to topN records most similar to the query, sorted by
// similarity descending with catalog order breaking exact ties. A topN of
// zero or less means DefaultTopN.
func (r *Ranker) Rank(ctx context.Context, query string, topN int) ([]*Result, error) {
	return r.RankWithMonitor(ctx, query, topN, nil)
}

// RankWithMonitor ranks with observation hooks. The monitor receives
// callbacks at each stage of the ranking process.
//
// Ranking is total over the query string: unrecognized vocabulary scores
// zero for every record, and a query that tokenizes to nothing returns an
// empty result list. Neither is an error.
func (r *Ranker) RankWithMonitor(ctx context.Context, query string, topN int, monitor RankMonitor) ([]*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	monitor.Start(query)

	records, model := r.catalog.Snapshot()
	monitor.AfterSnapshot(len(records), model.Revision())

	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 || len(records) == 0 {
		empty := []*Result{}
		monitor.Finish(empty)
		return empty, nil
	}

	queryVec := model.Transform(query)
	recognized := model.Recognized(query)
	monitor.AfterVectorize(recognized)
	r.logger.Debug("query vectorized",
		"terms", len(queryTokens), "recognized", len(recognized), "revision", model.Revision())

	scores := r.score(queryVec, model, len(records))
	monitor.AfterScoring(scores)

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] == scores[order[b]] {
			return order[a] < order[b]
		}
		return scores[order[a]] > scores[order[b]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	results := make([]*Result, 0, len(order))
	for _, i := range order {
		record := records[i]
		results = append(results, &Result{
			Record:     record,
			Similarity: toPercent(scores[i]),
			Evidence:   formatEvidence(matchedTerms(queryTokens, record.KeywordText)),
		})
	}
	monitor.Finish(results)

	return results, nil
}

// score computes cosine similarity for every record, fanned out across the
// worker pool. Each task writes to its own slot, so the slice is ordered
// by record regardless of completion order.
func (r *Ranker) score(queryVec []float64, model *index.Model, n int) []float64 {
	scores := make([]float64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scores[i] = model.Similarity(queryVec, i)
		}
		if err := r.pool.Submit(task); err != nil {
			// Pool unavailable (released or overloaded): score inline.
			task()
		}
	}
	wg.Wait()
	return scores
}

// toPercent scales a [0, 1] similarity to a percentage rounded to two
// decimal places.
func toPercent(score float64) float64 {
	return math.Round(score*10000) / 100
}
