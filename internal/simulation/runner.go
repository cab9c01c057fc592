// Package simulation runs many independent crafting episodes of one action
// sequence and aggregates what they produce.
package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rsnyderaustin/poe-craftsim/internal/crafting"
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
	"github.com/rsnyderaustin/poe-craftsim/internal/logger"
	"github.com/rsnyderaustin/poe-craftsim/internal/metrics"
	"github.com/rsnyderaustin/poe-craftsim/internal/utils"
	"github.com/rsnyderaustin/poe-craftsim/internal/worker"
)

// Plan describes one batch: Episodes copies of Item, each put through Actions
// in order. Episode i draws from an RNG seeded Seed+i, so a plan is fully
// reproducible regardless of how episodes are scheduled.
type Plan struct {
	Item      *domain.ItemState `json:"item"`
	Actions   []domain.ActionID `json:"actions"`
	Episodes  int               `json:"episodes"`
	Seed      uint64            `json:"seed"`
	KeepItems bool              `json:"keep_items,omitempty"`
}

// Report aggregates the final states of every episode
type Report struct {
	Episodes          int                     `json:"episodes"`
	Seed              uint64                  `json:"seed"`
	RarityHistogram   map[string]int          `json:"rarity_histogram"`
	MeanExplicitCount float64                 `json:"mean_explicit_count"`
	NoOps             map[domain.ActionID]int `json:"noops"`
	Corrupted         int                     `json:"corrupted"`
	Items             []*domain.ItemState     `json:"items,omitempty"`
	DurationMS        int64                   `json:"duration_ms"`
}

// Options configures a Runner
type Options struct {
	Workers     int
	QueueSize   int
	MaxEpisodes int
}

// Runner fans plan episodes out over a worker pool
type Runner struct {
	crafter crafting.Service
	opts    Options
}

// NewRunner creates a Runner backed by the given crafting service
func NewRunner(crafter crafting.Service, opts Options) *Runner {
	if opts.MaxEpisodes <= 0 {
		opts.MaxEpisodes = DefaultMaxEpisodes
	}
	return &Runner{crafter: crafter, opts: opts}
}

type episodeResult struct {
	item  *domain.ItemState
	noops []int
}

// Validate checks a plan without running it
func (r *Runner) Validate(plan Plan) error {
	if plan.Item == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilItem)
	}
	if err := plan.Item.Validate(); err != nil {
		return err
	}
	if len(plan.Actions) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoActions)
	}
	if len(plan.Actions) > MaxPlanActions {
		return fmt.Errorf("%w: "+ErrMsgTooManyActionsFmt, domain.ErrInvalidInput, len(plan.Actions), MaxPlanActions)
	}
	if plan.Episodes < 1 || plan.Episodes > r.opts.MaxEpisodes {
		return fmt.Errorf("%w: "+ErrMsgEpisodesRangeFmt, domain.ErrInvalidInput, r.opts.MaxEpisodes, plan.Episodes)
	}
	for i, id := range plan.Actions {
		if !crafting.IsKnownAction(id) {
			return fmt.Errorf(ErrMsgUnknownActionFmt, i, id, domain.ErrInvalidAction)
		}
	}
	return nil
}

// Run executes every episode of plan and returns the aggregate report. The
// first failing episode cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	if err := r.Validate(plan); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgBatchStarted, "episodes", plan.Episodes, "actions", len(plan.Actions), "seed", plan.Seed)
	start := time.Now()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]episodeResult, plan.Episodes)
	var (
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	pool := worker.NewPool(r.opts.Workers, r.opts.QueueSize)
	pool.Start(runCtx)

	for i := 0; i < plan.Episodes; i++ {
		episode := i
		job := worker.JobFunc(func(context.Context) error {
			res, err := r.runEpisode(plan, episode)
			if err != nil {
				fail(err)
				return err
			}
			results[episode] = res
			metrics.EpisodesCompleted.Inc()
			return nil
		})
		if err := pool.Enqueue(runCtx, job); err != nil {
			fail(fmt.Errorf(ErrMsgEnqueueFailed, err))
			break
		}
	}
	pool.Stop()

	if firstErr == nil && ctx.Err() != nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		metrics.BatchErrors.Inc()
		log.Error(LogMsgBatchFailed, "error", firstErr)
		return nil, firstErr
	}

	elapsed := time.Since(start)
	metrics.BatchDuration.Observe(elapsed.Seconds())

	report := aggregate(plan, results)
	report.DurationMS = elapsed.Milliseconds()
	log.Info(LogMsgBatchCompleted,
		"episodes", report.Episodes,
		"mean_explicit", report.MeanExplicitCount,
		"corrupted", report.Corrupted,
		"duration", elapsed)
	return report, nil
}

func (r *Runner) runEpisode(plan Plan, episode int) (episodeResult, error) {
	rng := utils.NewRNG(plan.Seed + uint64(episode))
	item := plan.Item.Clone()
	noops := make([]int, len(plan.Actions))

	for step, id := range plan.Actions {
		res, err := r.crafter.Simulate(item, id, rng)
		if err != nil {
			return episodeResult{}, fmt.Errorf(ErrMsgEpisodeFailedFmt, episode, step, id, err)
		}
		metrics.RecordAction(string(id), res.NoOp, len(res.Outcomes))
		if res.NoOp {
			noops[step]++
		}
		item = res.Item
	}
	return episodeResult{item: item, noops: noops}, nil
}

// aggregate folds episode results in episode order so reports are identical
// across runs with the same plan.
func aggregate(plan Plan, results []episodeResult) *Report {
	report := &Report{
		Episodes:        len(results),
		Seed:            plan.Seed,
		RarityHistogram: make(map[string]int),
		NoOps:           make(map[domain.ActionID]int),
	}
	if plan.KeepItems {
		report.Items = make([]*domain.ItemState, 0, len(results))
	}

	explicit := 0
	for _, res := range results {
		report.RarityHistogram[res.item.Rarity.String()]++
		explicit += len(res.item.Explicit)
		if res.item.Corrupted {
			report.Corrupted++
		}
		for step, n := range res.noops {
			report.NoOps[plan.Actions[step]] += n
		}
		if plan.KeepItems {
			report.Items = append(report.Items, res.item)
		}
	}
	if len(results) > 0 {
		report.MeanExplicitCount = float64(explicit) / float64(len(results))
	}
	return report
}
