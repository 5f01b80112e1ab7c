// Package pipeline runs ordered validation rules against a value and merges
// their outcomes fail-slow: every rule always runs, every failure is kept.
package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/goutcome/outcome_go/outcome"
)

// Rule validates a value synchronously.
type Rule[T any] func(T) outcome.Outcome

// AsyncRule validates a value with a context-aware, possibly blocking check.
type AsyncRule[T any] func(context.Context, T) outcome.Outcome

// Pipeline holds an ordered list of rules. Build it once with AddRule /
// AddAsyncRule, then validate values repeatedly; validation itself never
// mutates the pipeline.
type Pipeline[T any] struct {
	rules      []Rule[T]
	asyncRules []AsyncRule[T]
}

// New creates an empty pipeline.
func New[T any]() *Pipeline[T] {
	logger, _ := zap.NewProduction()
	logger.Sugar().Debugf("created validation pipeline")
	return &Pipeline[T]{}
}

// AddRule appends a synchronous rule. Returns the pipeline for chaining.
func (p *Pipeline[T]) AddRule(rule Rule[T]) *Pipeline[T] {
	p.rules = append(p.rules, rule)
	return p
}

// AddAsyncRule appends a context-aware rule. Returns the pipeline for
// chaining.
func (p *Pipeline[T]) AddAsyncRule(rule AsyncRule[T]) *Pipeline[T] {
	p.asyncRules = append(p.asyncRules, rule)
	return p
}

// Validate runs every rule against value and merges all outcomes. With no
// async rules registered this spawns nothing and never blocks; registered
// async rules run as in ValidateCtx with a background context.
func (p *Pipeline[T]) Validate(value T) outcome.Of[T] {
	if len(p.asyncRules) == 0 {
		return p.finish(value, p.runSync(value))
	}
	return p.ValidateCtx(context.Background(), value)
}

// ValidateCtx runs every sync rule in order, then every async rule
// concurrently, and merges every produced outcome. On success the original
// value is returned; on failure the result carries all messages and no
// value.
func (p *Pipeline[T]) ValidateCtx(ctx context.Context, value T) outcome.Of[T] {
	merged := p.runSync(value)
	if len(p.asyncRules) > 0 {
		merged = outcome.Merge(merged, p.runAsync(ctx, value))
	}
	return p.finish(value, merged)
}

func (p *Pipeline[T]) runSync(value T) outcome.Outcome {
	merged := outcome.Ok()
	for _, rule := range p.rules {
		merged = outcome.Merge(merged, rule(value))
	}
	return merged
}

// runAsync evaluates the async rules concurrently; each outcome lands in the
// slot of its rule index so message order follows registration order.
func (p *Pipeline[T]) runAsync(ctx context.Context, value T) outcome.Outcome {
	slots := make([]outcome.Outcome, len(p.asyncRules))
	var wg sync.WaitGroup
	for i, rule := range p.asyncRules {
		wg.Add(1)
		go func(i int, rule AsyncRule[T]) {
			defer wg.Done()
			slots[i] = rule(ctx, value)
		}(i, rule)
	}
	wg.Wait()
	return outcome.MergeAll(slots...)
}

func (p *Pipeline[T]) finish(value T, merged outcome.Outcome) outcome.Of[T] {
	if merged.IsFailure() {
		return outcome.MessagesOf[T](merged.Messages())
	}
	return outcome.OkOf(value)
}
