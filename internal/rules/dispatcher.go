package rules

import (
	"fmt"

	"nooa/internal/grammar"
	"nooa/internal/worker"
	"nooa/pkg/lint"
)

// Dispatch routes every grammar rule to its bound Evaluator and returns
// the combined, stable-sorted violation stream (§4.4, §5). Evaluators
// only ever read Context, so the dispatcher is free to run them across a
// worker pool without locking; concurrency <= 1 runs them sequentially on
// the calling goroutine instead of spinning up a pool for no benefit.
func Dispatch(g *grammar.Grammar, ctx *Context, concurrency int) ([]lint.Violation, error) {
	evaluators := make([]Evaluator, len(g.Rules))
	for i, rule := range g.Rules {
		ev, ok := Bind(rule.Kind)
		if !ok {
			return nil, fmt.Errorf("rule %q: no evaluator registered for kind %q", rule.Name, rule.Kind)
		}
		evaluators[i] = ev
	}

	if concurrency <= 1 || len(g.Rules) <= 1 {
		var all []lint.Violation
		for i, rule := range g.Rules {
			all = append(all, evaluators[i](rule, ctx)...)
		}
		return sortedViolations(all), nil
	}

	return dispatchConcurrent(g, ctx, evaluators, concurrency)
}

func dispatchConcurrent(g *grammar.Grammar, ctx *Context, evaluators []Evaluator, concurrency int) ([]lint.Violation, error) {
	pool := worker.NewPool(concurrency)
	pool.Run()

	var collected []lint.Violation
	done := make(chan struct{})
	go func() {
		for result := range pool.Results() {
			if result.Error != nil {
				continue
			}
			if v, ok := result.Value.([]lint.Violation); ok {
				collected = append(collected, v...)
			}
		}
		close(done)
	}()

	for i, rule := range g.Rules {
		rule, evaluator := rule, evaluators[i]
		task := worker.Task{
			ID: rule.Name,
			Func: func(interface{}) (interface{}, error) {
				return evaluator(rule, ctx), nil
			},
		}
		if err := pool.SubmitTask(task); err != nil {
			return nil, err
		}
	}

	pool.Stop()
	<-done

	return sortedViolations(collected), nil
}
