package main

import (
	"context"
	"strings"

	"github.com/charithe/prefixcalc/pkg/calculator"
	"github.com/pkg/errors"
)

type evaluator interface {
	Evaluate(ctx context.Context, expr string) (float64, error)
	EvaluateStream(ctx context.Context, fragments <-chan string) (float64, error)
	EvaluateBatch(ctx context.Context, exprs []string) ([]float64, error)
	Close() error
}

// localEvaluator evaluates in-process with the same semantics as the server.
type localEvaluator struct {
	strict bool
}

func (l localEvaluator) Evaluate(ctx context.Context, expr string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if !l.strict {
		return calculator.Evaluate(expr), nil
	}
	return calculator.EvaluateStrict(expr)
}

func (l localEvaluator) EvaluateStream(ctx context.Context, fragments <-chan string) (float64, error) {
	var expr strings.Builder
	for fragment := range fragments {
		expr.WriteString(fragment)
	}

	return l.Evaluate(ctx, expr.String())
}

func (l localEvaluator) EvaluateBatch(ctx context.Context, exprs []string) ([]float64, error) {
	results := make([]float64, len(exprs))
	for i, expr := range exprs {
		result, err := l.Evaluate(ctx, expr)
		if err != nil {
			return nil, errors.Wrapf(err, "expression %d", i)
		}

		results[i] = result
	}

	return results, nil
}

func (localEvaluator) Close() error {
	return nil
}
