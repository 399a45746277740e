package calculator

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"go.uber.org/zap"
)

const (
	modePermissive = "permissive"
	modeStrict     = "strict"

	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	mEvaluations      = stats.Int64("calculator/evaluations", "Number of evaluated expressions", "1")
	mExpressionLength = stats.Int64("calculator/expression_length", "Length of evaluated expressions", stats.UnitBytes)

	keyMode    = mustNewKey("mode")
	keyOutcome = mustNewKey("outcome")
)

var (
	EvaluationCountView = &view.View{
		Name:        "calculator/evaluations",
		Description: "Count of evaluated expressions by mode and outcome",
		Measure:     mEvaluations,
		TagKeys:     []tag.Key{keyMode, keyOutcome},
		Aggregation: view.Count(),
	}

	ExpressionLengthView = &view.View{
		Name:        "calculator/expression_length",
		Description: "Distribution of expression lengths in bytes",
		Measure:     mExpressionLength,
		TagKeys:     []tag.Key{keyMode},
		Aggregation: view.Distribution(16, 64, 256, 1024, 4096, 16384, 65536),
	}

	// Views should be registered by the binary to export evaluation metrics.
	Views = []*view.View{EvaluationCountView, ExpressionLengthView}
)

func mustNewKey(name string) tag.Key {
	k, err := tag.NewKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

func recordEvaluation(ctx context.Context, mode string, exprLen int, evalErr error) {
	outcome := outcomeOK
	if evalErr != nil {
		outcome = outcomeError
	}

	ctx, err := tag.New(ctx, tag.Upsert(keyMode, mode), tag.Upsert(keyOutcome, outcome))
	if err != nil {
		zap.S().Warnw("Failed to tag evaluation metrics", "error", err)
		return
	}

	stats.Record(ctx, mEvaluations.M(1), mExpressionLength.M(int64(exprLen)))
}
