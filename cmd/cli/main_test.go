package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charithe/prefixcalc/pkg/calculator"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDoEval(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, doEval(context.Background(), localEvaluator{}, []string{"+", "15", "2"}, &out))
	require.Equal(t, "17\n", out.String())

	out.Reset()
	require.NoError(t, doEval(context.Background(), localEvaluator{}, []string{"+ 1"}, &out))
	require.Equal(t, "NaN\n", out.String())

	err := doEval(context.Background(), localEvaluator{strict: true}, []string{"+ 1"}, &out)
	require.Equal(t, calculator.ErrMalformedExpression, errors.Cause(err))
}

func TestDoBatch(t *testing.T) {
	in := strings.NewReader("+ 15 2\n\n/ 1 2\n  (+ 3 (* 3 2))  \n")

	var out bytes.Buffer
	require.NoError(t, doBatch(context.Background(), localEvaluator{strict: true}, in, &out))
	require.Equal(t, "+ 15 2: 17\n/ 1 2: 0.5\n(+ 3 (* 3 2)): 9\n", out.String())

	err := doBatch(context.Background(), localEvaluator{strict: true}, strings.NewReader("1\n1 2\n"), &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expression 1")
	require.Equal(t, calculator.ErrTrailingOperands, errors.Cause(err))
}

func TestDoStream(t *testing.T) {
	in := strings.NewReader("+\n15\n2\n")

	var out bytes.Buffer
	require.NoError(t, doStream(context.Background(), localEvaluator{strict: true}, in, &out))
	require.Equal(t, "17\n", out.String())
}

func TestDoDemo(t *testing.T) {
	var out bytes.Buffer
	doDemo(&out)
	require.Equal(t, "+ 15 2: 17\n(+ 3 (* 3 2)): 9\n+ 3 * 3 2: 9\n+ * 3 3 2: 11\n", out.String())
}

func TestLocalEvaluatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := localEvaluator{}.Evaluate(ctx, "+ 1 2")
	require.Equal(t, context.Canceled, err)
}
