package calculator

import (
	"context"
	"math"
	"net"
	"strings"
	"testing"

	"github.com/charithe/prefixcalc/pkg/v1pb"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type calculatorTestCase struct {
	name          string
	expr          string
	wantResult    float64
	wantNaN       bool
	wantStrictErr codes.Code
}

func TestCalculator(t *testing.T) {
	svc := NewService(WithMaxExpressionLength(64))
	addr, destroyFunc := startServer(t, svc)
	defer destroyFunc()

	client := createClient(t, addr)
	defer client.Close()

	strictClient := createClient(t, addr, Strict())
	defer strictClient.Close()

	testCases := []calculatorTestCase{
		{
			name:       "multiDigit",
			expr:       "+ 15 2",
			wantResult: 17,
		},
		{
			name:       "parenthesized",
			expr:       "(+ 3 (* 3 2))",
			wantResult: 9,
		},
		{
			name:       "bare",
			expr:       "+ 3 * 3 2",
			wantResult: 9,
		},
		{
			name:       "nestedLeft",
			expr:       "+ * 3 3 2",
			wantResult: 11,
		},
		{
			name:       "fractional",
			expr:       "/ 1 2",
			wantResult: 0.5,
		},
		{
			name:          "missingOperand",
			expr:          "+ 5",
			wantNaN:       true,
			wantStrictErr: codes.InvalidArgument,
		},
		{
			name:          "trailingOperands",
			expr:          "5 5 5",
			wantResult:    5,
			wantStrictErr: codes.InvalidArgument,
		},
		{
			name:          "invalidToken",
			expr:          "+ 5 a",
			wantNaN:       true,
			wantStrictErr: codes.InvalidArgument,
		},
		{
			name:          "empty",
			expr:          "",
			wantNaN:       true,
			wantStrictErr: codes.InvalidArgument,
		},
	}

	check := func(t *testing.T, tc calculatorTestCase, strict bool, haveResult float64, err error) {
		t.Helper()

		if strict && tc.wantStrictErr != codes.OK {
			require.Error(t, err)
			require.Equal(t, tc.wantStrictErr, status.Code(err))
			return
		}

		require.NoError(t, err)
		if tc.wantNaN {
			require.True(t, math.IsNaN(haveResult), "got %v", haveResult)
			return
		}
		require.Equal(t, tc.wantResult, haveResult)
	}

	for _, strict := range []bool{false, true} {
		c := client
		mode := modePermissive
		if strict {
			c = strictClient
			mode = modeStrict
		}

		t.Run(mode, func(t *testing.T) {
			t.Run("unary", func(t *testing.T) {
				for _, tc := range testCases {
					t.Run(tc.name, func(t *testing.T) {
						haveResult, err := c.Evaluate(context.Background(), tc.expr)
						check(t, tc, strict, haveResult, err)
					})
				}
			})

			t.Run("stream", func(t *testing.T) {
				for _, tc := range testCases {
					t.Run(tc.name, func(t *testing.T) {
						fragChan := make(chan string)
						go func(expr string) {
							// split mid-token to make sure fragments are joined before scanning
							for _, r := range expr {
								fragChan <- string(r)
							}
							close(fragChan)
						}(tc.expr)

						haveResult, err := c.EvaluateStream(context.Background(), fragChan)
						check(t, tc, strict, haveResult, err)
					})
				}
			})

			t.Run("batch", func(t *testing.T) {
				for _, tc := range testCases {
					t.Run(tc.name, func(t *testing.T) {
						haveResults, err := c.EvaluateBatch(context.Background(), []string{"* 2 21", tc.expr})
						var haveResult float64
						if err == nil {
							require.Len(t, haveResults, 2)
							require.Equal(t, float64(42), haveResults[0])
							haveResult = haveResults[1]
						} else {
							require.Contains(t, err.Error(), "expression 1")
						}
						check(t, tc, strict, haveResult, err)
					})
				}
			})
		})
	}

	t.Run("emptyBatch", func(t *testing.T) {
		haveResults, err := client.EvaluateBatch(context.Background(), nil)
		require.NoError(t, err)
		require.Empty(t, haveResults)
	})

	t.Run("tooLong", func(t *testing.T) {
		expr := "+ 1 " + strings.Repeat(" ", 64) + "2"

		_, err := client.Evaluate(context.Background(), expr)
		require.Equal(t, codes.ResourceExhausted, status.Code(err))

		_, err = client.EvaluateBatch(context.Background(), []string{"1", expr})
		require.Equal(t, codes.ResourceExhausted, status.Code(err))

		fragChan := make(chan string, len(expr))
		for _, r := range expr {
			fragChan <- string(r)
		}
		close(fragChan)

		_, err = client.EvaluateStream(context.Background(), fragChan)
		require.Equal(t, codes.ResourceExhausted, status.Code(err))
	})

	t.Run("cancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Evaluate(ctx, "+ 1 2")
		require.Equal(t, codes.Canceled, status.Code(err))
	})
}

func startServer(t *testing.T, service *Service) (string, func()) {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}

	addr := lis.Addr().String()
	srv := grpc.NewServer()
	v1pb.RegisterCalculatorServer(srv, service)

	go func() {
		if err := srv.Serve(lis); err != nil {
			panic(err)
		}
	}()

	destroyFunc := func() {
		srv.GracefulStop()
		lis.Close()
	}

	return addr, destroyFunc
}

func createClient(t *testing.T, addr string, opts ...ClientOption) *Client {
	t.Helper()

	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		t.Fatal(err)
	}

	return NewClient(conn, opts...)
}
