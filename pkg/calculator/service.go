package calculator

import (
	"context"
	"io"
	"strings"

	"github.com/charithe/prefixcalc/pkg/v1pb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
)

const DefaultMaxExpressionLength = 64 * 1024

var errExpressionTooLong = errors.New("expression too long")

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
	maxExprLen int
}

type ServiceOption func(*Service)

// WithMaxExpressionLength limits the size in bytes of a single expression, including one
// assembled from stream fragments. Values <= 0 are ignored.
func WithMaxExpressionLength(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxExprLen = n
		}
	}
}

func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		Server:     health.NewServer(),
		maxExprLen: DefaultMaxExpressionLength,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	// if the context has already expired, we can avoid unnecessary work
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.evaluate(ctx, req.Expression, req.Strict)
	if err != nil {
		return nil, statusError(err)
	}

	return &v1pb.EvaluateResponse{Result: result}, nil
}

func (s *Service) EvaluateStream(stream v1pb.Calculator_EvaluateStreamServer) error {
	var expr strings.Builder
	strict := false

	for {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				// end of the client-side stream so calculate the result
				result, err := s.evaluate(stream.Context(), expr.String(), strict)
				if err != nil {
					return statusError(err)
				}

				if err := stream.SendAndClose(&v1pb.EvaluateStreamResponse{Result: result}); err != nil {
					zap.S().Errorw("Failed to send response", "error", err)
					return err
				}

				return nil
			}

			zap.S().Warnw("Failed to receive request from stream", "error", err)
			return err
		}

		if expr.Len()+len(req.Fragment) > s.maxExprLen {
			return statusError(errors.Wrapf(errExpressionTooLong, "limit is %d bytes", s.maxExprLen))
		}

		expr.WriteString(req.Fragment)
		strict = strict || req.Strict
	}
}

func (s *Service) EvaluateBatch(ctx context.Context, req *v1pb.EvaluateBatchRequest) (*v1pb.EvaluateBatchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]float64, len(req.Expressions))
	for i, expr := range req.Expressions {
		result, err := s.evaluate(ctx, expr, req.Strict)
		if err != nil {
			return nil, statusError(errors.Wrapf(err, "expression %d", i))
		}

		results[i] = result
	}

	return &v1pb.EvaluateBatchResponse{Results: results}, nil
}

func (s *Service) evaluate(ctx context.Context, expr string, strict bool) (float64, error) {
	if len(expr) > s.maxExprLen {
		return 0, errors.Wrapf(errExpressionTooLong, "limit is %d bytes", s.maxExprLen)
	}

	if !strict {
		result := Evaluate(expr)
		recordEvaluation(ctx, modePermissive, len(expr), nil)
		return result, nil
	}

	result, err := EvaluateStrict(expr)
	recordEvaluation(ctx, modeStrict, len(expr), err)
	if err != nil {
		zap.S().Debugw("Rejected expression", "error", err)
		return 0, err
	}

	return result, nil
}

func statusError(err error) error {
	if errors.Cause(err) == errExpressionTooLong {
		return grpc.Errorf(codes.ResourceExhausted, "%v", err)
	}

	return grpc.Errorf(codes.InvalidArgument, "%v", err)
}
