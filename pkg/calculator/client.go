package calculator

import (
	"context"
	"io"

	"github.com/charithe/prefixcalc/pkg/v1pb"
	"google.golang.org/grpc"
)

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
	strict bool
}

type ClientOption func(*Client)

// Strict makes the server reject malformed expressions instead of evaluating them permissively.
func Strict() ClientOption {
	return func(c *Client) {
		c.strict = true
	}
}

func NewClient(conn *grpc.ClientConn, opts ...ClientOption) *Client {
	c := &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Evaluate(ctx context.Context, expr string) (float64, error) {
	resp, err := c.client.Evaluate(ctx, &v1pb.EvaluateRequest{Expression: expr, Strict: c.strict})
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}

// EvaluateStream sends each fragment as it arrives. The server evaluates the concatenation of
// all fragments once the channel is closed.
func (c *Client) EvaluateStream(ctx context.Context, fragments <-chan string) (float64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.client.EvaluateStream(ctx)
	if err != nil {
		return 0, err
	}

	// the mode has to reach the server even when there are no fragments
	if err := stream.Send(&v1pb.EvaluateStreamRequest{Strict: c.strict}); err != nil && err != io.EOF {
		return 0, err
	}

	for fragment := range fragments {
		if err := stream.Send(&v1pb.EvaluateStreamRequest{Fragment: fragment, Strict: c.strict}); err != nil {
			if err == io.EOF {
				// the server ended the stream early and the real status comes from CloseAndRecv
				break
			}
			return 0, err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}

func (c *Client) EvaluateBatch(ctx context.Context, exprs []string) ([]float64, error) {
	resp, err := c.client.EvaluateBatch(ctx, &v1pb.EvaluateBatchRequest{Expressions: exprs, Strict: c.strict})
	if err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
