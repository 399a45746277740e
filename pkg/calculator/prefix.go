package calculator

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	ErrEmptyExpression     = errors.New("empty expression")
	ErrMalformedExpression = errors.New("malformed expression: not enough operands")
	ErrTrailingOperands    = errors.New("incomplete expression: unused operands still in stack")
	ErrUnsupportedToken    = errors.New("unsupported token")
	ErrNumberOutOfRange    = errors.New("number out of range")
)

// operators is read-only after package initialization.
var operators = map[byte]func(left, right float64) float64{
	'+': func(left, right float64) float64 { return left + right },
	'-': func(left, right float64) float64 { return left - right },
	'*': func(left, right float64) float64 { return left * right },
	'/': func(left, right float64) float64 { return left / right },
}

// Evaluate computes the value of an expression written in prefix notation.
// Parentheses are optional and ignored. Input is not validated: characters other than digits
// and operators are skipped, and missing operands or an empty expression produce NaN.
// When several values are left over, the first one pushed is returned.
func Evaluate(expr string) float64 {
	p := &prefixEvaluator{}
	// a permissive scan never fails
	_ = p.scan(expr)
	return p.bottom()
}

// EvaluateStrict is like Evaluate but rejects malformed input.
// The returned error wraps one of the Err* values of this package.
func EvaluateStrict(expr string) (float64, error) {
	p := &prefixEvaluator{strict: true}
	if err := p.scan(expr); err != nil {
		return 0, err
	}

	return p.result()
}

// prefixEvaluator scans a prefix expression from right to left, evaluating as it goes.
// This is not thread-safe and should only be accessed by a single goroutine.
type prefixEvaluator struct {
	stack  []float64
	strict bool
}

func (p *prefixEvaluator) scan(expr string) error {
	for cursor := len(expr) - 1; cursor >= 0; cursor-- {
		c := expr[cursor]

		switch {
		case isDigit(c):
			end := cursor + 1
			// stop on the leftmost digit so the outer loop still sees the character before it
			for cursor > 0 && isDigit(expr[cursor-1]) {
				cursor--
			}

			v, err := strconv.ParseFloat(expr[cursor:end], 64)
			if err != nil && p.strict {
				return errors.Wrapf(ErrNumberOutOfRange, "%s at offset %d", expr[cursor:end], cursor)
			}

			p.pushOperand(v)
		case isOperator(c):
			if err := p.pushOperator(c); err != nil {
				return errors.Wrapf(err, "operator %q at offset %d", c, cursor)
			}
		case isSkippable(c):
		default:
			if p.strict {
				r, size := utf8.DecodeLastRuneInString(expr[:cursor+1])
				return errors.Wrapf(ErrUnsupportedToken, "%q at offset %d", r, cursor+1-size)
			}
		}
	}

	return nil
}

func (p *prefixEvaluator) pushOperand(v float64) {
	p.stack = append(p.stack, v)
}

func (p *prefixEvaluator) pop() (float64, error) {
	if len(p.stack) == 0 {
		if p.strict {
			return 0, ErrMalformedExpression
		}
		return math.NaN(), nil
	}

	v := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return v, nil
}

func (p *prefixEvaluator) pushOperator(op byte) error {
	fn, ok := operators[op]
	if !ok {
		return errors.Wrapf(ErrUnsupportedToken, "operator %q", op)
	}

	// scanning backwards means the most recently pushed value is the left operand
	left, err := p.pop()
	if err != nil {
		return err
	}

	right, err := p.pop()
	if err != nil {
		return err
	}

	p.pushOperand(fn(left, right))
	return nil
}

func (p *prefixEvaluator) bottom() float64 {
	if len(p.stack) == 0 {
		return math.NaN()
	}

	return p.stack[0]
}

func (p *prefixEvaluator) result() (float64, error) {
	switch len(p.stack) {
	case 0:
		return 0, ErrEmptyExpression
	case 1:
		return p.stack[0], nil
	default:
		return 0, errors.Wrapf(ErrTrailingOperands, "%d values left", len(p.stack))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOperator(c byte) bool {
	_, ok := operators[c]
	return ok
}

func isSkippable(c byte) bool {
	switch c {
	case '(', ')', ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
