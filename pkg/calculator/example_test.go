package calculator_test

import (
	"fmt"

	"github.com/charithe/prefixcalc/pkg/calculator"
	"github.com/pkg/errors"
)

func ExampleEvaluate() {
	fmt.Println(calculator.Evaluate("+ 15 2"))
	fmt.Println(calculator.Evaluate("(+ 3 (* 3 2))"))
	fmt.Println(calculator.Evaluate("+ 3 * 3 2"))
	fmt.Println(calculator.Evaluate("+ * 3 3 2"))
	fmt.Println(calculator.Evaluate("/ 1 2"))
	fmt.Println(calculator.Evaluate("+ 1"))

	// Output:
	// 17
	// 9
	// 9
	// 11
	// 0.5
	// NaN
}

func ExampleEvaluateStrict() {
	_, err := calculator.EvaluateStrict("+ 1 2 3")
	fmt.Println(errors.Cause(err) == calculator.ErrTrailingOperands)

	_, err = calculator.EvaluateStrict("+ 1.5 2")
	fmt.Println(err)

	// Output:
	// true
	// '.' at offset 3: unsupported token
}
