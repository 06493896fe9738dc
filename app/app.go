// Package app holds the application logic that depends on an external arithmetic service.
// The service is reached only through calculator.Calculator, so unit tests inject a double
// and the real program injects calculator.External.
package app

import "github.com/toejough/calcdouble/calculator"

// Application runs business logic against whichever Calculator it was built with.
type Application struct {
	calc calculator.Calculator
}

// NewApplication returns an Application that owns calc.
func NewApplication(calc calculator.Calculator) *Application {
	return &Application{calc: calc}
}

// CoolAlgorithm is an important bit of application logic.
// It adds 0, subtracts 0, multiplies by 1 and divides by 1, in that order,
// so with a correct calculator it returns x unchanged.
func (a *Application) CoolAlgorithm(x int) int {
	output := a.calc.Add(x, 0)
	output = a.calc.Subtract(output, 0)
	output = a.calc.Multiply(output, 1)
	output = a.calc.Divide(output, 1)

	return output
}
