package service

import (
	"math"

	"github.com/edugestion/sgc-api/util/common"
)

// Operation names accepted by the calculator.
const (
	OpSuma           = "suma"
	OpResta          = "resta"
	OpMultiplicacion = "multiplicacion"
	OpDivision       = "division"
)

// CalculatorService implements the stateless grading arithmetic utilities.
// Every result is rounded to two decimals.
type CalculatorService struct{}

// Calculate applies the named operation to a and b and returns the rounded
// result with the operation's display symbol.
func (s CalculatorService) Calculate(operation string, a, b float64) (float64, string, error) {
	switch operation {
	case OpSuma:
		return s.Round(a+b, 2), "+", nil
	case OpResta:
		return s.Round(a-b, 2), "-", nil
	case OpMultiplicacion:
		return s.Round(a*b, 2), "×", nil
	case OpDivision:
		if b == 0 {
			return 0, "÷", common.NewErrorf("División por cero no está permitida")
		}
		return s.Round(a/b, 2), "÷", nil
	default:
		return 0, "", common.NewErrorf("Operación no válida. Operaciones permitidas: suma, resta, multiplicacion, division")
	}
}

// Round rounds a number to the given number of decimals.
func (s CalculatorService) Round(number float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(number*factor) / factor
}

// IsValidGrade reports whether a number is a grade in the 0..10 range.
func (s CalculatorService) IsValidGrade(number float64) bool {
	return !math.IsNaN(number) && number >= 0 && number <= 10
}

// Average computes the rounded average of a non-empty number list.
func (s CalculatorService) Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, common.NewErrorf("Se requiere un array no vacío de números")
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return s.Round(sum/float64(len(numbers)), 2), nil
}

// Percentage computes which rounded percentage value is of total.
func (s CalculatorService) Percentage(value, total float64) (float64, error) {
	if total == 0 {
		return 0, common.NewErrorf("El total no puede ser cero")
	}
	return s.Round(value/total*100, 2), nil
}
