package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	service := CalculatorService{}

	cases := []struct {
		operation string
		a, b      float64
		result    float64
		symbol    string
	}{
		{OpSuma, 5, 3, 8, "+"},
		{OpResta, 10, 4, 6, "-"},
		{OpMultiplicacion, 6, 7, 42, "×"},
		{OpDivision, 15, 3, 5, "÷"},
		{OpSuma, 0.1, 0.2, 0.3, "+"},
		{OpDivision, 10, 3, 3.33, "÷"},
	}

	for _, tc := range cases {
		result, symbol, err := service.Calculate(tc.operation, tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.result, result)
		assert.Equal(t, tc.symbol, symbol)
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	service := CalculatorService{}

	_, _, err := service.Calculate(OpDivision, 10, 0)
	require.Error(t, err)
	assert.Equal(t, "División por cero no está permitida", err.Error())
}

func TestCalculateUnknownOperation(t *testing.T) {
	service := CalculatorService{}

	_, _, err := service.Calculate("potencia", 2, 3)
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	service := CalculatorService{}

	assert.Equal(t, 3.14, service.Round(3.14159, 2))
	assert.Equal(t, 3.142, service.Round(3.14159, 3))
	assert.Equal(t, 3.0, service.Round(3.004, 0))
	assert.Equal(t, -2.5, service.Round(-2.499, 1))
}

func TestIsValidGrade(t *testing.T) {
	service := CalculatorService{}

	assert.True(t, service.IsValidGrade(0))
	assert.True(t, service.IsValidGrade(7.5))
	assert.True(t, service.IsValidGrade(10))
	assert.False(t, service.IsValidGrade(-0.1))
	assert.False(t, service.IsValidGrade(10.1))
}

func TestAverage(t *testing.T) {
	service := CalculatorService{}

	average, err := service.Average([]float64{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 8.0, average)

	average, err = service.Average([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.5, average)

	_, err = service.Average(nil)
	assert.Error(t, err)
}

func TestPercentage(t *testing.T) {
	service := CalculatorService{}

	percentage, err := service.Percentage(30, 120)
	require.NoError(t, err)
	assert.Equal(t, 25.0, percentage)

	_, err = service.Percentage(30, 0)
	require.Error(t, err)
	assert.Equal(t, "El total no puede ser cero", err.Error())
}
