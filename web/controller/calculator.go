package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edugestion/sgc-api/web/entity"
	"github.com/edugestion/sgc-api/web/service"
)

// CalcForm represents a basic arithmetic request. Pointers distinguish a
// missing field from an explicit zero.
type CalcForm struct {
	Operacion string   `json:"operacion"`
	A         *float64 `json:"a"`
	B         *float64 `json:"b"`
}

// RoundForm represents a rounding request.
type RoundForm struct {
	Numero    *float64 `json:"numero"`
	Decimales *int     `json:"decimales"`
}

// GradeForm represents a grade validation request.
type GradeForm struct {
	Numero *float64 `json:"numero"`
}

// AverageForm represents an average request.
type AverageForm struct {
	Numeros []float64 `json:"numeros"`
}

// PercentageForm represents a percentage request.
type PercentageForm struct {
	Valor *float64 `json:"valor"`
	Total *float64 `json:"total"`
}

// CalculatorController handles the stateless grading calculator routes.
type CalculatorController struct {
	calculatorService service.CalculatorService
}

// NewCalculatorController creates a CalculatorController and registers its
// routes on g.
func NewCalculatorController(g *gin.RouterGroup) *CalculatorController {
	a := &CalculatorController{}
	a.initRouter(g)
	return a
}

func (a *CalculatorController) initRouter(g *gin.RouterGroup) {
	g.POST("/calcular", a.calculate)
	g.POST("/redondear", a.round)
	g.POST("/validar-calificacion", a.validateGrade)
	g.POST("/promedio", a.average)
	g.POST("/porcentaje", a.percentage)
	g.GET("/operaciones", a.operations)
}

// calculate applies one of the four basic operations.
func (a *CalculatorController) calculate(c *gin.Context) {
	var form CalcForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Los parámetros deben ser números válidos")
		return
	}
	if form.A == nil || form.B == nil {
		jsonError(c, http.StatusBadRequest, "Los parámetros \"a\" y \"b\" son requeridos")
		return
	}

	resultado, simbolo, err := a.calculatorService.Calculate(form.Operacion, *form.A, *form.B)
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	expresion := fmt.Sprintf("%v %s %v", *form.A, simbolo, *form.B)
	c.JSON(http.StatusOK, entity.CalcResult{
		Success:           true,
		Resultado:         resultado,
		Operacion:         form.Operacion,
		OperacionSimbolo:  simbolo,
		Expresion:         expresion,
		ExpresionCompleta: fmt.Sprintf("%s = %v", expresion, resultado),
		Timestamp:         time.Now().Format(time.RFC3339),
	})
}

// round rounds a number to the requested decimals (default 2).
func (a *CalculatorController) round(c *gin.Context) {
	var form RoundForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "El parámetro debe ser un número válido")
		return
	}
	if form.Numero == nil {
		jsonError(c, http.StatusBadRequest, "El parámetro \"numero\" es requerido")
		return
	}

	decimales := 2
	if form.Decimales != nil {
		decimales = *form.Decimales
	}

	c.JSON(http.StatusOK, entity.RoundResult{
		Success:          true,
		NumeroOriginal:   *form.Numero,
		NumeroRedondeado: a.calculatorService.Round(*form.Numero, decimales),
		Decimales:        decimales,
		Timestamp:        time.Now().Format(time.RFC3339),
	})
}

// validateGrade checks whether a number is a valid 0..10 grade.
func (a *CalculatorController) validateGrade(c *gin.Context) {
	var form GradeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "El parámetro debe ser un número válido")
		return
	}
	if form.Numero == nil {
		jsonError(c, http.StatusBadRequest, "El parámetro \"numero\" es requerido")
		return
	}

	esValido := a.calculatorService.IsValidGrade(*form.Numero)
	mensaje := "Calificación válida"
	if !esValido {
		mensaje = "Calificación debe estar entre 0 y 10"
	}

	c.JSON(http.StatusOK, entity.GradeValidationResult{
		Success:   true,
		Numero:    *form.Numero,
		EsValido:  esValido,
		Mensaje:   mensaje,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// average computes the average of a non-empty number list.
func (a *CalculatorController) average(c *gin.Context) {
	var form AverageForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Numeros == nil {
		jsonError(c, http.StatusBadRequest, "El parámetro \"numeros\" debe ser un array")
		return
	}
	if len(form.Numeros) == 0 {
		jsonError(c, http.StatusBadRequest, "El array de números no puede estar vacío")
		return
	}

	promedio, err := a.calculatorService.Average(form.Numeros)
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, entity.AverageResult{
		Success:   true,
		Numeros:   form.Numeros,
		Promedio:  promedio,
		Cantidad:  len(form.Numeros),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// percentage computes which percentage valor is of total.
func (a *CalculatorController) percentage(c *gin.Context) {
	var form PercentageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Los parámetros deben ser números válidos")
		return
	}
	if form.Valor == nil || form.Total == nil {
		jsonError(c, http.StatusBadRequest, "Los parámetros \"valor\" y \"total\" son requeridos")
		return
	}

	porcentaje, err := a.calculatorService.Percentage(*form.Valor, *form.Total)
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, entity.PercentageResult{
		Success:    true,
		Valor:      *form.Valor,
		Total:      *form.Total,
		Porcentaje: porcentaje,
		Expresion:  fmt.Sprintf("%v de %v = %v%%", *form.Valor, *form.Total, porcentaje),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

// operations lists the available calculator operations.
func (a *CalculatorController) operations(c *gin.Context) {
	c.JSON(http.StatusOK, entity.OperationsList{
		Success: true,
		Operaciones: []entity.OperationInfo{
			{Nombre: "suma", Simbolo: "+", Descripcion: "Suma dos números", Ejemplo: gin.H{"a": 5, "b": 3, "resultado": 8}},
			{Nombre: "resta", Simbolo: "-", Descripcion: "Resta dos números", Ejemplo: gin.H{"a": 10, "b": 4, "resultado": 6}},
			{Nombre: "multiplicacion", Simbolo: "×", Descripcion: "Multiplica dos números", Ejemplo: gin.H{"a": 6, "b": 7, "resultado": 42}},
			{Nombre: "division", Simbolo: "÷", Descripcion: "Divide dos números", Ejemplo: gin.H{"a": 15, "b": 3, "resultado": 5}},
		},
		FuncionesAdicionales: []entity.OperationInfo{
			{Nombre: "redondear", Descripcion: "Redondea un número a decimales específicos", Endpoint: "POST /api/calculadora/redondear"},
			{Nombre: "validar-calificacion", Descripcion: "Valida si un número está en el rango 0-10", Endpoint: "POST /api/calculadora/validar-calificacion"},
			{Nombre: "promedio", Descripcion: "Calcula el promedio de un array de números", Endpoint: "POST /api/calculadora/promedio"},
			{Nombre: "porcentaje", Descripcion: "Calcula el porcentaje de un valor sobre un total", Endpoint: "POST /api/calculadora/porcentaje"},
		},
	})
}
