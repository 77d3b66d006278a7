package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugestion/sgc-api/web/entity"
)

func newCalculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewCalculatorController(engine.Group("/api/calculadora"))
	return engine
}

func TestCalculateEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/calcular", gin.H{"operacion": "suma", "a": 5, "b": 3}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.CalcResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 8.0, resp.Resultado)
	assert.Equal(t, "+", resp.OperacionSimbolo)
	assert.Equal(t, "5 + 3", resp.Expresion)
	assert.Equal(t, "5 + 3 = 8", resp.ExpresionCompleta)
}

func TestCalculateMissingParams(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/calcular", gin.H{"operacion": "suma", "a": 5}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "son requeridos")
}

func TestCalculateNonNumericParams(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/calcular", gin.H{"operacion": "suma", "a": "x", "b": 3}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "números válidos")
}

func TestCalculateInvalidOperation(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/calcular", gin.H{"operacion": "potencia", "a": 2, "b": 3}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Operación no válida")
}

func TestCalculateDivisionByZeroEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/calcular", gin.H{"operacion": "division", "a": 10, "b": 0}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "División por cero")
}

func TestRoundEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/redondear", gin.H{"numero": 3.14159, "decimales": 3}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.RoundResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3.142, resp.NumeroRedondeado)
	assert.Equal(t, 3, resp.Decimales)

	// Default decimals.
	w = postJSON(engine, "/api/calculadora/redondear", gin.H{"numero": 3.14159}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3.14, resp.NumeroRedondeado)
	assert.Equal(t, 2, resp.Decimales)

	w = postJSON(engine, "/api/calculadora/redondear", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateGradeEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/validar-calificacion", gin.H{"numero": 7.5}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.GradeValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.EsValido)
	assert.Equal(t, "Calificación válida", resp.Mensaje)

	w = postJSON(engine, "/api/calculadora/validar-calificacion", gin.H{"numero": 11}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.EsValido)
	assert.Equal(t, "Calificación debe estar entre 0 y 10", resp.Mensaje)
}

func TestAverageEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/promedio", gin.H{"numeros": []float64{7, 8, 9}}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.AverageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8.0, resp.Promedio)
	assert.Equal(t, 3, resp.Cantidad)

	w = postJSON(engine, "/api/calculadora/promedio", gin.H{"numeros": []float64{}}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no puede estar vacío")

	w = postJSON(engine, "/api/calculadora/promedio", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "debe ser un array")
}

func TestPercentageEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := postJSON(engine, "/api/calculadora/porcentaje", gin.H{"valor": 30, "total": 120}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.PercentageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 25.0, resp.Porcentaje)
	assert.Equal(t, "30 de 120 = 25%", resp.Expresion)

	w = postJSON(engine, "/api/calculadora/porcentaje", gin.H{"valor": 30, "total": 0}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El total no puede ser cero")
}

func TestOperationsEndpoint(t *testing.T) {
	engine := newCalculatorRouter()

	w := getJSON(engine, "/api/calculadora/operaciones", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.OperationsList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Operaciones, 4)
	assert.Len(t, resp.FuncionesAdicionales, 4)
}
