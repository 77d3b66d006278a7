package entity

// CalcResult is the response of a basic arithmetic operation.
type CalcResult struct {
	Success           bool    `json:"success"`
	Resultado         float64 `json:"resultado"`
	Operacion         string  `json:"operacion"`
	OperacionSimbolo  string  `json:"operacionSimbolo"`
	Expresion         string  `json:"expresion"`
	ExpresionCompleta string  `json:"expresionCompleta"`
	Timestamp         string  `json:"timestamp"`
}

// RoundResult is the response of the rounding endpoint.
type RoundResult struct {
	Success          bool    `json:"success"`
	NumeroOriginal   float64 `json:"numeroOriginal"`
	NumeroRedondeado float64 `json:"numeroRedondeado"`
	Decimales        int     `json:"decimales"`
	Timestamp        string  `json:"timestamp"`
}

// GradeValidationResult is the response of the grade validation endpoint.
type GradeValidationResult struct {
	Success   bool    `json:"success"`
	Numero    float64 `json:"numero"`
	EsValido  bool    `json:"esValido"`
	Mensaje   string  `json:"mensaje"`
	Timestamp string  `json:"timestamp"`
}

// AverageResult is the response of the average endpoint.
type AverageResult struct {
	Success   bool      `json:"success"`
	Numeros   []float64 `json:"numeros"`
	Promedio  float64   `json:"promedio"`
	Cantidad  int       `json:"cantidad"`
	Timestamp string    `json:"timestamp"`
}

// PercentageResult is the response of the percentage endpoint.
type PercentageResult struct {
	Success    bool    `json:"success"`
	Valor      float64 `json:"valor"`
	Total      float64 `json:"total"`
	Porcentaje float64 `json:"porcentaje"`
	Expresion  string  `json:"expresion"`
	Timestamp  string  `json:"timestamp"`
}

// OperationInfo describes one available calculator operation.
type OperationInfo struct {
	Nombre      string `json:"nombre"`
	Simbolo     string `json:"simbolo,omitempty"`
	Descripcion string `json:"descripcion"`
	Ejemplo     any    `json:"ejemplo,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"`
}

// OperationsList is the response of the operations listing endpoint.
type OperationsList struct {
	Success              bool            `json:"success"`
	Operaciones          []OperationInfo `json:"operaciones"`
	FuncionesAdicionales []OperationInfo `json:"funcionesAdicionales"`
}
