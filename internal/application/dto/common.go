package dto

import "time"

// ErrorResponse cuerpo de error HTTP. Todos los errores de la API tienen la forma {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensajeResponse cuerpo de confirmación sin datos (ej. borrado de producto).
type MensajeResponse struct {
	Message string `json:"message"`
}

// TestResponse respuesta del probe de conectividad GET /api/test.
type TestResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	DBStatus  string    `json:"db_status"`
	Timestamp time.Time `json:"timestamp"`
}
