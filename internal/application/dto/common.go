package dto

// Envelope es el sobre de respuesta que espera el frontend legado.
// Éxito: {"status":true,"error":null,"objects":N,"total":M,"data":...}
// (las respuestas de objeto único omiten objects/total). Fracaso:
// {"status":false,"error":"mensaje"}.
type Envelope struct {
	Status  bool        `json:"status"`
	Error   interface{} `json:"error"`
	Objects *int        `json:"objects,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK sobre de éxito para un objeto único.
func OK(data interface{}) Envelope {
	return Envelope{Status: true, Data: data}
}

// Page sobre de éxito para un listado paginado.
func Page(objects, total int, data interface{}) Envelope {
	return Envelope{Status: true, Objects: &objects, Total: &total, Data: data}
}

// Err sobre de error.
func Err(message string) Envelope {
	return Envelope{Status: false, Error: message}
}

// ErrWithData sobre de error que adjunta datos (ej: el turno ya abierto).
func ErrWithData(message string, data interface{}) Envelope {
	return Envelope{Status: false, Error: message, Data: data}
}
