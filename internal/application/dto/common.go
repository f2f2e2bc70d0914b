package dto

// ErrorResponse cuerpo de error HTTP. Mantiene la forma uniforme {success:false, message}.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"` // violaciones de campo, si las hay
}

// Result respuesta uniforme de las operaciones que modifican estado sin devolver entidad.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationResult salida de una validación: todos los errores encontrados, no solo el primero.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ListResponse listado genérico con total.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye un ListResponse asegurando Items no nulo.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
