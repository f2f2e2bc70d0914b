package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrValidation    = errors.New("datos inválidos")
	ErrDuplicateCode = errors.New("código duplicado")
	ErrNegativeStock = errors.New("stock negativo")
	ErrPersistence   = errors.New("error de persistencia")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
)

// Mensajes visibles para el usuario.
const (
	MsgProductNotFound    = "Producto no encontrado"
	MsgDuplicateCode      = "Ya existe un producto con ese código"
	MsgDuplicateCodeOther = "Ya existe otro producto con ese código"
	MsgNegativeStock      = "La operación resultaría en stock negativo"
	MsgPersistence        = "Error al acceder al almacenamiento"
)

// Error asocia un mensaje legible a una clase de error (Kind) comparable con errors.Is.
type Error struct {
	Kind    error
	Message string
}

// NewError construye un error de dominio con mensaje para el usuario.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// ValidationError agrupa todas las violaciones de campo detectadas en una sola validación.
// InsufficientStock indica que una de ellas es la falta de stock para una salida.
type ValidationError struct {
	Errors            []string
	InsufficientStock bool
}

func (e *ValidationError) Error() string { return strings.Join(e.Errors, ", ") }

// Is permite errors.Is(err, ErrValidation) y, si aplica, errors.Is(err, ErrNegativeStock).
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return e.InsufficientStock && target == ErrNegativeStock
}

// Message devuelve el texto a mostrar al usuario para cualquier error del dominio.
// Los errores de persistencia se ocultan tras un mensaje genérico.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	if errors.Is(err, ErrPersistence) {
		return MsgPersistence
	}
	return err.Error()
}
