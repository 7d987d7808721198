// Package binding valida DTOs de petición por etiquetas `validate` antes de
// que el esquema de dominio procese el formulario.
package binding

import "github.com/go-playground/validator/v10"

// Validator envuelve go-playground/validator para inyección y pruebas
type Validator struct {
	v *validator.Validate
}

// New crea un Validator
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct valida un struct según sus etiquetas
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var valida un valor suelto contra una etiqueta
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registra una regla propia
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

var std = New()

// Struct valida un struct con el validador por defecto
func Struct(s any) error {
	return std.Struct(s)
}
