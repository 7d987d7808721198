package validez

import (
	"net/http"

	"github.com/udistrital/unidoc_api/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("VALIDEZ")

var CodeFormularioInvalido = ErrRegistry.Register("FORMULARIO_INVALIDO", errx.TypeValidation, http.StatusUnprocessableEntity, "El formulario contiene errores")

// Errores asocia cada campo con su mensaje de error. Se conserva el primer
// mensaje por campo para que la UI muestre un solo error en línea.
type Errores map[string]string

// Agregar registra un mensaje para un campo si aún no tiene uno
func (e Errores) Agregar(campo, mensaje string) {
	if _, ok := e[campo]; !ok {
		e[campo] = mensaje
	}
}

// Valido indica si no hay errores
func (e Errores) Valido() bool {
	return len(e) == 0
}

// Mensaje retorna el mensaje asociado a un campo, o cadena vacía
func (e Errores) Mensaje(campo string) string {
	return e[campo]
}

// AError convierte el mapa en un *errx.Error con los campos como detalles.
// Retorna nil cuando el formulario es válido.
func (e Errores) AError() *errx.Error {
	if e.Valido() {
		return nil
	}

	err := ErrRegistry.New(CodeFormularioInvalido)
	for campo, mensaje := range e {
		err = err.WithDetail(campo, mensaje)
	}
	return err
}
