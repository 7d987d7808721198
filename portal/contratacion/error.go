package contratacion

import (
	"net/http"

	"github.com/udistrital/unidoc_api/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CONTRATACION")

// Error codes
var (
	CodeContratoNoEncontrado = ErrRegistry.Register("NO_ENCONTRADO", errx.TypeNotFound, http.StatusNotFound, "Contrato no encontrado")
	CodeContratoNoVigente    = ErrRegistry.Register("NO_VIGENTE", errx.TypeBusiness, http.StatusConflict, "El contrato no está vigente")
	CodeSolicitudInvalida    = ErrRegistry.Register("SOLICITUD_INVALIDA", errx.TypeValidation, http.StatusBadRequest, "Datos de la solicitud inválidos")
)

// Helper functions
func ErrContratoNoEncontrado() *errx.Error {
	return ErrRegistry.New(CodeContratoNoEncontrado)
}

func ErrContratoNoVigente() *errx.Error {
	return ErrRegistry.New(CodeContratoNoVigente)
}

func ErrSolicitudInvalida() *errx.Error {
	return ErrRegistry.New(CodeSolicitudInvalida)
}
