package convocatoria

import (
	"net/http"

	"github.com/udistrital/unidoc_api/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CONVOCATORIA")

// Error codes
var (
	CodeConvocatoriaNoEncontrada = ErrRegistry.Register("NO_ENCONTRADA", errx.TypeNotFound, http.StatusNotFound, "Convocatoria no encontrada")
	CodeTransicionInvalida       = ErrRegistry.Register("TRANSICION_INVALIDA", errx.TypeBusiness, http.StatusConflict, "Transición de estado inválida")
	CodeConvocatoriaNoEditable   = ErrRegistry.Register("NO_EDITABLE", errx.TypeBusiness, http.StatusConflict, "La convocatoria finalizada no puede modificarse")
	CodeConvocatoriaCerrada      = ErrRegistry.Register("CERRADA", errx.TypeBusiness, http.StatusConflict, "La convocatoria no admite postulaciones")
	CodeSolicitudInvalida        = ErrRegistry.Register("SOLICITUD_INVALIDA", errx.TypeValidation, http.StatusBadRequest, "Datos de la solicitud inválidos")
	CodeAlmacenamientoFallido    = ErrRegistry.Register("ALMACENAMIENTO_FALLIDO", errx.TypeExternal, http.StatusBadGateway, "No se pudo guardar el archivo adjunto")
)

// Helper functions
func ErrConvocatoriaNoEncontrada() *errx.Error {
	return ErrRegistry.New(CodeConvocatoriaNoEncontrada)
}

func ErrTransicionInvalida() *errx.Error {
	return ErrRegistry.New(CodeTransicionInvalida)
}

func ErrConvocatoriaNoEditable() *errx.Error {
	return ErrRegistry.New(CodeConvocatoriaNoEditable)
}

func ErrConvocatoriaCerrada() *errx.Error {
	return ErrRegistry.New(CodeConvocatoriaCerrada)
}

func ErrSolicitudInvalida() *errx.Error {
	return ErrRegistry.New(CodeSolicitudInvalida)
}

func ErrAlmacenamientoFallido() *errx.Error {
	return ErrRegistry.New(CodeAlmacenamientoFallido)
}
