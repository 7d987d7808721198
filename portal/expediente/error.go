package expediente

import (
	"net/http"

	"github.com/udistrital/unidoc_api/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("EXPEDIENTE")

// Error codes
var (
	CodeRegistroNoEncontrado  = ErrRegistry.Register("NO_ENCONTRADO", errx.TypeNotFound, http.StatusNotFound, "Registro no encontrado")
	CodeTipoRegistroInvalido  = ErrRegistry.Register("TIPO_INVALIDO", errx.TypeValidation, http.StatusBadRequest, "Tipo de registro inválido")
	CodeRegistroNoEditable    = ErrRegistry.Register("NO_EDITABLE", errx.TypeBusiness, http.StatusConflict, "El registro ya fue aprobado y no puede modificarse")
	CodeRegistroYaRevisado    = ErrRegistry.Register("YA_REVISADO", errx.TypeBusiness, http.StatusConflict, "El registro ya fue revisado")
	CodeRegistroAjeno         = ErrRegistry.Register("AJENO", errx.TypeAuthorization, http.StatusForbidden, "El registro pertenece a otro aspirante")
	CodeArchivoRequerido      = ErrRegistry.Register("ARCHIVO_REQUERIDO", errx.TypeValidation, http.StatusBadRequest, "Debe adjuntar un archivo")
	CodeArchivoIlegible       = ErrRegistry.Register("ARCHIVO_ILEGIBLE", errx.TypeValidation, http.StatusBadRequest, "El archivo adjunto no se pudo leer")
	CodeSolicitudInvalida     = ErrRegistry.Register("SOLICITUD_INVALIDA", errx.TypeValidation, http.StatusBadRequest, "Datos de la solicitud inválidos")
	CodeObservacionRequerida  = ErrRegistry.Register("OBSERVACION_REQUERIDA", errx.TypeValidation, http.StatusBadRequest, "La revisión requiere una observación")
	CodeAlmacenamientoFallido = ErrRegistry.Register("ALMACENAMIENTO_FALLIDO", errx.TypeExternal, http.StatusBadGateway, "No se pudo guardar el archivo adjunto")
)

// Helper functions
func ErrRegistroNoEncontrado() *errx.Error {
	return ErrRegistry.New(CodeRegistroNoEncontrado)
}

func ErrTipoRegistroInvalido() *errx.Error {
	return ErrRegistry.New(CodeTipoRegistroInvalido)
}

func ErrRegistroNoEditable() *errx.Error {
	return ErrRegistry.New(CodeRegistroNoEditable)
}

func ErrRegistroYaRevisado() *errx.Error {
	return ErrRegistry.New(CodeRegistroYaRevisado)
}

func ErrRegistroAjeno() *errx.Error {
	return ErrRegistry.New(CodeRegistroAjeno)
}

func ErrArchivoRequerido() *errx.Error {
	return ErrRegistry.New(CodeArchivoRequerido)
}

func ErrArchivoIlegible() *errx.Error {
	return ErrRegistry.New(CodeArchivoIlegible)
}

func ErrSolicitudInvalida() *errx.Error {
	return ErrRegistry.New(CodeSolicitudInvalida)
}

func ErrObservacionRequerida() *errx.Error {
	return ErrRegistry.New(CodeObservacionRequerida)
}

func ErrAlmacenamientoFallido() *errx.Error {
	return ErrRegistry.New(CodeAlmacenamientoFallido)
}
