package aspirante

import (
	"net/http"

	"github.com/udistrital/unidoc_api/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ASPIRANTE")

// Error codes
var (
	CodeAspiranteNoEncontrado  = ErrRegistry.Register("NO_ENCONTRADO", errx.TypeNotFound, http.StatusNotFound, "Aspirante no encontrado")
	CodeAspiranteYaExiste      = ErrRegistry.Register("YA_EXISTE", errx.TypeConflict, http.StatusConflict, "El aspirante ya existe")
	CodeEmailYaRegistrado      = ErrRegistry.Register("EMAIL_YA_REGISTRADO", errx.TypeConflict, http.StatusConflict, "El correo ya está registrado")
	CodeIdentificacionRepetida = ErrRegistry.Register("IDENTIFICACION_REPETIDA", errx.TypeConflict, http.StatusConflict, "El documento ya está registrado")
	CodeIdentificacionInvalida = ErrRegistry.Register("IDENTIFICACION_INVALIDA", errx.TypeValidation, http.StatusBadRequest, "Documento de identidad inválido")
	CodeCredencialesInvalidas  = ErrRegistry.Register("CREDENCIALES_INVALIDAS", errx.TypeAuthorization, http.StatusUnauthorized, "Correo o contraseña incorrectos")
	CodeAspiranteArchivado     = ErrRegistry.Register("ARCHIVADO", errx.TypeBusiness, http.StatusForbidden, "El aspirante está archivado")
	CodeAspiranteNoArchivado   = ErrRegistry.Register("NO_ARCHIVADO", errx.TypeBusiness, http.StatusBadRequest, "El aspirante no está archivado")
	CodeAspiranteYaArchivado   = ErrRegistry.Register("YA_ARCHIVADO", errx.TypeBusiness, http.StatusConflict, "El aspirante ya está archivado")
	CodeAspiranteInactivo      = ErrRegistry.Register("INACTIVO", errx.TypeBusiness, http.StatusForbidden, "El aspirante está inactivo")
	CodePermisosInsuficientes  = ErrRegistry.Register("PERMISOS_INSUFICIENTES", errx.TypeAuthorization, http.StatusForbidden, "Permisos insuficientes")
	CodeSolicitudInvalida      = ErrRegistry.Register("SOLICITUD_INVALIDA", errx.TypeValidation, http.StatusBadRequest, "Datos de la solicitud inválidos")
	CodePasoInvalido           = ErrRegistry.Register("PASO_INVALIDO", errx.TypeBusiness, http.StatusBadRequest, "Paso de registro inválido")
	CodePaginacionInvalida     = ErrRegistry.Register("PAGINACION_INVALIDA", errx.TypeValidation, http.StatusBadRequest, "Parámetros de paginación inválidos")
)

// Helper functions
func ErrAspiranteNoEncontrado() *errx.Error {
	return ErrRegistry.New(CodeAspiranteNoEncontrado)
}

func ErrAspiranteYaExiste() *errx.Error {
	return ErrRegistry.New(CodeAspiranteYaExiste)
}

func ErrEmailYaRegistrado() *errx.Error {
	return ErrRegistry.New(CodeEmailYaRegistrado)
}

func ErrIdentificacionRepetida() *errx.Error {
	return ErrRegistry.New(CodeIdentificacionRepetida)
}

func ErrIdentificacionInvalida() *errx.Error {
	return ErrRegistry.New(CodeIdentificacionInvalida)
}

func ErrCredencialesInvalidas() *errx.Error {
	return ErrRegistry.New(CodeCredencialesInvalidas)
}

func ErrAspiranteArchivado() *errx.Error {
	return ErrRegistry.New(CodeAspiranteArchivado)
}

func ErrAspiranteNoArchivado() *errx.Error {
	return ErrRegistry.New(CodeAspiranteNoArchivado)
}

func ErrAspiranteYaArchivado() *errx.Error {
	return ErrRegistry.New(CodeAspiranteYaArchivado)
}

func ErrAspiranteInactivo() *errx.Error {
	return ErrRegistry.New(CodeAspiranteInactivo)
}

func ErrPermisosInsuficientes() *errx.Error {
	return ErrRegistry.New(CodePermisosInsuficientes)
}

func ErrSolicitudInvalida() *errx.Error {
	return ErrRegistry.New(CodeSolicitudInvalida)
}

func ErrPasoInvalido() *errx.Error {
	return ErrRegistry.New(CodePasoInvalido)
}

func ErrPaginacionInvalida() *errx.Error {
	return ErrRegistry.New(CodePaginacionInvalida)
}
