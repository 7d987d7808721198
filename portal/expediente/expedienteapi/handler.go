package expedienteapi

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/udistrital/unidoc_api/pkg/binding"
	"github.com/udistrital/unidoc_api/pkg/iam/auth"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/expediente"
	"github.com/udistrital/unidoc_api/portal/expediente/expedientesrv"
)

// Handlers provides HTTP handlers for applicant file records
type Handlers struct {
	service *expedientesrv.ExpedienteService
}

// NewHandlers creates a new record handlers instance
func NewHandlers(service *expedientesrv.ExpedienteService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// parseFormulario reads the multipart form: every value field becomes a
// campo, the "archivo" part (if present) becomes the attachment. The size
// and MIME checks happen in the schema, not here.
func parseFormulario(c *fiber.Ctx) (map[string]string, *expediente.ArchivoAdjunto, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, expediente.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	campos := make(map[string]string, len(form.Value))
	for nombre, valores := range form.Value {
		if len(valores) > 0 {
			campos[nombre] = valores[0]
		}
	}

	archivos := form.File[expediente.CampoArchivo]
	if len(archivos) == 0 {
		return campos, nil, nil
	}

	header := archivos[0]
	f, err := header.Open()
	if err != nil {
		return nil, nil, expediente.ErrArchivoIlegible().WithCause(err)
	}
	defer f.Close()

	datos, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, expediente.ErrArchivoIlegible().WithCause(err)
	}

	return campos, &expediente.ArchivoAdjunto{
		Nombre:   header.Filename,
		Tamano:   header.Size,
		TipoMIME: header.Header.Get("Content-Type"),
		Datos:    datos,
	}, nil
}

// Crear creates a new record on the applicant's file
// POST /api/expedientes
func (h *Handlers) Crear(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return expediente.ErrRegistroAjeno()
	}

	campos, archivo, err := parseFormulario(c)
	if err != nil {
		return err
	}

	tipo := expediente.TipoRegistro(campos["tipo"])
	delete(campos, "tipo")

	registro, err := h.service.Crear(c.Context(), kernel.AspiranteID(authContext.UserID), expediente.CrearRegistroRequest{
		Tipo:    tipo,
		Campos:  campos,
		Archivo: archivo,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(registro)
}

// Actualizar updates an existing record
// PUT /api/expedientes/:id
func (h *Handlers) Actualizar(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return expediente.ErrRegistroAjeno()
	}

	id := kernel.ExpedienteID(c.Params("id"))
	if id.IsEmpty() {
		return expediente.ErrRegistroNoEncontrado().WithDetail("id", "missing or empty")
	}

	campos, archivo, err := parseFormulario(c)
	if err != nil {
		return err
	}
	delete(campos, "tipo")

	registro, err := h.service.Actualizar(c.Context(), kernel.AspiranteID(authContext.UserID), id, expediente.ActualizarRegistroRequest{
		Campos:  campos,
		Archivo: archivo,
	})
	if err != nil {
		return err
	}

	return c.JSON(registro)
}

// ListarPropios returns the authenticated applicant's records
// GET /api/expedientes
func (h *Handlers) ListarPropios(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return expediente.ErrRegistroAjeno()
	}

	registros, err := h.service.ListarPropios(c.Context(), kernel.AspiranteID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(registros)
}

// Resumen returns the applicant's record counts
// GET /api/expedientes/resumen
func (h *Handlers) Resumen(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return expediente.ErrRegistroAjeno()
	}

	resumen, err := h.service.Resumen(c.Context(), kernel.AspiranteID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(resumen)
}

// GetRegistro returns one record (owner or HR)
// GET /api/expedientes/:id
func (h *Handlers) GetRegistro(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return expediente.ErrRegistroAjeno()
	}

	id := kernel.ExpedienteID(c.Params("id"))
	if id.IsEmpty() {
		return expediente.ErrRegistroNoEncontrado().WithDetail("id", "missing or empty")
	}

	// HR sees any record; applicants only their own
	propietario := kernel.AspiranteID(authContext.UserID)
	if authContext.Rol == kernel.RolTalentoHumano {
		propietario = ""
	}

	registro, err := h.service.GetRegistro(c.Context(), propietario, id)
	if err != nil {
		return err
	}

	return c.JSON(registro)
}

// Eliminar removes a record
// DELETE /api/expedientes/:id
func (h *Handlers) Eliminar(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return expediente.ErrRegistroAjeno()
	}

	id := kernel.ExpedienteID(c.Params("id"))
	if id.IsEmpty() {
		return expediente.ErrRegistroNoEncontrado().WithDetail("id", "missing or empty")
	}

	if err := h.service.Eliminar(c.Context(), kernel.AspiranteID(authContext.UserID), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Buscar filters the review queue (HR only)
// POST /api/expedientes/buscar
func (h *Handlers) Buscar(c *fiber.Ctx) error {
	var req expediente.ListarRegistrosRequest
	if err := c.BodyParser(&req); err != nil {
		return expediente.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	if req.Pagination.Page < 1 {
		req.Pagination.Page = 1
	}
	if req.Pagination.PageSize < 1 || req.Pagination.PageSize > 100 {
		req.Pagination.PageSize = 20
	}

	registros, err := h.service.Listar(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(registros)
}

// Revisar applies an HR decision to a record
// POST /api/expedientes/:id/revisar
func (h *Handlers) Revisar(c *fiber.Ctx) error {
	id := kernel.ExpedienteID(c.Params("id"))
	if id.IsEmpty() {
		return expediente.ErrRegistroNoEncontrado().WithDetail("id", "missing or empty")
	}

	var req expediente.RevisarRegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return expediente.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}
	if err := binding.Struct(&req); err != nil {
		return expediente.ErrSolicitudInvalida().WithDetail("validate", err.Error())
	}

	registro, err := h.service.Revisar(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(registro)
}

// Miniatura streams the first-page thumbnail of a record's PDF (HR only)
// GET /api/expedientes/:id/miniatura
func (h *Handlers) Miniatura(c *fiber.Ctx) error {
	id := kernel.ExpedienteID(c.Params("id"))
	if id.IsEmpty() {
		return expediente.ErrRegistroNoEncontrado().WithDetail("id", "missing or empty")
	}

	thumb, err := h.service.Miniatura(c.Context(), id)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(thumb)
}

// RegisterRoutes registers all record routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/expedientes")

	// Applicant self-service routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesPropio),
		handlers.Crear,
	)

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesPropio),
		handlers.ListarPropios,
	)

	api.Get("/resumen",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesPropio),
		handlers.Resumen,
	)

	// HR review routes (before :id so the router matches them first)
	api.Post("/buscar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesRevisar),
		handlers.Buscar,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetRegistro,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesPropio),
		handlers.Actualizar,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesPropio),
		handlers.Eliminar,
	)

	api.Post("/:id/revisar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesRevisar),
		handlers.Revisar,
	)

	api.Get("/:id/miniatura",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeExpedientesRevisar),
		handlers.Miniatura,
	)
}
