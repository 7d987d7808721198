package convocatoriaapi

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/udistrital/unidoc_api/pkg/iam/auth"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/convocatoria"
	"github.com/udistrital/unidoc_api/portal/convocatoria/convocatoriasrv"
)

// Handlers provides HTTP handlers for job posting operations
type Handlers struct {
	service *convocatoriasrv.ConvocatoriaService
}

// NewHandlers creates a new posting handlers instance
func NewHandlers(service *convocatoriasrv.ConvocatoriaService) *Handlers {
	return &Handlers{
		service: service,
	}
}

func parseFormulario(c *fiber.Ctx) (map[string]string, *convocatoria.ArchivoAdjunto, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, convocatoria.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	campos := make(map[string]string, len(form.Value))
	for nombre, valores := range form.Value {
		if len(valores) > 0 {
			campos[nombre] = valores[0]
		}
	}

	archivos := form.File[convocatoria.CampoArchivo]
	if len(archivos) == 0 {
		return campos, nil, nil
	}

	header := archivos[0]
	f, err := header.Open()
	if err != nil {
		return nil, nil, convocatoria.ErrSolicitudInvalida().WithDetail("archivo", err.Error())
	}
	defer f.Close()

	datos, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, convocatoria.ErrSolicitudInvalida().WithDetail("archivo", err.Error())
	}

	return campos, &convocatoria.ArchivoAdjunto{
		Nombre:   header.Filename,
		Tamano:   header.Size,
		TipoMIME: header.Header.Get("Content-Type"),
		Datos:    datos,
	}, nil
}

// Crear creates a new posting
// POST /api/convocatorias
func (h *Handlers) Crear(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return convocatoria.ErrSolicitudInvalida()
	}

	campos, archivo, err := parseFormulario(c)
	if err != nil {
		return err
	}

	nueva, err := h.service.Crear(c.Context(), authContext.UserID, convocatoria.CrearConvocatoriaRequest{
		Campos:  campos,
		Archivo: archivo,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(nueva)
}

// Actualizar updates an existing posting
// PUT /api/convocatorias/:id
func (h *Handlers) Actualizar(c *fiber.Ctx) error {
	id := kernel.ConvocatoriaID(c.Params("id"))
	if id.IsEmpty() {
		return convocatoria.ErrConvocatoriaNoEncontrada().WithDetail("id", "missing or empty")
	}

	campos, archivo, err := parseFormulario(c)
	if err != nil {
		return err
	}

	actual, err := h.service.Actualizar(c.Context(), id, convocatoria.ActualizarConvocatoriaRequest{
		Campos:  campos,
		Archivo: archivo,
	})
	if err != nil {
		return err
	}

	return c.JSON(actual)
}

// ListarAbiertas returns the public board of open postings
// GET /api/convocatorias/abiertas
func (h *Handlers) ListarAbiertas(c *fiber.Ctx) error {
	items, err := h.service.ListarAbiertas(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// GetConvocatoria returns one posting by ID
// GET /api/convocatorias/:id
func (h *Handlers) GetConvocatoria(c *fiber.Ctx) error {
	id := kernel.ConvocatoriaID(c.Params("id"))
	if id.IsEmpty() {
		return convocatoria.ErrConvocatoriaNoEncontrada().WithDetail("id", "missing or empty")
	}

	actual, err := h.service.GetConvocatoria(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(actual)
}

// Listar filters postings for HR
// POST /api/convocatorias/buscar
func (h *Handlers) Listar(c *fiber.Ctx) error {
	var req convocatoria.ListarConvocatoriasRequest
	if err := c.BodyParser(&req); err != nil {
		return convocatoria.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	if req.Pagination.Page < 1 {
		req.Pagination.Page = 1
	}
	if req.Pagination.PageSize < 1 || req.Pagination.PageSize > 100 {
		req.Pagination.PageSize = 20
	}

	page, err := h.service.Listar(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Cerrar closes a posting
// POST /api/convocatorias/:id/cerrar
func (h *Handlers) Cerrar(c *fiber.Ctx) error {
	return h.aplicarTransicion(c, h.service.Cerrar)
}

// Reabrir reopens a closed posting
// POST /api/convocatorias/:id/reabrir
func (h *Handlers) Reabrir(c *fiber.Ctx) error {
	return h.aplicarTransicion(c, h.service.Reabrir)
}

// Finalizar ends a posting's selection process
// POST /api/convocatorias/:id/finalizar
func (h *Handlers) Finalizar(c *fiber.Ctx) error {
	return h.aplicarTransicion(c, h.service.Finalizar)
}

// Eliminar removes a posting
// DELETE /api/convocatorias/:id
func (h *Handlers) Eliminar(c *fiber.Ctx) error {
	id := kernel.ConvocatoriaID(c.Params("id"))
	if id.IsEmpty() {
		return convocatoria.ErrConvocatoriaNoEncontrada().WithDetail("id", "missing or empty")
	}

	if err := h.service.Eliminar(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) aplicarTransicion(c *fiber.Ctx, op func(context.Context, kernel.ConvocatoriaID) (*convocatoria.ConvocatoriaResponse, error)) error {
	id := kernel.ConvocatoriaID(c.Params("id"))
	if id.IsEmpty() {
		return convocatoria.ErrConvocatoriaNoEncontrada().WithDetail("id", "missing or empty")
	}

	actual, err := op(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(actual)
}

// RegisterRoutes registers all posting routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/convocatorias")

	// Public board, no authentication
	api.Get("/abiertas", handlers.ListarAbiertas)

	// HR management routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasWrite),
		handlers.Crear,
	)

	api.Post("/buscar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasRead),
		handlers.Listar,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasRead),
		handlers.GetConvocatoria,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasWrite),
		handlers.Actualizar,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasDelete),
		handlers.Eliminar,
	)

	api.Post("/:id/cerrar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasCerrar),
		handlers.Cerrar,
	)

	api.Post("/:id/reabrir",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasCerrar),
		handlers.Reabrir,
	)

	api.Post("/:id/finalizar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeConvocatoriasCerrar),
		handlers.Finalizar,
	)
}
