package contratacionapi

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/udistrital/unidoc_api/pkg/binding"
	"github.com/udistrital/unidoc_api/pkg/iam/auth"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/contratacion"
	"github.com/udistrital/unidoc_api/portal/contratacion/contratacionsrv"
)

// Handlers provides HTTP handlers for contract operations
type Handlers struct {
	service *contratacionsrv.ContratacionService
}

// NewHandlers creates a new contract handlers instance
func NewHandlers(service *contratacionsrv.ContratacionService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Crear issues a new contract
// POST /api/contrataciones
func (h *Handlers) Crear(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return contratacion.ErrSolicitudInvalida()
	}

	var req contratacion.CrearContratacionRequest
	if err := c.BodyParser(&req); err != nil {
		return contratacion.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}
	if err := binding.Struct(&req); err != nil {
		return contratacion.ErrSolicitudInvalida().WithDetail("validate", err.Error())
	}

	contrato, err := h.service.Crear(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contrato)
}

// Actualizar updates a contract in force
// PUT /api/contrataciones/:id
func (h *Handlers) Actualizar(c *fiber.Ctx) error {
	id := kernel.ContratacionID(c.Params("id"))
	if id.IsEmpty() {
		return contratacion.ErrContratoNoEncontrado().WithDetail("id", "missing or empty")
	}

	var req contratacion.ActualizarContratacionRequest
	if err := c.BodyParser(&req); err != nil {
		return contratacion.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	contrato, err := h.service.Actualizar(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(contrato)
}

// GetContratacion returns one contract by ID
// GET /api/contrataciones/:id
func (h *Handlers) GetContratacion(c *fiber.Ctx) error {
	id := kernel.ContratacionID(c.Params("id"))
	if id.IsEmpty() {
		return contratacion.ErrContratoNoEncontrado().WithDetail("id", "missing or empty")
	}

	contrato, err := h.service.GetContratacion(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(contrato)
}

// Listar filters contracts for HR
// POST /api/contrataciones/buscar
func (h *Handlers) Listar(c *fiber.Ctx) error {
	var req contratacion.ListarContratacionesRequest
	if err := c.BodyParser(&req); err != nil {
		return contratacion.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
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

// ListarPropios returns the authenticated applicant's own contracts
// GET /api/contrataciones/propias
func (h *Handlers) ListarPropios(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return contratacion.ErrSolicitudInvalida()
	}

	contratos, err := h.service.ListarPorAspirante(c.Context(), kernel.AspiranteID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(contratos)
}

// Terminar closes a contract
// POST /api/contrataciones/:id/terminar
func (h *Handlers) Terminar(c *fiber.Ctx) error {
	return h.aplicarTransicion(c, h.service.Terminar)
}

// Anular voids a contract
// POST /api/contrataciones/:id/anular
func (h *Handlers) Anular(c *fiber.Ctx) error {
	return h.aplicarTransicion(c, h.service.Anular)
}

func (h *Handlers) aplicarTransicion(c *fiber.Ctx, op func(context.Context, kernel.ContratacionID) (*contratacion.ContratacionResponse, error)) error {
	id := kernel.ContratacionID(c.Params("id"))
	if id.IsEmpty() {
		return contratacion.ErrContratoNoEncontrado().WithDetail("id", "missing or empty")
	}

	contrato, err := op(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(contrato)
}

// RegisterRoutes registers all contract routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/contrataciones")

	// Applicant's own contracts
	api.Get("/propias",
		authMiddleware.Authenticate(),
		handlers.ListarPropios,
	)

	// HR management routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeContratacionesWrite),
		handlers.Crear,
	)

	api.Post("/buscar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeContratacionesRead),
		handlers.Listar,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeContratacionesRead),
		handlers.GetContratacion,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeContratacionesWrite),
		handlers.Actualizar,
	)

	api.Post("/:id/terminar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeContratacionesWrite),
		handlers.Terminar,
	)

	api.Post("/:id/anular",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeContratacionesWrite),
		handlers.Anular,
	)
}
