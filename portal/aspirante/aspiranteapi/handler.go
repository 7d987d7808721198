package aspiranteapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/udistrital/unidoc_api/pkg/binding"
	"github.com/udistrital/unidoc_api/pkg/iam/auth"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/pkg/validez"
	"github.com/udistrital/unidoc_api/portal/aspirante"
	"github.com/udistrital/unidoc_api/portal/aspirante/aspirantesrv"
)

// Handlers provides HTTP handlers for applicant account operations
type Handlers struct {
	service *aspirantesrv.AspiranteService
}

// NewHandlers creates a new applicant handlers instance
func NewHandlers(service *aspirantesrv.AspiranteService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Registrar creates a new applicant account from the full registration form
// POST /api/registro
func (h *Handlers) Registrar(c *fiber.Ctx) error {
	var req aspirante.RegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	cuenta, err := h.service.Registrar(c.Context(), req.Campos, kernel.RolAspirante)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    cuenta.ID,
		"email": cuenta.Email,
	})
}

// ValidarPaso validates one wizard step without persisting anything.
// The frontend calls this to gate the "Siguiente" button; an invalid step
// returns per-field messages inline, a valid one returns the fields of the
// next step so the form can render ahead.
// POST /api/registro/paso
func (h *Handlers) ValidarPaso(c *fiber.Ctx) error {
	var req aspirante.AvanzarPasoRequest
	if err := c.BodyParser(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}
	if err := binding.Struct(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("validate", err.Error())
	}

	if req.Paso < 1 || req.Paso > aspirante.TotalPasos {
		return aspirante.ErrPasoInvalido().WithDetail("paso", req.Paso)
	}

	form := validez.Formulario{Campos: req.Campos}
	errs := aspirante.EsquemaRegistro().ValidarCampos(form, aspirante.CamposDelPaso(req.Paso)...)
	if !errs.Valido() {
		return c.JSON(aspirante.PasoResponse{
			Paso:    req.Paso,
			Valido:  false,
			Errores: errs,
		})
	}

	resp := aspirante.PasoResponse{
		Paso:   req.Paso,
		Valido: true,
	}
	if req.Paso < aspirante.TotalPasos {
		resp.SiguientePaso = req.Paso + 1
		resp.CamposSiguientes = aspirante.CamposDelPaso(req.Paso + 1)
	}

	return c.JSON(resp)
}

// Login authenticates an applicant and issues an access token
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req aspirante.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}
	if err := binding.Struct(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("validate", err.Error())
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetPerfil returns the authenticated applicant's own profile
// GET /api/aspirantes/perfil
func (h *Handlers) GetPerfil(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return aspirante.ErrPermisosInsuficientes()
	}

	perfil, err := h.service.GetPerfil(c.Context(), kernel.AspiranteID(authContext.UserID))
	if err != nil {
		return err
	}

	return c.JSON(perfil)
}

// ActualizarPerfil updates the authenticated applicant's contact data
// PUT /api/aspirantes/perfil
func (h *Handlers) ActualizarPerfil(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return aspirante.ErrPermisosInsuficientes()
	}

	var req aspirante.ActualizarPerfilRequest
	if err := c.BodyParser(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	perfil, err := h.service.ActualizarPerfil(c.Context(), kernel.AspiranteID(authContext.UserID), req)
	if err != nil {
		return err
	}

	return c.JSON(perfil)
}

// GetAspiranteByID retrieves an applicant by ID (HR only)
// GET /api/aspirantes/:id
func (h *Handlers) GetAspiranteByID(c *fiber.Ctx) error {
	id := kernel.AspiranteID(c.Params("id"))
	if id.IsEmpty() {
		return aspirante.ErrAspiranteNoEncontrado().WithDetail("id", "missing or empty")
	}

	perfil, err := h.service.GetPerfil(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(perfil)
}

// ListAspirantes retrieves all applicants with pagination (HR only)
// GET /api/aspirantes
func (h *Handlers) ListAspirantes(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	if pagination.Page < 1 || pagination.PageSize < 1 || pagination.PageSize > 100 {
		return aspirante.ErrPaginacionInvalida().
			WithDetail("page", pagination.Page).
			WithDetail("page_size", pagination.PageSize)
	}

	resp, err := h.service.ListAspirantes(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// BuscarAspirantes searches applicants by criteria (HR only)
// POST /api/aspirantes/buscar
func (h *Handlers) BuscarAspirantes(c *fiber.Ctx) error {
	var req aspirante.BuscarAspirantesRequest
	if err := c.BodyParser(&req); err != nil {
		return aspirante.ErrSolicitudInvalida().WithDetail("parse_error", err.Error())
	}

	if req.Pagination.Page < 1 {
		req.Pagination.Page = 1
	}
	if req.Pagination.PageSize < 1 || req.Pagination.PageSize > 100 {
		req.Pagination.PageSize = 20
	}

	resp, err := h.service.BuscarAspirantes(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Archivar archives an applicant account (HR only)
// POST /api/aspirantes/:id/archivar
func (h *Handlers) Archivar(c *fiber.Ctx) error {
	id := kernel.AspiranteID(c.Params("id"))
	if id.IsEmpty() {
		return aspirante.ErrAspiranteNoEncontrado().WithDetail("id", "missing or empty")
	}

	if err := h.service.Archivar(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Desarchivar restores an archived applicant account (HR only)
// POST /api/aspirantes/:id/desarchivar
func (h *Handlers) Desarchivar(c *fiber.Ctx) error {
	id := kernel.AspiranteID(c.Params("id"))
	if id.IsEmpty() {
		return aspirante.ErrAspiranteNoEncontrado().WithDetail("id", "missing or empty")
	}

	if err := h.service.Desarchivar(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all applicant routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	// Public registration and login
	app.Post("/api/registro", handlers.Registrar)
	app.Post("/api/registro/paso", handlers.ValidarPaso)
	app.Post("/api/auth/login", handlers.Login)

	api := app.Group("/api/aspirantes")

	// Self-service profile routes
	api.Get("/perfil",
		authMiddleware.Authenticate(),
		handlers.GetPerfil,
	)

	api.Put("/perfil",
		authMiddleware.Authenticate(),
		handlers.ActualizarPerfil,
	)

	// HR routes
	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeAspirantesRead),
		handlers.ListAspirantes,
	)

	api.Post("/buscar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeAspirantesRead),
		handlers.BuscarAspirantes,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeAspirantesRead),
		handlers.GetAspiranteByID,
	)

	api.Post("/:id/archivar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRol(kernel.RolTalentoHumano),
		handlers.Archivar,
	)

	api.Post("/:id/desarchivar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRol(kernel.RolTalentoHumano),
		handlers.Desarchivar,
	)
}
