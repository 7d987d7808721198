package aspirantesrv

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/udistrital/unidoc_api/pkg/errx"
	"github.com/udistrital/unidoc_api/pkg/iam/auth"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/pkg/validez"
	"github.com/udistrital/unidoc_api/portal/aspirante"
)

// AspiranteService provides business operations for applicant accounts
type AspiranteService struct {
	repo        aspirante.Repository
	passwordSvc auth.PasswordService
	tokenSvc    auth.TokenService
	esquema     *validez.Esquema
}

// NewAspiranteService creates a new instance of the applicant service
func NewAspiranteService(
	repo aspirante.Repository,
	passwordSvc auth.PasswordService,
	tokenSvc auth.TokenService,
) *AspiranteService {
	return &AspiranteService{
		repo:        repo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		esquema:     aspirante.EsquemaRegistro(),
	}
}

// Registrar validates the full registration form and creates the account.
// The schema errors carry one Spanish message per field path; the UI places
// them inline.
func (s *AspiranteService) Registrar(ctx context.Context, campos map[string]string, rol kernel.Rol) (*aspirante.Aspirante, error) {
	if !rol.EsPostulante() {
		return nil, aspirante.ErrSolicitudInvalida().WithDetail("rol", rol)
	}

	form := validez.Formulario{Campos: campos}
	if errs := s.esquema.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}

	identificacion := kernel.Identificacion{
		Tipo:   kernel.TipoIdentificacion(form.Campo(aspirante.CampoTipoIdentificacion)),
		Numero: form.Campo(aspirante.CampoNumeroIdentificacion),
	}
	if !identificacion.IsValid() {
		return nil, aspirante.ErrIdentificacionInvalida().
			WithDetail("tipo", identificacion.Tipo).
			WithDetail("numero", identificacion.Numero)
	}

	email := kernel.Email(form.Campo(aspirante.CampoEmail))

	// Check for existing account by email
	if existente, err := s.repo.GetByEmail(ctx, email); err == nil && existente != nil {
		return nil, aspirante.ErrEmailYaRegistrado().WithDetail("email", string(email))
	}

	// Check for existing account by identity document
	if existente, err := s.repo.GetByIdentificacion(ctx, identificacion); err == nil && existente != nil {
		return nil, aspirante.ErrIdentificacionRepetida().
			WithDetail("tipo", identificacion.Tipo).
			WithDetail("existing_id", existente.ID.String())
	}

	hash, err := s.passwordSvc.Hash(form.Campo(aspirante.CampoPassword))
	if err != nil {
		return nil, err
	}

	fechaNacimiento, _ := validez.ParseFecha(form.Campo(aspirante.CampoFechaNacimiento))
	paisID, _ := strconv.Atoi(form.Campo(aspirante.CampoPaisID))
	departamentoID, _ := strconv.Atoi(form.Campo(aspirante.CampoDepartamentoID))
	municipioID, _ := strconv.Atoi(form.Campo(aspirante.CampoMunicipioID))

	nuevo := &aspirante.Aspirante{
		ID:              kernel.NewAspiranteID(uuid.NewString()),
		Email:           email,
		PasswordHash:    hash,
		PrimerNombre:    form.Campo(aspirante.CampoPrimerNombre),
		SegundoNombre:   form.Campo(aspirante.CampoSegundoNombre),
		PrimerApellido:  form.Campo(aspirante.CampoPrimerApellido),
		SegundoApellido: form.Campo(aspirante.CampoSegundoApellido),
		Identificacion:  identificacion,
		FechaNacimiento: fechaNacimiento,
		Genero:          aspirante.Genero(form.Campo(aspirante.CampoGenero)),
		EstadoCivil:     aspirante.EstadoCivil(form.Campo(aspirante.CampoEstadoCivil)),
		Telefono:        kernel.Telefono(form.Campo(aspirante.CampoTelefono)),
		PaisID:          paisID,
		DepartamentoID:  departamentoID,
		MunicipioID:     municipioID,
		Rol:             rol,
		Estado:          aspirante.EstadoAspiranteActivo,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, nuevo); err != nil {
		return nil, errx.Wrap(err, "failed to create aspirante", errx.TypeInternal)
	}

	return nuevo, nil
}

// Login verifies credentials and issues an access token with the rol claim
func (s *AspiranteService) Login(ctx context.Context, req aspirante.LoginRequest) (*aspirante.LoginResponse, error) {
	cuenta, err := s.repo.GetByEmail(ctx, kernel.Email(req.Email))
	if err != nil {
		return nil, aspirante.ErrCredencialesInvalidas()
	}

	if !s.passwordSvc.Compare(cuenta.PasswordHash, req.Password) {
		return nil, aspirante.ErrCredencialesInvalidas()
	}

	if !cuenta.IsActive() {
		return nil, aspirante.ErrAspiranteInactivo().WithDetail("aspirante_id", cuenta.ID.String())
	}

	token, err := s.tokenSvc.GenerateAccessToken(kernel.UserID(cuenta.ID), cuenta.Email, cuenta.Rol)
	if err != nil {
		return nil, err
	}

	return &aspirante.LoginResponse{
		AccessToken: token,
		Rol:         cuenta.Rol,
		Aspirante:   *s.toResponse(cuenta),
	}, nil
}

// GetPerfil retrieves an applicant profile by ID
func (s *AspiranteService) GetPerfil(ctx context.Context, id kernel.AspiranteID) (*aspirante.AspiranteResponse, error) {
	cuenta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, aspirante.ErrAspiranteNoEncontrado().WithDetail("aspirante_id", id.String())
	}

	return s.toResponse(cuenta), nil
}

// ActualizarPerfil updates the mutable profile fields
func (s *AspiranteService) ActualizarPerfil(ctx context.Context, id kernel.AspiranteID, req aspirante.ActualizarPerfilRequest) (*aspirante.AspiranteResponse, error) {
	cuenta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, aspirante.ErrAspiranteNoEncontrado().WithDetail("aspirante_id", id.String())
	}

	if cuenta.IsArchived() {
		return nil, aspirante.ErrAspiranteArchivado().WithDetail("aspirante_id", id.String())
	}

	actualizado := false

	if req.Email != nil && kernel.Email(*req.Email) != cuenta.Email {
		// Check for duplicate email
		if existente, err := s.repo.GetByEmail(ctx, kernel.Email(*req.Email)); err == nil && existente != nil && existente.ID != id {
			return nil, aspirante.ErrEmailYaRegistrado().WithDetail("email", *req.Email)
		}
		cuenta.Email = kernel.Email(*req.Email)
		actualizado = true
	}

	if req.Telefono != nil && kernel.Telefono(*req.Telefono) != cuenta.Telefono {
		cuenta.Telefono = kernel.Telefono(*req.Telefono)
		actualizado = true
	}

	if req.EstadoCivil != nil && aspirante.EstadoCivil(*req.EstadoCivil) != cuenta.EstadoCivil {
		cuenta.EstadoCivil = aspirante.EstadoCivil(*req.EstadoCivil)
		actualizado = true
	}

	if actualizado {
		cuenta.UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, id, cuenta); err != nil {
			return nil, errx.Wrap(err, "failed to update aspirante", errx.TypeInternal)
		}
	}

	return s.toResponse(cuenta), nil
}

// ListAspirantes retrieves all applicants with pagination (HR only)
func (s *AspiranteService) ListAspirantes(ctx context.Context, pagination kernel.PaginationOptions) (*aspirante.PaginatedAspirantesResponse, error) {
	cuentas, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list aspirantes", errx.TypeInternal)
	}

	return s.toPaginatedResponse(cuentas), nil
}

// BuscarAspirantes searches applicants by various criteria (HR only)
func (s *AspiranteService) BuscarAspirantes(ctx context.Context, req aspirante.BuscarAspirantesRequest) (*aspirante.PaginatedAspirantesResponse, error) {
	cuentas, err := s.repo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search aspirantes", errx.TypeInternal)
	}

	return s.toPaginatedResponse(cuentas), nil
}

// Archivar archives an applicant account (HR only)
func (s *AspiranteService) Archivar(ctx context.Context, id kernel.AspiranteID) error {
	cuenta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return aspirante.ErrAspiranteNoEncontrado().WithDetail("aspirante_id", id.String())
	}

	if err := cuenta.Archive(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, cuenta); err != nil {
		return errx.Wrap(err, "failed to archive aspirante", errx.TypeInternal)
	}

	return nil
}

// Desarchivar removes archived status (HR only)
func (s *AspiranteService) Desarchivar(ctx context.Context, id kernel.AspiranteID) error {
	cuenta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return aspirante.ErrAspiranteNoEncontrado().WithDetail("aspirante_id", id.String())
	}

	if err := cuenta.Unarchive(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, cuenta); err != nil {
		return errx.Wrap(err, "failed to unarchive aspirante", errx.TypeInternal)
	}

	return nil
}

// ValidateAspiranteExists checks if an applicant exists
func (s *AspiranteService) ValidateAspiranteExists(ctx context.Context, id kernel.AspiranteID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to check aspirante existence", errx.TypeInternal)
	}

	if !exists {
		return aspirante.ErrAspiranteNoEncontrado().WithDetail("aspirante_id", id.String())
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *AspiranteService) toResponse(a *aspirante.Aspirante) *aspirante.AspiranteResponse {
	return &aspirante.AspiranteResponse{
		ID:              a.ID,
		Email:           a.Email,
		NombreCompleto:  a.GetFullName(),
		PrimerNombre:    a.PrimerNombre,
		SegundoNombre:   a.SegundoNombre,
		PrimerApellido:  a.PrimerApellido,
		SegundoApellido: a.SegundoApellido,
		Identificacion:  a.Identificacion,
		FechaNacimiento: a.FechaNacimiento.Format(validez.FormatoFecha),
		Genero:          a.Genero,
		EstadoCivil:     a.EstadoCivil,
		Telefono:        a.Telefono,
		PaisID:          a.PaisID,
		DepartamentoID:  a.DepartamentoID,
		MunicipioID:     a.MunicipioID,
		Rol:             a.Rol,
		Estado:          a.Estado,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (s *AspiranteService) toPaginatedResponse(cuentas *kernel.Paginated[aspirante.Aspirante]) *aspirante.PaginatedAspirantesResponse {
	responses := make([]aspirante.AspiranteResponse, 0, len(cuentas.Items))
	for _, a := range cuentas.Items {
		responses = append(responses, *s.toResponse(&a))
	}

	return &kernel.Paginated[aspirante.AspiranteResponse]{
		Items: responses,
		Page:  cuentas.Page,
		Empty: cuentas.Empty,
	}
}
