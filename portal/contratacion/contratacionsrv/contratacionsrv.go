package contratacionsrv

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/udistrital/unidoc_api/pkg/errx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/pkg/logx"
	"github.com/udistrital/unidoc_api/pkg/validez"
	"github.com/udistrital/unidoc_api/portal/contratacion"
)

// AspiranteValidator verifies that the contracted applicant exists
type AspiranteValidator interface {
	ValidateAspiranteExists(ctx context.Context, id kernel.AspiranteID) error
}

// ContratacionService provides business operations for contracts
type ContratacionService struct {
	repo       contratacion.Repository
	aspirantes AspiranteValidator
	esquema    *validez.Esquema
}

// NewContratacionService creates a new instance of the contract service
func NewContratacionService(repo contratacion.Repository, aspirantes AspiranteValidator) *ContratacionService {
	return &ContratacionService{
		repo:       repo,
		aspirantes: aspirantes,
		esquema:    contratacion.EsquemaContratacion(),
	}
}

// Crear validates and issues a new contract
func (s *ContratacionService) Crear(ctx context.Context, creadoPor kernel.UserID, req contratacion.CrearContratacionRequest) (*contratacion.ContratacionResponse, error) {
	if req.AspiranteID.IsEmpty() {
		return nil, contratacion.ErrSolicitudInvalida().WithDetail("aspirante_id", "missing or empty")
	}
	if err := s.aspirantes.ValidateAspiranteExists(ctx, req.AspiranteID); err != nil {
		return nil, err
	}

	form := validez.Formulario{Campos: req.Campos}
	if errs := s.esquema.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}

	inicio, _ := validez.ParseFecha(form.Campo(contratacion.CampoFechaInicio))
	fin, _ := validez.ParseFecha(form.Campo(contratacion.CampoFechaFin))
	valor, _ := strconv.ParseInt(form.Campo(contratacion.CampoValorContrato), 10, 64)

	now := time.Now()
	contrato := &contratacion.Contratacion{
		ID:            kernel.NewContratacionID(uuid.NewString()),
		AspiranteID:   req.AspiranteID,
		TipoContrato:  contratacion.TipoContrato(form.Campo(contratacion.CampoTipoContrato)),
		Area:          contratacion.Area(form.Campo(contratacion.CampoArea)),
		FechaInicio:   inicio,
		FechaFin:      fin,
		ValorContrato: valor,
		Observaciones: form.Campo(contratacion.CampoObservaciones),
		Estado:        contratacion.EstadoVigente,
		CreatedBy:     creadoPor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, contrato); err != nil {
		return nil, errx.Wrap(err, "failed to create contract", errx.TypeInternal)
	}

	logx.Infof("Contrato %s emitido: aspirante=%s area=%s", contrato.ID, contrato.AspiranteID, contrato.Area)
	return toResponse(contrato), nil
}

// Actualizar re-validates and updates a contract still in force
func (s *ContratacionService) Actualizar(ctx context.Context, id kernel.ContratacionID, req contratacion.ActualizarContratacionRequest) (*contratacion.ContratacionResponse, error) {
	contrato, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !contrato.EstaVigente() {
		return nil, contratacion.ErrContratoNoVigente().WithDetail("estado", contrato.Estado)
	}

	form := validez.Formulario{Campos: req.Campos}
	if errs := s.esquema.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}

	inicio, _ := validez.ParseFecha(form.Campo(contratacion.CampoFechaInicio))
	fin, _ := validez.ParseFecha(form.Campo(contratacion.CampoFechaFin))
	valor, _ := strconv.ParseInt(form.Campo(contratacion.CampoValorContrato), 10, 64)

	contrato.TipoContrato = contratacion.TipoContrato(form.Campo(contratacion.CampoTipoContrato))
	contrato.Area = contratacion.Area(form.Campo(contratacion.CampoArea))
	contrato.FechaInicio = inicio
	contrato.FechaFin = fin
	contrato.ValorContrato = valor
	contrato.Observaciones = form.Campo(contratacion.CampoObservaciones)
	contrato.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, contrato); err != nil {
		return nil, errx.Wrap(err, "failed to update contract", errx.TypeInternal)
	}

	logx.Infof("Contrato %s actualizado", id)
	return toResponse(contrato), nil
}

// GetContratacion returns one contract by ID
func (s *ContratacionService) GetContratacion(ctx context.Context, id kernel.ContratacionID) (*contratacion.ContratacionResponse, error) {
	contrato, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(contrato), nil
}

// Listar returns contracts matching the filter
func (s *ContratacionService) Listar(ctx context.Context, req contratacion.ListarContratacionesRequest) (*contratacion.PaginatedContratacionesResponse, error) {
	page, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list contracts", errx.TypeInternal)
	}

	items := make([]contratacion.ContratacionResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *toResponse(&page.Items[i]))
	}

	return &contratacion.PaginatedContratacionesResponse{
		Items: items,
		Page:  page.Page,
		Empty: page.Empty,
	}, nil
}

// ListarPorAspirante returns all contracts of one applicant
func (s *ContratacionService) ListarPorAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) ([]contratacion.ContratacionResponse, error) {
	contratos, err := s.repo.ListByAspirante(ctx, aspiranteID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list contracts", errx.TypeInternal)
	}

	resp := make([]contratacion.ContratacionResponse, 0, len(contratos))
	for i := range contratos {
		resp = append(resp, *toResponse(&contratos[i]))
	}
	return resp, nil
}

// Terminar closes a contract at the end of its term
func (s *ContratacionService) Terminar(ctx context.Context, id kernel.ContratacionID) (*contratacion.ContratacionResponse, error) {
	return s.transicion(ctx, id, (*contratacion.Contratacion).Terminar)
}

// Anular voids a contract issued by mistake
func (s *ContratacionService) Anular(ctx context.Context, id kernel.ContratacionID) (*contratacion.ContratacionResponse, error) {
	return s.transicion(ctx, id, (*contratacion.Contratacion).Anular)
}

func (s *ContratacionService) transicion(ctx context.Context, id kernel.ContratacionID, cambio func(*contratacion.Contratacion) error) (*contratacion.ContratacionResponse, error) {
	contrato, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := cambio(contrato); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, contrato); err != nil {
		return nil, errx.Wrap(err, "failed to update contract", errx.TypeInternal)
	}

	logx.Infof("Contrato %s pasó a estado %s", id, contrato.Estado)
	return toResponse(contrato), nil
}

func toResponse(c *contratacion.Contratacion) *contratacion.ContratacionResponse {
	return &contratacion.ContratacionResponse{
		ID:            c.ID,
		AspiranteID:   c.AspiranteID,
		TipoContrato:  c.TipoContrato,
		Area:          c.Area,
		FechaInicio:   c.FechaInicio.Format(validez.FormatoFecha),
		FechaFin:      c.FechaFin.Format(validez.FormatoFecha),
		ValorContrato: c.ValorContrato,
		Observaciones: c.Observaciones,
		Estado:        c.Estado,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
