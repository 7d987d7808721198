package expedientesrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/udistrital/unidoc_api/internal/docinspect"
	"github.com/udistrital/unidoc_api/pkg/errx"
	"github.com/udistrital/unidoc_api/pkg/fsx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/pkg/logx"
	"github.com/udistrital/unidoc_api/pkg/validez"
	"github.com/udistrital/unidoc_api/portal/expediente"
)

// ExpedienteService provides business operations for applicant file records
type ExpedienteService struct {
	repo    expediente.Repository
	storage fsx.FileSystem
}

// NewExpedienteService creates a new instance of the record service
func NewExpedienteService(repo expediente.Repository, storage fsx.FileSystem) *ExpedienteService {
	return &ExpedienteService{
		repo:    repo,
		storage: storage,
	}
}

// Crear validates a new record against its strict schema and persists it.
// The attachment is uploaded only after the whole form is valid.
func (s *ExpedienteService) Crear(ctx context.Context, aspiranteID kernel.AspiranteID, req expediente.CrearRegistroRequest) (*expediente.RegistroResponse, error) {
	esquema, err := expediente.EsquemaPara(req.Tipo, validez.ModoCrear)
	if err != nil {
		return nil, err
	}

	form := formulario(req.Campos, req.Archivo)
	if errs := esquema.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}

	// Los campos de ramas inactivas se descartan antes de persistir
	form = esquema.Limpiar(form)

	now := time.Now()
	registro := &expediente.Registro{
		ID:          kernel.NewExpedienteID(uuid.NewString()),
		AspiranteID: aspiranteID,
		Tipo:        req.Tipo,
		Campos:      form.Campos,
		Revision:    expediente.RevisionPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Archivo != nil {
		if err := s.adjuntar(ctx, registro, req.Archivo); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, registro); err != nil {
		return nil, errx.Wrap(err, "failed to create record", errx.TypeInternal)
	}

	logx.Infof("Registro %s creado: tipo=%s aspirante=%s", registro.ID, registro.Tipo, aspiranteID)
	return toResponse(registro), nil
}

// Actualizar re-validates the record with the relaxed schema. Sending no
// attachment keeps the previously uploaded file; an approved record cannot
// be edited anymore.
func (s *ExpedienteService) Actualizar(ctx context.Context, aspiranteID kernel.AspiranteID, id kernel.ExpedienteID, req expediente.ActualizarRegistroRequest) (*expediente.RegistroResponse, error) {
	registro, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !registro.PerteneceA(aspiranteID) {
		return nil, expediente.ErrRegistroAjeno()
	}
	if !registro.EsEditable() {
		return nil, expediente.ErrRegistroNoEditable()
	}

	esquema, err := expediente.EsquemaPara(registro.Tipo, validez.ModoActualizar)
	if err != nil {
		return nil, err
	}

	form := formulario(req.Campos, req.Archivo)
	if errs := esquema.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}
	form = esquema.Limpiar(form)

	registro.Campos = form.Campos
	registro.ReabrirRevision()

	if req.Archivo != nil {
		if err := s.adjuntar(ctx, registro, req.Archivo); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, registro); err != nil {
		return nil, errx.Wrap(err, "failed to update record", errx.TypeInternal)
	}

	logx.Infof("Registro %s actualizado: tipo=%s", registro.ID, registro.Tipo)
	return toResponse(registro), nil
}

// GetRegistro returns one record, enforcing ownership for applicants.
// HR callers pass an empty aspiranteID and see any record.
func (s *ExpedienteService) GetRegistro(ctx context.Context, aspiranteID kernel.AspiranteID, id kernel.ExpedienteID) (*expediente.RegistroResponse, error) {
	registro, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !aspiranteID.IsEmpty() && !registro.PerteneceA(aspiranteID) {
		return nil, expediente.ErrRegistroAjeno()
	}

	return toResponse(registro), nil
}

// ListarPropios returns all records of the authenticated applicant
func (s *ExpedienteService) ListarPropios(ctx context.Context, aspiranteID kernel.AspiranteID) ([]expediente.RegistroResponse, error) {
	registros, err := s.repo.ListByAspirante(ctx, aspiranteID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list records", errx.TypeInternal)
	}

	resp := make([]expediente.RegistroResponse, 0, len(registros))
	for i := range registros {
		resp = append(resp, *toResponse(&registros[i]))
	}
	return resp, nil
}

// Listar returns records matching the filter (HR review queue)
func (s *ExpedienteService) Listar(ctx context.Context, req expediente.ListarRegistrosRequest) (*expediente.PaginatedRegistrosResponse, error) {
	if req.Tipo != "" && !req.Tipo.IsValid() {
		return nil, expediente.ErrTipoRegistroInvalido().WithDetail("tipo", req.Tipo)
	}

	registros, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list records", errx.TypeInternal)
	}

	items := make([]expediente.RegistroResponse, 0, len(registros.Items))
	for i := range registros.Items {
		items = append(items, *toResponse(&registros.Items[i]))
	}

	return &expediente.PaginatedRegistrosResponse{
		Items: items,
		Page:  registros.Page,
		Empty: registros.Empty,
	}, nil
}

// Eliminar removes a record and its stored attachment
func (s *ExpedienteService) Eliminar(ctx context.Context, aspiranteID kernel.AspiranteID, id kernel.ExpedienteID) error {
	registro, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !registro.PerteneceA(aspiranteID) {
		return expediente.ErrRegistroAjeno()
	}
	if !registro.EsEditable() {
		return expediente.ErrRegistroNoEditable()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete record", errx.TypeInternal)
	}

	if registro.TieneArchivo() {
		if err := s.storage.Delete(ctx, claveArchivo(registro)); err != nil {
			// El registro ya no existe; el huérfano se reporta y se limpia aparte
			logx.Warnf("No se pudo borrar el adjunto del registro %s: %v", id, err)
		}
	}

	logx.Infof("Registro %s eliminado: tipo=%s", id, registro.Tipo)
	return nil
}

// Revisar applies an HR decision to a record
func (s *ExpedienteService) Revisar(ctx context.Context, id kernel.ExpedienteID, req expediente.RevisarRegistroRequest) (*expediente.RegistroResponse, error) {
	registro, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch req.Decision {
	case expediente.RevisionAprobado:
		err = registro.Aprobar()
	case expediente.RevisionRechazado:
		if req.Observacion == "" {
			return nil, expediente.ErrObservacionRequerida()
		}
		err = registro.Rechazar(req.Observacion)
	case expediente.RevisionDevuelto:
		if req.Observacion == "" {
			return nil, expediente.ErrObservacionRequerida()
		}
		err = registro.Devolver(req.Observacion)
	default:
		return nil, expediente.ErrSolicitudInvalida().WithDetail("decision", req.Decision)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, registro); err != nil {
		return nil, errx.Wrap(err, "failed to update record", errx.TypeInternal)
	}

	logx.Infof("Registro %s revisado: decision=%s", id, req.Decision)
	return toResponse(registro), nil
}

// Resumen returns the applicant's record counts by type and review status
func (s *ExpedienteService) Resumen(ctx context.Context, aspiranteID kernel.AspiranteID) (*expediente.ResumenExpedienteResponse, error) {
	porTipo, porRevision, err := s.repo.CountByAspirante(ctx, aspiranteID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count records", errx.TypeInternal)
	}

	total := 0
	for _, n := range porTipo {
		total += n
	}

	return &expediente.ResumenExpedienteResponse{
		AspiranteID: aspiranteID,
		PorTipo:     porTipo,
		PorRevision: porRevision,
		Total:       total,
	}, nil
}

// Miniatura renders the first page of a record's PDF attachment
func (s *ExpedienteService) Miniatura(ctx context.Context, id kernel.ExpedienteID) ([]byte, error) {
	registro, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !registro.TieneArchivo() {
		return nil, expediente.ErrArchivoRequerido()
	}

	data, err := s.storage.Download(ctx, claveArchivo(registro))
	if err != nil {
		return nil, expediente.ErrAlmacenamientoFallido().WithCause(err)
	}

	thumb, err := docinspect.FirstPageThumbnail(data)
	if err != nil {
		return nil, expediente.ErrArchivoIlegible().WithCause(err)
	}

	return thumb, nil
}

// adjuntar inspects the uploaded file and stores it. PDF attachments must
// open and have at least one page; the page count is kept on the record.
func (s *ExpedienteService) adjuntar(ctx context.Context, registro *expediente.Registro, archivo *expediente.ArchivoAdjunto) error {
	registro.ArchivoNombre = archivo.Nombre
	registro.Paginas = 0

	if archivo.TipoMIME == validez.MIMEPdf {
		inspeccion, err := docinspect.InspectPDF(archivo.Datos)
		if err != nil {
			return expediente.ErrArchivoIlegible().WithCause(err)
		}
		registro.Paginas = inspeccion.Paginas
	}

	url, err := s.storage.Upload(ctx, claveArchivo(registro), archivo.Datos, archivo.TipoMIME)
	if err != nil {
		return expediente.ErrAlmacenamientoFallido().WithCause(err)
	}

	registro.ArchivoURL = url
	return nil
}

func claveArchivo(r *expediente.Registro) string {
	return fmt.Sprintf("expedientes/%s/%s", r.AspiranteID, r.ID)
}

func formulario(campos map[string]string, archivo *expediente.ArchivoAdjunto) validez.Formulario {
	form := validez.Formulario{Campos: campos}
	if archivo != nil {
		form.Archivos = map[string][]validez.Archivo{
			expediente.CampoArchivo: {{
				Nombre:   archivo.Nombre,
				Tamano:   archivo.Tamano,
				TipoMIME: archivo.TipoMIME,
			}},
		}
	}
	return form
}

func toResponse(r *expediente.Registro) *expediente.RegistroResponse {
	return &expediente.RegistroResponse{
		ID:            r.ID,
		AspiranteID:   r.AspiranteID,
		Tipo:          r.Tipo,
		Campos:        r.Campos,
		ArchivoURL:    r.ArchivoURL,
		ArchivoNombre: r.ArchivoNombre,
		Paginas:       r.Paginas,
		Revision:      r.Revision,
		Observacion:   r.Observacion,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
