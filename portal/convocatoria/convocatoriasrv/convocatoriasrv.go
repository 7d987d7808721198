package convocatoriasrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/udistrital/unidoc_api/pkg/errx"
	"github.com/udistrital/unidoc_api/pkg/fsx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/pkg/logx"
	"github.com/udistrital/unidoc_api/pkg/validez"
	"github.com/udistrital/unidoc_api/portal/convocatoria"
)

// TTL corto: el tablero público tolera unos minutos de desfase, y toda
// escritura lo invalida de inmediato.
const cacheTTL = 5 * time.Minute

// ConvocatoriaService provides business operations for job postings
type ConvocatoriaService struct {
	repo              convocatoria.Repository
	cache             convocatoria.Cache
	storage           fsx.FileSystem
	esquemaCrear      *validez.Esquema
	esquemaActualizar *validez.Esquema
}

// NewConvocatoriaService creates a new instance of the posting service
func NewConvocatoriaService(repo convocatoria.Repository, cache convocatoria.Cache, storage fsx.FileSystem) *ConvocatoriaService {
	return &ConvocatoriaService{
		repo:              repo,
		cache:             cache,
		storage:           storage,
		esquemaCrear:      convocatoria.EsquemaConvocatoria(validez.ModoCrear),
		esquemaActualizar: convocatoria.EsquemaConvocatoria(validez.ModoActualizar),
	}
}

// Crear validates and persists a new posting
func (s *ConvocatoriaService) Crear(ctx context.Context, creadoPor kernel.UserID, req convocatoria.CrearConvocatoriaRequest) (*convocatoria.ConvocatoriaResponse, error) {
	form := formulario(req.Campos, req.Archivo)
	if errs := s.esquemaCrear.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}

	publicacion, _ := validez.ParseFecha(form.Campo(convocatoria.CampoFechaPublicacion))
	cierre, _ := validez.ParseFecha(form.Campo(convocatoria.CampoFechaCierre))

	now := time.Now()
	nueva := &convocatoria.Convocatoria{
		ID:               kernel.NewConvocatoriaID(uuid.NewString()),
		Nombre:           form.Campo(convocatoria.CampoNombre),
		Estado:           convocatoria.EstadoConvocatoria(form.Campo(convocatoria.CampoEstado)),
		Tipo:             convocatoria.TipoConvocatoria(form.Campo(convocatoria.CampoTipo)),
		FechaPublicacion: publicacion,
		FechaCierre:      cierre,
		Descripcion:      form.Campo(convocatoria.CampoDescripcion),
		CreatedBy:        creadoPor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if req.Archivo != nil {
		url, err := s.subirArchivo(ctx, nueva.ID, req.Archivo)
		if err != nil {
			return nil, err
		}
		nueva.ArchivoURL = url
	}

	if err := s.repo.Create(ctx, nueva); err != nil {
		return nil, errx.Wrap(err, "failed to create posting", errx.TypeInternal)
	}

	s.invalidar(ctx)
	logx.Infof("Convocatoria %s creada: %s", nueva.ID, nueva.Nombre)
	return toResponse(nueva), nil
}

// Actualizar re-validates with the relaxed schema and persists the changes.
// Sending no attachment keeps the current terms document.
func (s *ConvocatoriaService) Actualizar(ctx context.Context, id kernel.ConvocatoriaID, req convocatoria.ActualizarConvocatoriaRequest) (*convocatoria.ConvocatoriaResponse, error) {
	actual, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actual.EsEditable() {
		return nil, convocatoria.ErrConvocatoriaNoEditable()
	}

	form := formulario(req.Campos, req.Archivo)
	if errs := s.esquemaActualizar.Validar(form); !errs.Valido() {
		return nil, errs.AError()
	}

	publicacion, _ := validez.ParseFecha(form.Campo(convocatoria.CampoFechaPublicacion))
	cierre, _ := validez.ParseFecha(form.Campo(convocatoria.CampoFechaCierre))

	actual.Nombre = form.Campo(convocatoria.CampoNombre)
	actual.Estado = convocatoria.EstadoConvocatoria(form.Campo(convocatoria.CampoEstado))
	actual.Tipo = convocatoria.TipoConvocatoria(form.Campo(convocatoria.CampoTipo))
	actual.FechaPublicacion = publicacion
	actual.FechaCierre = cierre
	actual.Descripcion = form.Campo(convocatoria.CampoDescripcion)
	actual.UpdatedAt = time.Now()

	if req.Archivo != nil {
		url, err := s.subirArchivo(ctx, actual.ID, req.Archivo)
		if err != nil {
			return nil, err
		}
		actual.ArchivoURL = url
	}

	if err := s.repo.Update(ctx, id, actual); err != nil {
		return nil, errx.Wrap(err, "failed to update posting", errx.TypeInternal)
	}

	s.invalidar(ctx)
	logx.Infof("Convocatoria %s actualizada", id)
	return toResponse(actual), nil
}

// GetConvocatoria returns one posting by ID
func (s *ConvocatoriaService) GetConvocatoria(ctx context.Context, id kernel.ConvocatoriaID) (*convocatoria.ConvocatoriaResponse, error) {
	actual, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(actual), nil
}

// ListarAbiertas returns the public board of open postings, served from
// the cache when fresh
func (s *ConvocatoriaService) ListarAbiertas(ctx context.Context) ([]convocatoria.ConvocatoriaResponse, error) {
	items, hit, err := s.cache.GetAbiertas(ctx)
	if err != nil {
		// Cache caído: el tablero se sirve de la base de datos
		logx.Warnf("Cache de convocatorias no disponible: %v", err)
	}

	if !hit {
		items, err = s.repo.ListAbiertas(ctx)
		if err != nil {
			return nil, errx.Wrap(err, "failed to list open postings", errx.TypeInternal)
		}

		if err := s.cache.SetAbiertas(ctx, items, cacheTTL); err != nil {
			logx.Warnf("No se pudo poblar el cache de convocatorias: %v", err)
		}
	}

	resp := make([]convocatoria.ConvocatoriaResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

// Listar returns postings matching the filter (HR)
func (s *ConvocatoriaService) Listar(ctx context.Context, req convocatoria.ListarConvocatoriasRequest) (*convocatoria.PaginatedConvocatoriasResponse, error) {
	if req.Estado != "" && !req.Estado.IsValid() {
		return nil, convocatoria.ErrSolicitudInvalida().WithDetail("estado", req.Estado)
	}

	page, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list postings", errx.TypeInternal)
	}

	items := make([]convocatoria.ConvocatoriaResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *toResponse(&page.Items[i]))
	}

	return &convocatoria.PaginatedConvocatoriasResponse{
		Items: items,
		Page:  page.Page,
		Empty: page.Empty,
	}, nil
}

// Cerrar closes a posting to new postulations
func (s *ConvocatoriaService) Cerrar(ctx context.Context, id kernel.ConvocatoriaID) (*convocatoria.ConvocatoriaResponse, error) {
	return s.transicion(ctx, id, (*convocatoria.Convocatoria).Cerrar)
}

// Reabrir reopens a closed posting
func (s *ConvocatoriaService) Reabrir(ctx context.Context, id kernel.ConvocatoriaID) (*convocatoria.ConvocatoriaResponse, error) {
	return s.transicion(ctx, id, (*convocatoria.Convocatoria).Reabrir)
}

// Finalizar ends a posting's selection process
func (s *ConvocatoriaService) Finalizar(ctx context.Context, id kernel.ConvocatoriaID) (*convocatoria.ConvocatoriaResponse, error) {
	return s.transicion(ctx, id, (*convocatoria.Convocatoria).Finalizar)
}

// Eliminar removes a posting and its stored terms document
func (s *ConvocatoriaService) Eliminar(ctx context.Context, id kernel.ConvocatoriaID) error {
	actual, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete posting", errx.TypeInternal)
	}

	if actual.ArchivoURL != "" {
		if err := s.storage.Delete(ctx, claveArchivo(id)); err != nil {
			logx.Warnf("No se pudo borrar el adjunto de la convocatoria %s: %v", id, err)
		}
	}

	s.invalidar(ctx)
	logx.Infof("Convocatoria %s eliminada", id)
	return nil
}

func (s *ConvocatoriaService) transicion(ctx context.Context, id kernel.ConvocatoriaID, cambio func(*convocatoria.Convocatoria) error) (*convocatoria.ConvocatoriaResponse, error) {
	actual, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := cambio(actual); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, actual); err != nil {
		return nil, errx.Wrap(err, "failed to update posting", errx.TypeInternal)
	}

	s.invalidar(ctx)
	logx.Infof("Convocatoria %s pasó a estado %s", id, actual.Estado)
	return toResponse(actual), nil
}

func (s *ConvocatoriaService) subirArchivo(ctx context.Context, id kernel.ConvocatoriaID, archivo *convocatoria.ArchivoAdjunto) (kernel.BucketURL, error) {
	url, err := s.storage.Upload(ctx, claveArchivo(id), archivo.Datos, archivo.TipoMIME)
	if err != nil {
		return "", convocatoria.ErrAlmacenamientoFallido().WithCause(err)
	}
	return url, nil
}

func (s *ConvocatoriaService) invalidar(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logx.Warnf("No se pudo invalidar el cache de convocatorias: %v", err)
	}
}

func claveArchivo(id kernel.ConvocatoriaID) string {
	return fmt.Sprintf("convocatorias/%s/terminos", id)
}

func formulario(campos map[string]string, archivo *convocatoria.ArchivoAdjunto) validez.Formulario {
	form := validez.Formulario{Campos: campos}
	if archivo != nil {
		form.Archivos = map[string][]validez.Archivo{
			convocatoria.CampoArchivo: {{
				Nombre:   archivo.Nombre,
				Tamano:   archivo.Tamano,
				TipoMIME: archivo.TipoMIME,
			}},
		}
	}
	return form
}

func toResponse(c *convocatoria.Convocatoria) *convocatoria.ConvocatoriaResponse {
	return &convocatoria.ConvocatoriaResponse{
		ID:               c.ID,
		Nombre:           c.Nombre,
		Estado:           c.Estado,
		Tipo:             c.Tipo,
		FechaPublicacion: c.FechaPublicacion.Format(validez.FormatoFecha),
		FechaCierre:      c.FechaCierre.Format(validez.FormatoFecha),
		Descripcion:      c.Descripcion,
		ArchivoURL:       c.ArchivoURL,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
