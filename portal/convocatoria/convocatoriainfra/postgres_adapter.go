package convocatoriainfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/convocatoria"
)

type PostgresConvocatoriaRepository struct {
	db *sqlx.DB
}

func NewPostgresConvocatoriaRepository(db *sqlx.DB) convocatoria.Repository {
	return &PostgresConvocatoriaRepository{db: db}
}

const convocatoriaColumns = `
	id, nombre, estado, tipo, fecha_publicacion, fecha_cierre,
	descripcion, archivo_url, created_by, created_at, updated_at
`

// Create creates a new posting
func (r *PostgresConvocatoriaRepository) Create(ctx context.Context, c *convocatoria.Convocatoria) error {
	query := `
		INSERT INTO convocatorias (` + convocatoriaColumns + `) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.Nombre,
		c.Estado,
		c.Tipo,
		c.FechaPublicacion,
		c.FechaCierre,
		c.Descripcion,
		c.ArchivoURL,
		c.CreatedBy,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

// Update updates an existing posting
func (r *PostgresConvocatoriaRepository) Update(ctx context.Context, id kernel.ConvocatoriaID, c *convocatoria.Convocatoria) error {
	query := `
		UPDATE convocatorias
		SET
			nombre = $2,
			estado = $3,
			tipo = $4,
			fecha_publicacion = $5,
			fecha_cierre = $6,
			descripcion = $7,
			archivo_url = $8,
			updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		c.Nombre,
		c.Estado,
		c.Tipo,
		c.FechaPublicacion,
		c.FechaCierre,
		c.Descripcion,
		c.ArchivoURL,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return convocatoria.ErrConvocatoriaNoEncontrada()
	}

	return nil
}

func (r *PostgresConvocatoriaRepository) scanConvocatoria(row interface{ Scan(...any) error }) (*convocatoria.Convocatoria, error) {
	var c convocatoria.Convocatoria
	var archivoURL sql.NullString

	err := row.Scan(
		&c.ID,
		&c.Nombre,
		&c.Estado,
		&c.Tipo,
		&c.FechaPublicacion,
		&c.FechaCierre,
		&c.Descripcion,
		&archivoURL,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if archivoURL.Valid {
		c.ArchivoURL = kernel.BucketURL(archivoURL.String)
	}

	return &c, nil
}

// GetByID retrieves a posting by ID
func (r *PostgresConvocatoriaRepository) GetByID(ctx context.Context, id kernel.ConvocatoriaID) (*convocatoria.Convocatoria, error) {
	query := `SELECT ` + convocatoriaColumns + ` FROM convocatorias WHERE id = $1`

	c, err := r.scanConvocatoria(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, convocatoria.ErrConvocatoriaNoEncontrada()
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Delete deletes a posting by ID
func (r *PostgresConvocatoriaRepository) Delete(ctx context.Context, id kernel.ConvocatoriaID) error {
	query := `DELETE FROM convocatorias WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return convocatoria.ErrConvocatoriaNoEncontrada()
	}

	return nil
}

// List retrieves postings matching the filter with pagination
func (r *PostgresConvocatoriaRepository) List(ctx context.Context, req convocatoria.ListarConvocatoriasRequest) (*kernel.Paginated[convocatoria.Convocatoria], error) {
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Estado != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`estado = $%d`, argCount))
		args = append(args, req.Estado)
		argCount++
	}

	if req.Tipo != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`tipo = $%d`, argCount))
		args = append(args, req.Tipo)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM convocatorias %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	offset := (req.Pagination.Page - 1) * req.Pagination.PageSize

	query := fmt.Sprintf(`
		SELECT `+convocatoriaColumns+`
		FROM convocatorias
		%s
		ORDER BY fecha_publicacion DESC
		LIMIT $%d OFFSET $%d
	`, whereSQL, argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, offset)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]convocatoria.Convocatoria, 0)
	for rows.Next() {
		c, err := r.scanConvocatoria(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}

	return kernel.NewPaginated(items, req.Pagination, total), nil
}

// ListAbiertas retrieves every open posting, newest first
func (r *PostgresConvocatoriaRepository) ListAbiertas(ctx context.Context) ([]convocatoria.Convocatoria, error) {
	query := `
		SELECT ` + convocatoriaColumns + `
		FROM convocatorias
		WHERE estado = $1
		ORDER BY fecha_publicacion DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, convocatoria.EstadoAbierta)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]convocatoria.Convocatoria, 0)
	for rows.Next() {
		c, err := r.scanConvocatoria(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}

	return items, nil
}
