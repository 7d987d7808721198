package contratacioninfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/contratacion"
)

type PostgresContratacionRepository struct {
	db *sqlx.DB
}

func NewPostgresContratacionRepository(db *sqlx.DB) contratacion.Repository {
	return &PostgresContratacionRepository{db: db}
}

const contratacionColumns = `
	id, aspirante_id, tipo_contrato, area, fecha_inicio, fecha_fin,
	valor_contrato, observaciones, estado, created_by, created_at, updated_at
`

// Create creates a new contract
func (r *PostgresContratacionRepository) Create(ctx context.Context, c *contratacion.Contratacion) error {
	query := `
		INSERT INTO contrataciones (` + contratacionColumns + `) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.AspiranteID,
		c.TipoContrato,
		c.Area,
		c.FechaInicio,
		c.FechaFin,
		c.ValorContrato,
		c.Observaciones,
		c.Estado,
		c.CreatedBy,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

// Update updates an existing contract
func (r *PostgresContratacionRepository) Update(ctx context.Context, id kernel.ContratacionID, c *contratacion.Contratacion) error {
	query := `
		UPDATE contrataciones
		SET
			tipo_contrato = $2,
			area = $3,
			fecha_inicio = $4,
			fecha_fin = $5,
			valor_contrato = $6,
			observaciones = $7,
			estado = $8,
			updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		c.TipoContrato,
		c.Area,
		c.FechaInicio,
		c.FechaFin,
		c.ValorContrato,
		c.Observaciones,
		c.Estado,
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
		return contratacion.ErrContratoNoEncontrado()
	}

	return nil
}

func (r *PostgresContratacionRepository) scanContratacion(row interface{ Scan(...any) error }) (*contratacion.Contratacion, error) {
	var c contratacion.Contratacion
	var observaciones sql.NullString

	err := row.Scan(
		&c.ID,
		&c.AspiranteID,
		&c.TipoContrato,
		&c.Area,
		&c.FechaInicio,
		&c.FechaFin,
		&c.ValorContrato,
		&observaciones,
		&c.Estado,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if observaciones.Valid {
		c.Observaciones = observaciones.String
	}

	return &c, nil
}

// GetByID retrieves a contract by ID
func (r *PostgresContratacionRepository) GetByID(ctx context.Context, id kernel.ContratacionID) (*contratacion.Contratacion, error) {
	query := `SELECT ` + contratacionColumns + ` FROM contrataciones WHERE id = $1`

	c, err := r.scanContratacion(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, contratacion.ErrContratoNoEncontrado()
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// List retrieves contracts matching the filter with pagination
func (r *PostgresContratacionRepository) List(ctx context.Context, req contratacion.ListarContratacionesRequest) (*kernel.Paginated[contratacion.Contratacion], error) {
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if !req.AspiranteID.IsEmpty() {
		whereClauses = append(whereClauses, fmt.Sprintf(`aspirante_id = $%d`, argCount))
		args = append(args, req.AspiranteID)
		argCount++
	}

	if req.Estado != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`estado = $%d`, argCount))
		args = append(args, req.Estado)
		argCount++
	}

	if req.Area != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`area = $%d`, argCount))
		args = append(args, req.Area)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM contrataciones %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	offset := (req.Pagination.Page - 1) * req.Pagination.PageSize

	query := fmt.Sprintf(`
		SELECT `+contratacionColumns+`
		FROM contrataciones
		%s
		ORDER BY fecha_inicio DESC
		LIMIT $%d OFFSET $%d
	`, whereSQL, argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, offset)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]contratacion.Contratacion, 0)
	for rows.Next() {
		c, err := r.scanContratacion(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}

	return kernel.NewPaginated(items, req.Pagination, total), nil
}

// ListByAspirante retrieves all contracts of one applicant
func (r *PostgresContratacionRepository) ListByAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) ([]contratacion.Contratacion, error) {
	query := `
		SELECT ` + contratacionColumns + `
		FROM contrataciones
		WHERE aspirante_id = $1
		ORDER BY fecha_inicio DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, aspiranteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]contratacion.Contratacion, 0)
	for rows.Next() {
		c, err := r.scanContratacion(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}

	return items, nil
}
