package expedienteinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/expediente"
)

type PostgresExpedienteRepository struct {
	db *sqlx.DB
}

func NewPostgresExpedienteRepository(db *sqlx.DB) expediente.Repository {
	return &PostgresExpedienteRepository{db: db}
}

const registroColumns = `
	id, aspirante_id, tipo, campos, archivo_url, archivo_nombre,
	paginas, revision, observacion, created_at, updated_at
`

// Create creates a new record
func (r *PostgresExpedienteRepository) Create(ctx context.Context, registro *expediente.Registro) error {
	campos, err := json.Marshal(registro.Campos)
	if err != nil {
		return fmt.Errorf("marshal campos: %w", err)
	}

	query := `
		INSERT INTO expediente_registros (` + registroColumns + `) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		registro.ID,
		registro.AspiranteID,
		registro.Tipo,
		campos,
		registro.ArchivoURL,
		registro.ArchivoNombre,
		registro.Paginas,
		registro.Revision,
		registro.Observacion,
		registro.CreatedAt,
		registro.UpdatedAt,
	)

	return err
}

// Update updates an existing record
func (r *PostgresExpedienteRepository) Update(ctx context.Context, id kernel.ExpedienteID, registro *expediente.Registro) error {
	campos, err := json.Marshal(registro.Campos)
	if err != nil {
		return fmt.Errorf("marshal campos: %w", err)
	}

	query := `
		UPDATE expediente_registros
		SET
			campos = $2,
			archivo_url = $3,
			archivo_nombre = $4,
			paginas = $5,
			revision = $6,
			observacion = $7,
			updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		campos,
		registro.ArchivoURL,
		registro.ArchivoNombre,
		registro.Paginas,
		registro.Revision,
		registro.Observacion,
		registro.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return expediente.ErrRegistroNoEncontrado()
	}

	return nil
}

func (r *PostgresExpedienteRepository) scanRegistro(row interface{ Scan(...any) error }) (*expediente.Registro, error) {
	var registro expediente.Registro
	var campos []byte
	var archivoURL, archivoNombre, observacion sql.NullString

	err := row.Scan(
		&registro.ID,
		&registro.AspiranteID,
		&registro.Tipo,
		&campos,
		&archivoURL,
		&archivoNombre,
		&registro.Paginas,
		&registro.Revision,
		&observacion,
		&registro.CreatedAt,
		&registro.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(campos) > 0 {
		if err := json.Unmarshal(campos, &registro.Campos); err != nil {
			return nil, fmt.Errorf("unmarshal campos: %w", err)
		}
	}
	if archivoURL.Valid {
		registro.ArchivoURL = kernel.BucketURL(archivoURL.String)
	}
	if archivoNombre.Valid {
		registro.ArchivoNombre = archivoNombre.String
	}
	if observacion.Valid {
		registro.Observacion = observacion.String
	}

	return &registro, nil
}

// GetByID retrieves a record by ID
func (r *PostgresExpedienteRepository) GetByID(ctx context.Context, id kernel.ExpedienteID) (*expediente.Registro, error) {
	query := `SELECT ` + registroColumns + ` FROM expediente_registros WHERE id = $1`

	registro, err := r.scanRegistro(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, expediente.ErrRegistroNoEncontrado()
	}
	if err != nil {
		return nil, err
	}

	return registro, nil
}

// Delete deletes a record by ID
func (r *PostgresExpedienteRepository) Delete(ctx context.Context, id kernel.ExpedienteID) error {
	query := `DELETE FROM expediente_registros WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return expediente.ErrRegistroNoEncontrado()
	}

	return nil
}

// ListByAspirante retrieves all records of one applicant
func (r *PostgresExpedienteRepository) ListByAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) ([]expediente.Registro, error) {
	query := `
		SELECT ` + registroColumns + `
		FROM expediente_registros
		WHERE aspirante_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, aspiranteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registros := make([]expediente.Registro, 0)
	for rows.Next() {
		registro, err := r.scanRegistro(rows)
		if err != nil {
			return nil, err
		}
		registros = append(registros, *registro)
	}

	return registros, nil
}

// List retrieves records matching the filter with pagination
func (r *PostgresExpedienteRepository) List(ctx context.Context, req expediente.ListarRegistrosRequest) (*kernel.Paginated[expediente.Registro], error) {
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if !req.AspiranteID.IsEmpty() {
		whereClauses = append(whereClauses, fmt.Sprintf(`aspirante_id = $%d`, argCount))
		args = append(args, req.AspiranteID)
		argCount++
	}

	if req.Tipo != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`tipo = $%d`, argCount))
		args = append(args, req.Tipo)
		argCount++
	}

	if req.Revision != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`revision = $%d`, argCount))
		args = append(args, req.Revision)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM expediente_registros %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	offset := (req.Pagination.Page - 1) * req.Pagination.PageSize

	query := fmt.Sprintf(`
		SELECT `+registroColumns+`
		FROM expediente_registros
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereSQL, argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, offset)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registros := make([]expediente.Registro, 0)
	for rows.Next() {
		registro, err := r.scanRegistro(rows)
		if err != nil {
			return nil, err
		}
		registros = append(registros, *registro)
	}

	return kernel.NewPaginated(registros, req.Pagination, total), nil
}

// CountByAspirante counts an applicant's records grouped by type and review status
func (r *PostgresExpedienteRepository) CountByAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) (map[expediente.TipoRegistro]int, map[expediente.EstadoRevision]int, error) {
	query := `
		SELECT tipo, revision, COUNT(*) AS total
		FROM expediente_registros
		WHERE aspirante_id = $1
		GROUP BY tipo, revision
	`

	rows, err := r.db.QueryxContext(ctx, query, aspiranteID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	porTipo := make(map[expediente.TipoRegistro]int)
	porRevision := make(map[expediente.EstadoRevision]int)

	for rows.Next() {
		var tipo expediente.TipoRegistro
		var revision expediente.EstadoRevision
		var total int

		if err := rows.Scan(&tipo, &revision, &total); err != nil {
			return nil, nil, err
		}

		porTipo[tipo] += total
		porRevision[revision] += total
	}

	return porTipo, porRevision, nil
}
