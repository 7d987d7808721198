package aspiranteinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
	"github.com/udistrital/unidoc_api/portal/aspirante"
)

type PostgresAspiranteRepository struct {
	db *sqlx.DB
}

func NewPostgresAspiranteRepository(db *sqlx.DB) aspirante.Repository {
	return &PostgresAspiranteRepository{db: db}
}

const aspiranteColumns = `
	id, email, password_hash, primer_nombre, segundo_nombre,
	primer_apellido, segundo_apellido, tipo_identificacion, numero_identificacion,
	fecha_nacimiento, genero, estado_civil, telefono,
	pais_id, departamento_id, municipio_id, rol, estado, archived_at,
	created_at, updated_at
`

// Create creates a new applicant account
func (r *PostgresAspiranteRepository) Create(ctx context.Context, a *aspirante.Aspirante) error {
	query := `
		INSERT INTO aspirantes (` + aspiranteColumns + `) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		a.ID,
		a.Email,
		a.PasswordHash,
		a.PrimerNombre,
		a.SegundoNombre,
		a.PrimerApellido,
		a.SegundoApellido,
		a.Identificacion.Tipo,
		a.Identificacion.Numero,
		a.FechaNacimiento,
		a.Genero,
		a.EstadoCivil,
		a.Telefono,
		a.PaisID,
		a.DepartamentoID,
		a.MunicipioID,
		a.Rol,
		a.Estado,
		a.ArchivedAt,
		a.CreatedAt,
		a.UpdatedAt,
	)

	return err
}

// Update updates an existing applicant
func (r *PostgresAspiranteRepository) Update(ctx context.Context, id kernel.AspiranteID, a *aspirante.Aspirante) error {
	query := `
		UPDATE aspirantes
		SET
			email = $2,
			password_hash = $3,
			telefono = $4,
			estado_civil = $5,
			estado = $6,
			archived_at = $7,
			updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		a.Email,
		a.PasswordHash,
		a.Telefono,
		a.EstadoCivil,
		a.Estado,
		a.ArchivedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return aspirante.ErrAspiranteNoEncontrado()
	}

	return nil
}

func (r *PostgresAspiranteRepository) scanAspirante(row interface{ Scan(...any) error }) (*aspirante.Aspirante, error) {
	var a aspirante.Aspirante
	var segundoNombre, segundoApellido sql.NullString
	var tipoIdentificacion, numeroIdentificacion sql.NullString
	var archivedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.PrimerNombre,
		&segundoNombre,
		&a.PrimerApellido,
		&segundoApellido,
		&tipoIdentificacion,
		&numeroIdentificacion,
		&a.FechaNacimiento,
		&a.Genero,
		&a.EstadoCivil,
		&a.Telefono,
		&a.PaisID,
		&a.DepartamentoID,
		&a.MunicipioID,
		&a.Rol,
		&a.Estado,
		&archivedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if segundoNombre.Valid {
		a.SegundoNombre = segundoNombre.String
	}
	if segundoApellido.Valid {
		a.SegundoApellido = segundoApellido.String
	}
	if tipoIdentificacion.Valid && numeroIdentificacion.Valid {
		a.Identificacion = kernel.Identificacion{
			Tipo:   kernel.TipoIdentificacion(tipoIdentificacion.String),
			Numero: numeroIdentificacion.String,
		}
	}
	if archivedAt.Valid {
		a.ArchivedAt = &archivedAt.Time
	}

	return &a, nil
}

// GetByID retrieves an applicant by ID
func (r *PostgresAspiranteRepository) GetByID(ctx context.Context, id kernel.AspiranteID) (*aspirante.Aspirante, error) {
	query := `SELECT ` + aspiranteColumns + ` FROM aspirantes WHERE id = $1`

	a, err := r.scanAspirante(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, aspirante.ErrAspiranteNoEncontrado()
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// GetByEmail retrieves an applicant by email
func (r *PostgresAspiranteRepository) GetByEmail(ctx context.Context, email kernel.Email) (*aspirante.Aspirante, error) {
	query := `SELECT ` + aspiranteColumns + ` FROM aspirantes WHERE email = $1`

	a, err := r.scanAspirante(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, aspirante.ErrAspiranteNoEncontrado()
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// GetByIdentificacion retrieves an applicant by identity document
func (r *PostgresAspiranteRepository) GetByIdentificacion(ctx context.Context, identificacion kernel.Identificacion) (*aspirante.Aspirante, error) {
	query := `
		SELECT ` + aspiranteColumns + `
		FROM aspirantes
		WHERE tipo_identificacion = $1 AND numero_identificacion = $2
	`

	a, err := r.scanAspirante(r.db.QueryRowContext(ctx, query, identificacion.Tipo, identificacion.Numero))
	if err == sql.ErrNoRows {
		return nil, aspirante.ErrAspiranteNoEncontrado()
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Delete deletes an applicant by ID
func (r *PostgresAspiranteRepository) Delete(ctx context.Context, id kernel.AspiranteID) error {
	query := `DELETE FROM aspirantes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return aspirante.ErrAspiranteNoEncontrado()
	}

	return nil
}

// List retrieves all applicants with pagination
func (r *PostgresAspiranteRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[aspirante.Aspirante], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM aspirantes`); err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	query := `
		SELECT ` + aspiranteColumns + `
		FROM aspirantes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryxContext(ctx, query, pagination.PageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cuentas := make([]aspirante.Aspirante, 0)
	for rows.Next() {
		a, err := r.scanAspirante(rows)
		if err != nil {
			return nil, err
		}
		cuentas = append(cuentas, *a)
	}

	return kernel.NewPaginated(cuentas, pagination, total), nil
}

// Search searches applicants by various criteria
func (r *PostgresAspiranteRepository) Search(ctx context.Context, req aspirante.BuscarAspirantesRequest) (*kernel.Paginated[aspirante.Aspirante], error) {
	// Build WHERE clause dynamically
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Query != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`(
			primer_nombre ILIKE $%d OR
			primer_apellido ILIKE $%d OR
			email ILIKE $%d
		)`, argCount, argCount, argCount))
		args = append(args, "%"+req.Query+"%")
		argCount++
	}

	if req.Email != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`email ILIKE $%d`, argCount))
		args = append(args, "%"+req.Email+"%")
		argCount++
	}

	if req.TipoIdentificacion != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`tipo_identificacion = $%d`, argCount))
		args = append(args, req.TipoIdentificacion)
		argCount++
	}

	if req.Rol != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`rol = $%d`, argCount))
		args = append(args, req.Rol)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM aspirantes %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	offset := (req.Pagination.Page - 1) * req.Pagination.PageSize

	query := fmt.Sprintf(`
		SELECT `+aspiranteColumns+`
		FROM aspirantes
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

	cuentas := make([]aspirante.Aspirante, 0)
	for rows.Next() {
		a, err := r.scanAspirante(rows)
		if err != nil {
			return nil, err
		}
		cuentas = append(cuentas, *a)
	}

	return kernel.NewPaginated(cuentas, req.Pagination, total), nil
}

// Exists checks if an applicant exists by ID
func (r *PostgresAspiranteRepository) Exists(ctx context.Context, id kernel.AspiranteID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM aspirantes WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}
