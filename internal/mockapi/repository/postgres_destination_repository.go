package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
)

// PostgresDestinationRepository implements ResourceRepository[domain.Destination]
// using PostgreSQL
type PostgresDestinationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDestinationRepository creates a new PostgresDestinationRepository
func NewPostgresDestinationRepository(pool *pgxpool.Pool) *PostgresDestinationRepository {
	return &PostgresDestinationRepository{pool: pool}
}

const destinationColumns = `id, name, city, country, description, image_url, status, created_at, updated_at`

func scanDestination(row pgx.Row) (*domain.Destination, error) {
	d := &domain.Destination{}
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.City,
		&d.Country,
		&d.Description,
		&d.ImageURL,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *PostgresDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *PostgresDestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *PostgresDestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	query := `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.Name, d.City, d.Country, d.Description, d.ImageURL, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	return err
}

func (r *PostgresDestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	query := `
		UPDATE destinations
		SET name = $2, city = $3, country = $4, description = $5,
		    image_url = $6, status = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		d.ID, d.Name, d.City, d.Country, d.Description, d.ImageURL, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresDestinationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresDestinationRepository) DeleteMany(ctx context.Context, ids []string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM destinations WHERE id = ANY($1)`, ids)
	return err
}
