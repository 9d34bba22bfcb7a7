package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
)

// PostgresFlightTicketRepository implements
// ResourceRepository[domain.FlightTicket] using PostgreSQL
type PostgresFlightTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFlightTicketRepository creates a new PostgresFlightTicketRepository
func NewPostgresFlightTicketRepository(pool *pgxpool.Pool) *PostgresFlightTicketRepository {
	return &PostgresFlightTicketRepository{pool: pool}
}

const ticketColumns = `id, flight_number, airline, departure_city, arrival_city,
	departure_datetime, arrival_datetime, price, status, client_id, created_at, updated_at`

func scanTicket(row pgx.Row) (*domain.FlightTicket, error) {
	t := &domain.FlightTicket{}
	err := row.Scan(
		&t.ID,
		&t.FlightNumber,
		&t.Airline,
		&t.DepartureCity,
		&t.ArrivalCity,
		&t.DepartureDateTime,
		&t.ArrivalDateTime,
		&t.Price,
		&t.Status,
		&t.ClientID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresFlightTicketRepository) List(ctx context.Context) ([]domain.FlightTicket, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ticketColumns+` FROM flight_tickets ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FlightTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *PostgresFlightTicketRepository) GetByID(ctx context.Context, id string) (*domain.FlightTicket, error) {
	t, err := scanTicket(r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM flight_tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *PostgresFlightTicketRepository) Create(ctx context.Context, t *domain.FlightTicket) error {
	query := `
		INSERT INTO flight_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.FlightNumber, t.Airline, t.DepartureCity, t.ArrivalCity,
		t.DepartureDateTime, t.ArrivalDateTime, t.Price, t.Status, t.ClientID,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *PostgresFlightTicketRepository) Update(ctx context.Context, t *domain.FlightTicket) error {
	query := `
		UPDATE flight_tickets
		SET flight_number = $2, airline = $3, departure_city = $4, arrival_city = $5,
		    departure_datetime = $6, arrival_datetime = $7, price = $8, status = $9,
		    client_id = $10, updated_at = $11
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		t.ID, t.FlightNumber, t.Airline, t.DepartureCity, t.ArrivalCity,
		t.DepartureDateTime, t.ArrivalDateTime, t.Price, t.Status, t.ClientID,
		t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresFlightTicketRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM flight_tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresFlightTicketRepository) DeleteMany(ctx context.Context, ids []string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM flight_tickets WHERE id = ANY($1)`, ids)
	return err
}
