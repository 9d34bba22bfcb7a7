package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
)

var (
	ErrTicketPaid      = errors.New("ticket is already paid")
	ErrTicketCancelled = errors.New("ticket is cancelled")
	ErrInvalidDatetime = errors.New("invalid datetime, expected RFC3339")
)

// FlightTicketService manages flight tickets and their status transitions.
type FlightTicketService struct {
	repo repository.ResourceRepository[domain.FlightTicket]
}

// NewFlightTicketService creates a new FlightTicketService
func NewFlightTicketService(repo repository.ResourceRepository[domain.FlightTicket]) *FlightTicketService {
	return &FlightTicketService{repo: repo}
}

func (s *FlightTicketService) List(ctx context.Context) ([]domain.FlightTicket, error) {
	return s.repo.List(ctx)
}

func (s *FlightTicketService) Get(ctx context.Context, id string) (*domain.FlightTicket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightTicketService) Create(ctx context.Context, req *dto.CreateFlightTicketRequest) (*domain.FlightTicket, error) {
	departure, err := time.Parse(time.RFC3339, req.DepartureDateTime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}
	arrival, err := time.Parse(time.RFC3339, req.ArrivalDateTime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	now := time.Now()
	t := &domain.FlightTicket{
		ID:                uuid.New().String(),
		FlightNumber:      strings.TrimSpace(req.FlightNumber),
		Airline:           strings.TrimSpace(req.Airline),
		DepartureCity:     strings.TrimSpace(req.DepartureCity),
		ArrivalCity:       strings.TrimSpace(req.ArrivalCity),
		DepartureDateTime: departure.UTC(),
		ArrivalDateTime:   arrival.UTC(),
		Price:             req.Price,
		Status:            domain.TicketReserved,
		ClientID:          req.ClientID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update edits ticket fields. A paid ticket is terminal and refuses edits,
// matching the client-side guard.
func (s *FlightTicketService) Update(ctx context.Context, id string, req *dto.UpdateFlightTicketRequest) (*domain.FlightTicket, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status == domain.TicketPaid {
		return nil, ErrTicketPaid
	}

	if req.FlightNumber != "" {
		t.FlightNumber = strings.TrimSpace(req.FlightNumber)
	}
	if req.Airline != "" {
		t.Airline = strings.TrimSpace(req.Airline)
	}
	if req.DepartureCity != "" {
		t.DepartureCity = strings.TrimSpace(req.DepartureCity)
	}
	if req.ArrivalCity != "" {
		t.ArrivalCity = strings.TrimSpace(req.ArrivalCity)
	}
	if req.DepartureDateTime != "" {
		departure, err := time.Parse(time.RFC3339, req.DepartureDateTime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		t.DepartureDateTime = departure.UTC()
	}
	if req.ArrivalDateTime != "" {
		arrival, err := time.Parse(time.RFC3339, req.ArrivalDateTime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		t.ArrivalDateTime = arrival.UTC()
	}
	if req.Price > 0 {
		t.Price = req.Price
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *FlightTicketService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *FlightTicketService) DeleteMany(ctx context.Context, ids []string) error {
	return s.repo.DeleteMany(ctx, ids)
}

// MarkPaid transitions RESERVED → PAID
func (s *FlightTicketService) MarkPaid(ctx context.Context, id string) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch t.Status {
	case domain.TicketPaid:
		return ErrTicketPaid
	case domain.TicketCancelled:
		return ErrTicketCancelled
	}
	t.Status = domain.TicketPaid
	t.UpdatedAt = time.Now()
	return s.repo.Update(ctx, t)
}

// Cancel transitions RESERVED → CANCELLED. Paid tickets stay paid.
func (s *FlightTicketService) Cancel(ctx context.Context, id string) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.Status == domain.TicketPaid {
		return ErrTicketPaid
	}
	t.Status = domain.TicketCancelled
	t.UpdatedAt = time.Now()
	return s.repo.Update(ctx, t)
}
