package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
)

// BookingService manages package bookings and their status transitions.
type BookingService struct {
	repo     repository.ResourceRepository[domain.Booking]
	packages repository.ResourceRepository[domain.TravelPackage]
}

// NewBookingService creates a new BookingService
func NewBookingService(
	repo repository.ResourceRepository[domain.Booking],
	packages repository.ResourceRepository[domain.TravelPackage],
) *BookingService {
	return &BookingService{repo: repo, packages: packages}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.List(ctx)
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, clientID string, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	pkg, err := s.packages.GetByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	now := time.Now()
	b := &domain.Booking{
		ID:         uuid.New().String(),
		PackageID:  pkg.ID,
		ClientID:   clientID,
		ClientName: strings.TrimSpace(req.ClientName),
		StartDate:  startDate,
		Travelers:  req.Travelers,
		TotalPrice: pkg.Price * float64(req.Travelers),
		Status:     domain.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *BookingService) DeleteMany(ctx context.Context, ids []string) error {
	return s.repo.DeleteMany(ctx, ids)
}

// Confirm transitions PENDING → CONFIRMED
func (s *BookingService) Confirm(ctx context.Context, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status != domain.BookingPending {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingConfirmed
	b.UpdatedAt = time.Now()
	return s.repo.Update(ctx, b)
}

// Cancel transitions PENDING or CONFIRMED → CANCELLED
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == domain.BookingCancelled {
		return ErrInvalidTransition
	}
	b.Status = domain.BookingCancelled
	b.UpdatedAt = time.Now()
	return s.repo.Update(ctx, b)
}
