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
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// DestinationService manages the destination catalog.
type DestinationService struct {
	repo repository.ResourceRepository[domain.Destination]
}

// NewDestinationService creates a new DestinationService
func NewDestinationService(repo repository.ResourceRepository[domain.Destination]) *DestinationService {
	return &DestinationService{repo: repo}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.repo.List(ctx)
}

func (s *DestinationService) Get(ctx context.Context, id string) (*domain.Destination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DestinationService) Create(ctx context.Context, req *dto.CreateDestinationRequest) (*domain.Destination, error) {
	now := time.Now()
	d := &domain.Destination{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Status:      domain.DestinationActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DestinationService) Update(ctx context.Context, id string, req *dto.UpdateDestinationRequest) (*domain.Destination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		d.Name = strings.TrimSpace(req.Name)
	}
	if req.City != "" {
		d.City = strings.TrimSpace(req.City)
	}
	if req.Country != "" {
		d.Country = strings.TrimSpace(req.Country)
	}
	if req.Description != "" {
		d.Description = strings.TrimSpace(req.Description)
	}
	if req.ImageURL != "" {
		d.ImageURL = strings.TrimSpace(req.ImageURL)
	}
	d.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *DestinationService) DeleteMany(ctx context.Context, ids []string) error {
	return s.repo.DeleteMany(ctx, ids)
}

// SetStatus flips a destination between active and inactive
func (s *DestinationService) SetStatus(ctx context.Context, id string, status string) error {
	st := domain.DestinationStatus(status)
	if st != domain.DestinationActive && st != domain.DestinationInactive {
		return ErrInvalidStatus
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	d.Status = st
	d.UpdatedAt = time.Now()
	return s.repo.Update(ctx, d)
}

// PackageService manages travel packages.
type PackageService struct {
	repo         repository.ResourceRepository[domain.TravelPackage]
	destinations repository.ResourceRepository[domain.Destination]
}

// NewPackageService creates a new PackageService
func NewPackageService(
	repo repository.ResourceRepository[domain.TravelPackage],
	destinations repository.ResourceRepository[domain.Destination],
) *PackageService {
	return &PackageService{repo: repo, destinations: destinations}
}

func (s *PackageService) List(ctx context.Context) ([]domain.TravelPackage, error) {
	return s.repo.List(ctx)
}

func (s *PackageService) Get(ctx context.Context, id string) (*domain.TravelPackage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PackageService) Create(ctx context.Context, req *dto.CreatePackageRequest) (*domain.TravelPackage, error) {
	if _, err := s.destinations.GetByID(ctx, req.DestinationID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &domain.TravelPackage{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(req.Title),
		DestinationID: req.DestinationID,
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		DurationDays:  req.DurationDays,
		Status:        domain.PackageDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PackageService) Update(ctx context.Context, id string, req *dto.UpdatePackageRequest) (*domain.TravelPackage, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != "" {
		p.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		p.Description = strings.TrimSpace(req.Description)
	}
	if req.Price > 0 {
		p.Price = req.Price
	}
	if req.DurationDays > 0 {
		p.DurationDays = req.DurationDays
	}
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PackageService) DeleteMany(ctx context.Context, ids []string) error {
	return s.repo.DeleteMany(ctx, ids)
}

// SetStatus moves a package between draft, published and archived
func (s *PackageService) SetStatus(ctx context.Context, id string, status string) error {
	st := domain.PackageStatus(status)
	switch st {
	case domain.PackageDraft, domain.PackagePublished, domain.PackageArchived:
	default:
		return ErrInvalidStatus
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = st
	p.UpdatedAt = time.Now()
	return s.repo.Update(ctx, p)
}
