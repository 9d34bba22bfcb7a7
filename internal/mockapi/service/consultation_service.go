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

// ConsultationService manages client consultation requests.
type ConsultationService struct {
	repo repository.ResourceRepository[domain.Consultation]
}

// NewConsultationService creates a new ConsultationService
func NewConsultationService(repo repository.ResourceRepository[domain.Consultation]) *ConsultationService {
	return &ConsultationService{repo: repo}
}

func (s *ConsultationService) List(ctx context.Context) ([]domain.Consultation, error) {
	return s.repo.List(ctx)
}

func (s *ConsultationService) Get(ctx context.Context, id string) (*domain.Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConsultationService) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*domain.Consultation, error) {
	now := time.Now()
	c := &domain.Consultation{
		ID:         uuid.New().String(),
		ClientName: strings.TrimSpace(req.ClientName),
		Email:      strings.TrimSpace(req.Email),
		Subject:    strings.TrimSpace(req.Subject),
		Message:    strings.TrimSpace(req.Message),
		Status:     domain.ConsultationOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ConsultationService) DeleteMany(ctx context.Context, ids []string) error {
	return s.repo.DeleteMany(ctx, ids)
}

// Close transitions OPEN → CLOSED
func (s *ConsultationService) Close(ctx context.Context, id string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status != domain.ConsultationOpen {
		return ErrInvalidTransition
	}
	c.Status = domain.ConsultationClosed
	c.UpdatedAt = time.Now()
	return s.repo.Update(ctx, c)
}
