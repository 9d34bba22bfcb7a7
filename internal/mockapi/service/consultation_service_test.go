package service

import (
	"context"
	"testing"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
)

func TestConsultationLifecycle(t *testing.T) {
	repo := repository.NewMemoryResourceRepository(func(c *domain.Consultation) string { return c.ID })
	svc := NewConsultationService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, &dto.CreateConsultationRequest{
		ClientName: "  Clara Client ",
		Email:      "client@example.com",
		Subject:    "Visa requirements",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.ClientName != "Clara Client" {
		t.Errorf("expected trimmed name, got %q", c.ClientName)
	}
	if c.Status != domain.ConsultationOpen {
		t.Errorf("new consultations start OPEN, got %s", c.Status)
	}

	if err := svc.Close(ctx, c.ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	got, _ := svc.Get(ctx, c.ID)
	if got.Status != domain.ConsultationClosed {
		t.Errorf("expected CLOSED, got %s", got.Status)
	}

	if err := svc.Close(ctx, c.ID); err != ErrInvalidTransition {
		t.Errorf("closing twice must fail, got %v", err)
	}
}
