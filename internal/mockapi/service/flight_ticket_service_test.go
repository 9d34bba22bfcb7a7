package service

import (
	"context"
	"testing"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
)

func newTicketService() *FlightTicketService {
	repo := repository.NewMemoryResourceRepository(func(t *domain.FlightTicket) string { return t.ID })
	return NewFlightTicketService(repo)
}

func createTicket(t *testing.T, svc *FlightTicketService) *domain.FlightTicket {
	t.Helper()
	ticket, err := svc.Create(context.Background(), &dto.CreateFlightTicketRequest{
		FlightNumber:      "AF1680",
		Airline:           "Air France",
		DepartureCity:     "London",
		ArrivalCity:       "Paris",
		DepartureDateTime: "2025-06-01T10:00:00Z",
		ArrivalDateTime:   "2025-06-01T11:20:00Z",
		Price:             120,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return ticket
}

func TestCreateTicketNormalizesToUTC(t *testing.T) {
	svc := newTicketService()
	ticket, err := svc.Create(context.Background(), &dto.CreateFlightTicketRequest{
		FlightNumber:      " AF1680 ",
		Airline:           "Air France",
		DepartureCity:     "London",
		ArrivalCity:       "Paris",
		DepartureDateTime: "2025-06-01T12:00:00+02:00",
		ArrivalDateTime:   "2025-06-01T13:20:00+02:00",
		Price:             120,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if ticket.Status != domain.TicketReserved {
		t.Errorf("new tickets start RESERVED, got %s", ticket.Status)
	}
	if ticket.FlightNumber != "AF1680" {
		t.Errorf("expected trimmed flight number, got %q", ticket.FlightNumber)
	}
	if got := ticket.DepartureDateTime.Format("2006-01-02T15:04:05Z"); got != "2025-06-01T10:00:00Z" {
		t.Errorf("expected UTC departure, got %s", got)
	}
}

func TestCreateTicketRejectsBadDatetime(t *testing.T) {
	svc := newTicketService()
	_, err := svc.Create(context.Background(), &dto.CreateFlightTicketRequest{
		FlightNumber:      "AF1",
		Airline:           "AF",
		DepartureCity:     "A",
		ArrivalCity:       "B",
		DepartureDateTime: "June 1st",
		ArrivalDateTime:   "2025-06-01T11:00:00Z",
		Price:             1,
	})
	if err != ErrInvalidDatetime {
		t.Errorf("expected ErrInvalidDatetime, got %v", err)
	}
}

func TestMarkPaidLifecycle(t *testing.T) {
	svc := newTicketService()
	ticket := createTicket(t, svc)
	ctx := context.Background()

	if err := svc.MarkPaid(ctx, ticket.ID); err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	got, _ := svc.Get(ctx, ticket.ID)
	if got.Status != domain.TicketPaid {
		t.Errorf("expected PAID, got %s", got.Status)
	}

	if err := svc.MarkPaid(ctx, ticket.ID); err != ErrTicketPaid {
		t.Errorf("paying twice should fail with ErrTicketPaid, got %v", err)
	}
}

func TestPaidTicketIsTerminal(t *testing.T) {
	svc := newTicketService()
	ticket := createTicket(t, svc)
	ctx := context.Background()
	if err := svc.MarkPaid(ctx, ticket.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(ctx, ticket.ID, &dto.UpdateFlightTicketRequest{Airline: "KLM"}); err != ErrTicketPaid {
		t.Errorf("editing a paid ticket must fail, got %v", err)
	}
	if err := svc.Cancel(ctx, ticket.ID); err != ErrTicketPaid {
		t.Errorf("cancelling a paid ticket must fail, got %v", err)
	}
}

func TestCancelReservedTicket(t *testing.T) {
	svc := newTicketService()
	ticket := createTicket(t, svc)
	ctx := context.Background()

	if err := svc.Cancel(ctx, ticket.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	got, _ := svc.Get(ctx, ticket.ID)
	if got.Status != domain.TicketCancelled {
		t.Errorf("expected CANCELLED, got %s", got.Status)
	}

	if err := svc.MarkPaid(ctx, ticket.ID); err != ErrTicketCancelled {
		t.Errorf("paying a cancelled ticket must fail, got %v", err)
	}
}

func TestTicketDeleteMany(t *testing.T) {
	svc := newTicketService()
	a := createTicket(t, svc)
	b := createTicket(t, svc)
	createTicket(t, svc)
	ctx := context.Background()

	if err := svc.DeleteMany(ctx, []string{a.ID, b.ID}); err != nil {
		t.Fatalf("DeleteMany failed: %v", err)
	}
	left, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 {
		t.Errorf("expected 1 ticket left, got %d", len(left))
	}
}
