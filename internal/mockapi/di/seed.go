package di

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
)

// SeedPassword is the password shared by every seeded account.
const SeedPassword = "password123"

// Seed loads demo accounts and catalog data so the server is usable right
// after startup. It is idempotent: when the admin account already exists
// the whole seed is skipped.
func Seed(ctx context.Context, c *Container) error {
	exists, err := c.UserRepo.ExistsByEmail(ctx, "admin@travel-agency.dev")
	if err != nil {
		return fmt.Errorf("seed: check existing users: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	now := time.Now()
	users := []domain.User{
		{Email: "admin@travel-agency.dev", FirstName: "Alice", LastName: "Admin", Role: domain.RoleAdmin, LanguageID: "en"},
		{Email: "agent@travel-agency.dev", FirstName: "Boris", LastName: "Agent", Role: domain.RoleAgent, LanguageID: "ru"},
		{Email: "client@travel-agency.dev", FirstName: "Clara", LastName: "Client", Role: domain.RoleClient, LanguageID: "en"},
	}
	clientID := ""
	for i := range users {
		u := users[i]
		u.ID = uuid.New().String()
		u.PasswordHash = string(hash)
		u.IsActive = true
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := c.UserRepo.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed: create user %s: %w", u.Email, err)
		}
		if u.Role == domain.RoleClient {
			clientID = u.ID
		}
	}

	destinations := []domain.Destination{
		{Name: "Paris", City: "Paris", Country: "France", Description: "City of light", Status: domain.DestinationActive},
		{Name: "Istanbul", City: "Istanbul", Country: "Turkiye", Description: "Where continents meet", Status: domain.DestinationActive},
		{Name: "Reykjavik", City: "Reykjavik", Country: "Iceland", Description: "Northern lights", Status: domain.DestinationInactive},
	}
	for i := range destinations {
		d := destinations[i]
		d.ID = uuid.New().String()
		d.CreatedAt = now
		d.UpdatedAt = now
		if err := c.DestinationRepo.Create(ctx, &d); err != nil {
			return fmt.Errorf("seed: create destination %s: %w", d.Name, err)
		}
		destinations[i] = d
	}

	packages := []domain.TravelPackage{
		{Title: "Paris Weekend", DestinationID: destinations[0].ID, Description: "Two nights near the Louvre", Price: 450, DurationDays: 3, Status: domain.PackagePublished},
		{Title: "Bosphorus Week", DestinationID: destinations[1].ID, Description: "Seven days across two continents", Price: 980, DurationDays: 7, Status: domain.PackagePublished},
		{Title: "Aurora Hunt", DestinationID: destinations[2].ID, Description: "Chasing the lights", Price: 1600, DurationDays: 5, Status: domain.PackageDraft},
	}
	for i := range packages {
		p := packages[i]
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := c.PackageRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed: create package %s: %w", p.Title, err)
		}
		packages[i] = p
	}

	departure := now.Add(30 * 24 * time.Hour).Truncate(time.Hour).UTC()
	tickets := []domain.FlightTicket{
		{FlightNumber: "AF1680", Airline: "Air France", DepartureCity: "London", ArrivalCity: "Paris", DepartureDateTime: departure, ArrivalDateTime: departure.Add(80 * time.Minute), Price: 120, Status: domain.TicketReserved, ClientID: clientID},
		{FlightNumber: "TK1980", Airline: "Turkish Airlines", DepartureCity: "Berlin", ArrivalCity: "Istanbul", DepartureDateTime: departure.Add(24 * time.Hour), ArrivalDateTime: departure.Add(27 * time.Hour), Price: 210, Status: domain.TicketPaid, ClientID: clientID},
	}
	for i := range tickets {
		t := tickets[i]
		t.ID = uuid.New().String()
		t.CreatedAt = now
		t.UpdatedAt = now
		if err := c.TicketRepo.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed: create ticket %s: %w", t.FlightNumber, err)
		}
	}

	booking := domain.Booking{
		ID:         uuid.New().String(),
		PackageID:  packages[0].ID,
		ClientID:   clientID,
		ClientName: "Clara Client",
		StartDate:  departure.Add(48 * time.Hour),
		Travelers:  2,
		TotalPrice: packages[0].Price * 2,
		Status:     domain.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.BookingRepo.Create(ctx, &booking); err != nil {
		return fmt.Errorf("seed: create booking: %w", err)
	}

	consultation := domain.Consultation{
		ID:         uuid.New().String(),
		ClientName: "Clara Client",
		Email:      "client@travel-agency.dev",
		Subject:    "Visa requirements",
		Message:    "Do I need a visa for the Bosphorus Week package?",
		Status:     domain.ConsultationOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.ConsultationRepo.Create(ctx, &consultation); err != nil {
		return fmt.Errorf("seed: create consultation: %w", err)
	}

	return nil
}
