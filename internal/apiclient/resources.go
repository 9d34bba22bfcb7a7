package apiclient

import (
	"context"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
)

// DestinationService talks to the destination endpoints.
type DestinationService struct {
	c *Client
}

// Destinations returns the destination service
func (c *Client) Destinations() *DestinationService {
	return &DestinationService{c: c}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	if err := s.c.get(ctx, "/api/v1/destinations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DestinationService) Get(ctx context.Context, id string) (*domain.Destination, error) {
	var out domain.Destination
	if err := s.c.get(ctx, "/api/v1/destinations/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DestinationService) Create(ctx context.Context, req dto.CreateDestinationRequest) (*domain.Destination, error) {
	var out domain.Destination
	if err := s.c.post(ctx, "/api/v1/destinations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DestinationService) Update(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*domain.Destination, error) {
	var out domain.Destination
	if err := s.c.put(ctx, "/api/v1/destinations/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/destinations/"+id)
}

func (s *DestinationService) DeleteMany(ctx context.Context, ids []string) error {
	return s.c.post(ctx, "/api/v1/destinations/bulk-delete", dto.BulkDeleteRequest{IDs: ids}, nil)
}

// SetStatus flips a destination between active and inactive
func (s *DestinationService) SetStatus(ctx context.Context, id string, status domain.DestinationStatus) error {
	return s.c.patch(ctx, "/api/v1/destinations/"+id+"/status", dto.SetStatusRequest{Status: string(status)}, nil)
}

// PackageService talks to the travel package endpoints.
type PackageService struct {
	c *Client
}

// Packages returns the travel package service
func (c *Client) Packages() *PackageService {
	return &PackageService{c: c}
}

func (s *PackageService) List(ctx context.Context) ([]domain.TravelPackage, error) {
	var out []domain.TravelPackage
	if err := s.c.get(ctx, "/api/v1/packages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PackageService) Get(ctx context.Context, id string) (*domain.TravelPackage, error) {
	var out domain.TravelPackage
	if err := s.c.get(ctx, "/api/v1/packages/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PackageService) Create(ctx context.Context, req dto.CreatePackageRequest) (*domain.TravelPackage, error) {
	var out domain.TravelPackage
	if err := s.c.post(ctx, "/api/v1/packages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PackageService) Update(ctx context.Context, id string, req dto.UpdatePackageRequest) (*domain.TravelPackage, error) {
	var out domain.TravelPackage
	if err := s.c.put(ctx, "/api/v1/packages/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/packages/"+id)
}

func (s *PackageService) DeleteMany(ctx context.Context, ids []string) error {
	return s.c.post(ctx, "/api/v1/packages/bulk-delete", dto.BulkDeleteRequest{IDs: ids}, nil)
}

// SetStatus moves a package between draft, published and archived
func (s *PackageService) SetStatus(ctx context.Context, id string, status domain.PackageStatus) error {
	return s.c.patch(ctx, "/api/v1/packages/"+id+"/status", dto.SetStatusRequest{Status: string(status)}, nil)
}

// FlightTicketService talks to the flight ticket endpoints.
type FlightTicketService struct {
	c *Client
}

// FlightTickets returns the flight ticket service
func (c *Client) FlightTickets() *FlightTicketService {
	return &FlightTicketService{c: c}
}

func (s *FlightTicketService) List(ctx context.Context) ([]domain.FlightTicket, error) {
	var out []domain.FlightTicket
	if err := s.c.get(ctx, "/api/v1/flight-tickets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FlightTicketService) Get(ctx context.Context, id string) (*domain.FlightTicket, error) {
	var out domain.FlightTicket
	if err := s.c.get(ctx, "/api/v1/flight-tickets/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FlightTicketService) Create(ctx context.Context, req dto.CreateFlightTicketRequest) (*domain.FlightTicket, error) {
	var out domain.FlightTicket
	if err := s.c.post(ctx, "/api/v1/flight-tickets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FlightTicketService) Update(ctx context.Context, id string, req dto.UpdateFlightTicketRequest) (*domain.FlightTicket, error) {
	var out domain.FlightTicket
	if err := s.c.put(ctx, "/api/v1/flight-tickets/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FlightTicketService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/flight-tickets/"+id)
}

func (s *FlightTicketService) DeleteMany(ctx context.Context, ids []string) error {
	return s.c.post(ctx, "/api/v1/flight-tickets/bulk-delete", dto.BulkDeleteRequest{IDs: ids}, nil)
}

// MarkPaid transitions a reserved ticket to PAID
func (s *FlightTicketService) MarkPaid(ctx context.Context, id string) error {
	return s.c.patch(ctx, "/api/v1/flight-tickets/"+id+"/pay", nil, nil)
}

// Cancel transitions a ticket to CANCELLED
func (s *FlightTicketService) Cancel(ctx context.Context, id string) error {
	return s.c.patch(ctx, "/api/v1/flight-tickets/"+id+"/cancel", nil, nil)
}

// BookingService talks to the booking endpoints.
type BookingService struct {
	c *Client
}

// Bookings returns the booking service
func (c *Client) Bookings() *BookingService {
	return &BookingService{c: c}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := s.c.get(ctx, "/api/v1/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	var out domain.Booking
	if err := s.c.get(ctx, "/api/v1/bookings/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := s.c.post(ctx, "/api/v1/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/bookings/"+id)
}

func (s *BookingService) DeleteMany(ctx context.Context, ids []string) error {
	return s.c.post(ctx, "/api/v1/bookings/bulk-delete", dto.BulkDeleteRequest{IDs: ids}, nil)
}

// Confirm transitions a pending booking to CONFIRMED
func (s *BookingService) Confirm(ctx context.Context, id string) error {
	return s.c.patch(ctx, "/api/v1/bookings/"+id+"/confirm", nil, nil)
}

// Cancel transitions a booking to CANCELLED
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	return s.c.patch(ctx, "/api/v1/bookings/"+id+"/cancel", nil, nil)
}

// ConsultationService talks to the consultation endpoints.
type ConsultationService struct {
	c *Client
}

// Consultations returns the consultation service
func (c *Client) Consultations() *ConsultationService {
	return &ConsultationService{c: c}
}

func (s *ConsultationService) List(ctx context.Context) ([]domain.Consultation, error) {
	var out []domain.Consultation
	if err := s.c.get(ctx, "/api/v1/consultations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ConsultationService) Get(ctx context.Context, id string) (*domain.Consultation, error) {
	var out domain.Consultation
	if err := s.c.get(ctx, "/api/v1/consultations/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ConsultationService) Create(ctx context.Context, req dto.CreateConsultationRequest) (*domain.Consultation, error) {
	var out domain.Consultation
	if err := s.c.post(ctx, "/api/v1/consultations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ConsultationService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/consultations/"+id)
}

func (s *ConsultationService) DeleteMany(ctx context.Context, ids []string) error {
	return s.c.post(ctx, "/api/v1/consultations/bulk-delete", dto.BulkDeleteRequest{IDs: ids}, nil)
}

// Close transitions an open consultation to CLOSED
func (s *ConsultationService) Close(ctx context.Context, id string) error {
	return s.c.patch(ctx, "/api/v1/consultations/"+id+"/close", nil, nil)
}
