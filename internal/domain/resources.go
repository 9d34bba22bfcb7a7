package domain

import "time"

// DestinationStatus represents destination visibility
type DestinationStatus string

const (
	DestinationActive   DestinationStatus = "active"
	DestinationInactive DestinationStatus = "inactive"
)

// Destination represents a travel destination entity
type Destination struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Country     string            `json:"country"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Status      DestinationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// PackageStatus represents travel package availability
type PackageStatus string

const (
	PackagePublished PackageStatus = "published"
	PackageDraft     PackageStatus = "draft"
	PackageArchived  PackageStatus = "archived"
)

// TravelPackage represents a sellable tour package
type TravelPackage struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	DestinationID string        `json:"destinationId"`
	Description   string        `json:"description,omitempty"`
	Price         float64       `json:"price"`
	DurationDays  int           `json:"durationDays"`
	Status        PackageStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// TicketStatus represents flight ticket lifecycle state
type TicketStatus string

const (
	TicketReserved  TicketStatus = "RESERVED"
	TicketPaid      TicketStatus = "PAID"
	TicketCancelled TicketStatus = "CANCELLED"
)

// FlightTicket represents a flight ticket entity
type FlightTicket struct {
	ID                string       `json:"id"`
	FlightNumber      string       `json:"flightNumber"`
	Airline           string       `json:"airline"`
	DepartureCity     string       `json:"departureCity"`
	ArrivalCity       string       `json:"arrivalCity"`
	DepartureDateTime time.Time    `json:"departureDateTime"`
	ArrivalDateTime   time.Time    `json:"arrivalDateTime"`
	Price             float64      `json:"price"`
	Status            TicketStatus `json:"status"`
	ClientID          string       `json:"clientId,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// BookingStatus represents booking lifecycle state
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking represents a package booking entity
type Booking struct {
	ID         string        `json:"id"`
	PackageID  string        `json:"packageId"`
	ClientID   string        `json:"clientId"`
	ClientName string        `json:"clientName"`
	StartDate  time.Time     `json:"startDate"`
	Travelers  int           `json:"travelers"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// ConsultationStatus represents consultation lifecycle state
type ConsultationStatus string

const (
	ConsultationOpen   ConsultationStatus = "OPEN"
	ConsultationClosed ConsultationStatus = "CLOSED"
)

// Consultation represents a client consultation request
type Consultation struct {
	ID         string             `json:"id"`
	ClientName string             `json:"clientName"`
	Email      string             `json:"email"`
	Subject    string             `json:"subject"`
	Message    string             `json:"message,omitempty"`
	Status     ConsultationStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}
