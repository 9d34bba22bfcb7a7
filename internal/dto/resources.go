package dto

// CreateDestinationRequest represents destination creation payload
type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// UpdateDestinationRequest represents destination update payload. Empty
// fields are left unchanged.
type UpdateDestinationRequest struct {
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// SetStatusRequest carries a single status transition value
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePackageRequest represents travel package creation payload
type CreatePackageRequest struct {
	Title         string  `json:"title" binding:"required"`
	DestinationID string  `json:"destinationId" binding:"required"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	DurationDays  int     `json:"durationDays" binding:"required,gt=0"`
}

// UpdatePackageRequest represents travel package update payload
type UpdatePackageRequest struct {
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price,omitempty"`
	DurationDays int     `json:"durationDays,omitempty"`
}

// CreateFlightTicketRequest represents flight ticket creation payload.
// Datetimes are RFC3339 in UTC.
type CreateFlightTicketRequest struct {
	FlightNumber      string  `json:"flightNumber" binding:"required"`
	Airline           string  `json:"airline" binding:"required"`
	DepartureCity     string  `json:"departureCity" binding:"required"`
	ArrivalCity       string  `json:"arrivalCity" binding:"required"`
	DepartureDateTime string  `json:"departureDateTime" binding:"required"`
	ArrivalDateTime   string  `json:"arrivalDateTime" binding:"required"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	ClientID          string  `json:"clientId,omitempty"`
}

// UpdateFlightTicketRequest represents flight ticket update payload
type UpdateFlightTicketRequest struct {
	FlightNumber      string  `json:"flightNumber,omitempty"`
	Airline           string  `json:"airline,omitempty"`
	DepartureCity     string  `json:"departureCity,omitempty"`
	ArrivalCity       string  `json:"arrivalCity,omitempty"`
	DepartureDateTime string  `json:"departureDateTime,omitempty"`
	ArrivalDateTime   string  `json:"arrivalDateTime,omitempty"`
	Price             float64 `json:"price,omitempty"`
}

// CreateBookingRequest represents booking creation payload
type CreateBookingRequest struct {
	PackageID  string `json:"packageId" binding:"required"`
	ClientName string `json:"clientName" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	Travelers  int    `json:"travelers" binding:"required,gt=0"`
}

// CreateConsultationRequest represents consultation creation payload
type CreateConsultationRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Subject    string `json:"subject" binding:"required"`
	Message    string `json:"message,omitempty"`
}

// BulkDeleteRequest carries the full id list of a bulk delete in one request
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
