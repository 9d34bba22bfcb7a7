package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Didine-06/travel-agency-sub000/internal/apiclient"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/formflow"
)

// formSession erases the flow's type parameter so the command loop can drive
// whichever form is open.
type formSession interface {
	Set(field, value string) error
	Submit(ctx context.Context)
	Cancel()
	Render() string
	State() formflow.State
}

// destinationForm is the form model behind the destination create/edit
// overlay.
type destinationForm struct {
	ID          string
	Name        string
	City        string
	Country     string
	Description string
}

type destinationFormSession struct {
	flow *formflow.Flow[destinationForm]
}

func newDestinationForm(client *apiclient.Client, onClosed func()) *destinationFormSession {
	flow := formflow.New(formflow.Config[destinationForm]{
		Load: func(ctx context.Context, id string) (destinationForm, error) {
			d, err := client.Destinations().Get(ctx, id)
			if err != nil {
				return destinationForm{}, err
			}
			return destinationForm{ID: d.ID, Name: d.Name, City: d.City, Country: d.Country, Description: d.Description}, nil
		},
		Submit: func(ctx context.Context, v destinationForm) error {
			if v.ID == "" {
				_, err := client.Destinations().Create(ctx, dto.CreateDestinationRequest{
					Name: v.Name, City: v.City, Country: v.Country, Description: v.Description,
				})
				return err
			}
			_, err := client.Destinations().Update(ctx, v.ID, dto.UpdateDestinationRequest{
				Name: v.Name, City: v.City, Country: v.Country, Description: v.Description,
			})
			return err
		},
		Guard: func(v destinationForm) (string, bool) {
			if v.Name == "" || v.City == "" || v.Country == "" {
				return "name, city and country are required", true
			}
			return "", false
		},
		Normalize: func(v destinationForm) destinationForm {
			v.Name = strings.TrimSpace(v.Name)
			v.City = strings.TrimSpace(v.City)
			v.Country = strings.TrimSpace(v.Country)
			v.Description = strings.TrimSpace(v.Description)
			return v
		},
		OnClosed: onClosed,
	})
	return &destinationFormSession{flow: flow}
}

func (s *destinationFormSession) Set(field, value string) error {
	v := s.flow.Values()
	switch field {
	case "name":
		v.Name = value
	case "city":
		v.City = value
	case "country":
		v.Country = value
	case "description":
		v.Description = value
	default:
		return fmt.Errorf("unknown field %q (name, city, country, description)", field)
	}
	s.flow.SetValues(v)
	return nil
}

func (s *destinationFormSession) OpenCreate() { s.flow.OpenCreate(destinationForm{}) }

func (s *destinationFormSession) OpenEdit(ctx context.Context, id string) { s.flow.OpenEdit(ctx, id) }

func (s *destinationFormSession) Submit(ctx context.Context) { s.flow.Submit(ctx) }
func (s *destinationFormSession) Cancel()                    { s.flow.Cancel() }
func (s *destinationFormSession) State() formflow.State      { return s.flow.State() }

func (s *destinationFormSession) Render() string {
	v := s.flow.Values()
	var b strings.Builder
	fmt.Fprintf(&b, "  destination form [%s]\n", s.flow.State())
	fmt.Fprintf(&b, "    name:        %s\n", v.Name)
	fmt.Fprintf(&b, "    city:        %s\n", v.City)
	fmt.Fprintf(&b, "    country:     %s\n", v.Country)
	fmt.Fprintf(&b, "    description: %s\n", v.Description)
	if msg := s.flow.InlineError(); msg != "" {
		fmt.Fprintf(&b, "    ! %s\n", msg)
	}
	return b.String()
}

// ticketForm is the form model behind the flight ticket overlay. Datetimes
// are edited as datetime-local values in the shell's timezone and converted
// to UTC on submit.
type ticketForm struct {
	ID            string
	FlightNumber  string
	Airline       string
	DepartureCity string
	ArrivalCity   string
	Departure     string // local, 2006-01-02T15:04
	Arrival       string
	Price         float64
	Status        string
}

type ticketFormSession struct {
	flow *formflow.Flow[ticketForm]
	loc  *time.Location
}

func newTicketForm(client *apiclient.Client, loc *time.Location, onClosed func()) *ticketFormSession {
	s := &ticketFormSession{loc: loc}
	s.flow = formflow.New(formflow.Config[ticketForm]{
		Load: func(ctx context.Context, id string) (ticketForm, error) {
			t, err := client.FlightTickets().Get(ctx, id)
			if err != nil {
				return ticketForm{}, err
			}
			dep, err := formflow.ToLocalInput(t.DepartureDateTime.Format(time.RFC3339), loc)
			if err != nil {
				return ticketForm{}, err
			}
			arr, err := formflow.ToLocalInput(t.ArrivalDateTime.Format(time.RFC3339), loc)
			if err != nil {
				return ticketForm{}, err
			}
			return ticketForm{
				ID:            t.ID,
				FlightNumber:  t.FlightNumber,
				Airline:       t.Airline,
				DepartureCity: t.DepartureCity,
				ArrivalCity:   t.ArrivalCity,
				Departure:     dep,
				Arrival:       arr,
				Price:         t.Price,
				Status:        string(t.Status),
			}, nil
		},
		Submit: func(ctx context.Context, v ticketForm) error {
			dep, err := formflow.FromLocalInput(v.Departure, loc)
			if err != nil {
				return fmt.Errorf("departure: %w", err)
			}
			arr, err := formflow.FromLocalInput(v.Arrival, loc)
			if err != nil {
				return fmt.Errorf("arrival: %w", err)
			}
			if v.ID == "" {
				_, err := client.FlightTickets().Create(ctx, dto.CreateFlightTicketRequest{
					FlightNumber:      v.FlightNumber,
					Airline:           v.Airline,
					DepartureCity:     v.DepartureCity,
					ArrivalCity:       v.ArrivalCity,
					DepartureDateTime: dep,
					ArrivalDateTime:   arr,
					Price:             v.Price,
				})
				return err
			}
			_, err = client.FlightTickets().Update(ctx, v.ID, dto.UpdateFlightTicketRequest{
				FlightNumber:      v.FlightNumber,
				Airline:           v.Airline,
				DepartureCity:     v.DepartureCity,
				ArrivalCity:       v.ArrivalCity,
				DepartureDateTime: dep,
				ArrivalDateTime:   arr,
				Price:             v.Price,
			})
			return err
		},
		Guard: func(v ticketForm) (string, bool) {
			// A paid ticket is terminal and must not be edited.
			if v.Status == "PAID" {
				return "a paid ticket can no longer be edited", true
			}
			if v.FlightNumber == "" || v.Airline == "" {
				return "flight number and airline are required", true
			}
			return "", false
		},
		Normalize: func(v ticketForm) ticketForm {
			v.FlightNumber = strings.TrimSpace(v.FlightNumber)
			v.Airline = strings.TrimSpace(v.Airline)
			v.DepartureCity = strings.TrimSpace(v.DepartureCity)
			v.ArrivalCity = strings.TrimSpace(v.ArrivalCity)
			return v
		},
		OnClosed: onClosed,
	})
	return s
}

func (s *ticketFormSession) Set(field, value string) error {
	v := s.flow.Values()
	switch field {
	case "flight":
		v.FlightNumber = value
	case "airline":
		v.Airline = value
	case "from":
		v.DepartureCity = value
	case "to":
		v.ArrivalCity = value
	case "departure":
		v.Departure = value
	case "arrival":
		v.Arrival = value
	case "price":
		p, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("price: %w", err)
		}
		v.Price = p
	default:
		return fmt.Errorf("unknown field %q (flight, airline, from, to, departure, arrival, price)", field)
	}
	s.flow.SetValues(v)
	return nil
}

func (s *ticketFormSession) OpenCreate() { s.flow.OpenCreate(ticketForm{}) }

func (s *ticketFormSession) OpenEdit(ctx context.Context, id string) { s.flow.OpenEdit(ctx, id) }

func (s *ticketFormSession) Submit(ctx context.Context) { s.flow.Submit(ctx) }
func (s *ticketFormSession) Cancel()                    { s.flow.Cancel() }
func (s *ticketFormSession) State() formflow.State      { return s.flow.State() }

func (s *ticketFormSession) Render() string {
	v := s.flow.Values()
	var b strings.Builder
	fmt.Fprintf(&b, "  ticket form [%s]\n", s.flow.State())
	fmt.Fprintf(&b, "    flight:    %s (%s)\n", v.FlightNumber, v.Airline)
	fmt.Fprintf(&b, "    route:     %s -> %s\n", v.DepartureCity, v.ArrivalCity)
	fmt.Fprintf(&b, "    departure: %s local\n", v.Departure)
	fmt.Fprintf(&b, "    arrival:   %s local\n", v.Arrival)
	fmt.Fprintf(&b, "    price:     %.2f\n", v.Price)
	if msg := s.flow.InlineError(); msg != "" {
		fmt.Fprintf(&b, "    ! %s\n", msg)
	}
	return b.String()
}
