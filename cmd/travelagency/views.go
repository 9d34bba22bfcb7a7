package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Didine-06/travel-agency-sub000/internal/apiclient"
	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/listview"
)

// resourceView erases the controller's type parameter so the command loop
// can treat every resource list uniformly.
type resourceView struct {
	name        string
	load        func(ctx context.Context, silent bool)
	setQuery    func(q string)
	setPage     func(p int)
	setPageSize func(size int)
	toggle      func(id string)
	toggleAll   func()
	selected    func() []string
	requestOne  func(id string)
	requestSel  func()
	pending     func() []string
	cancel      func()
	confirm     func(ctx context.Context)
	render      func() string
	notice      func() *listview.Notice
	clearNotice func()
	// transitions maps a verb to its status operation.
	transitions map[string]func(ctx context.Context, id string) error
	transition  func(ctx context.Context, id string, op func(ctx context.Context, id string) error, msg string)
}

func newResourceView[T any](name string, ctrl *listview.Controller[T], row func(T) string) *resourceView {
	return &resourceView{
		name:        name,
		load:        ctrl.Load,
		setQuery:    ctrl.SetQuery,
		setPage:     ctrl.SetPage,
		setPageSize: ctrl.SetPageSize,
		toggle:      ctrl.ToggleSelect,
		toggleAll:   ctrl.ToggleSelectAll,
		selected:    ctrl.SelectedIDs,
		requestOne:  ctrl.RequestDelete,
		requestSel:  ctrl.RequestDeleteSelected,
		pending:     ctrl.PendingDeleteIDs,
		cancel:      ctrl.CancelDelete,
		confirm:     ctrl.ConfirmDelete,
		notice:      ctrl.Notice,
		clearNotice: ctrl.ClearNotice,
		transitions: map[string]func(ctx context.Context, id string) error{},
		transition:  ctrl.Transition,
		render: func() string {
			var b strings.Builder
			items := ctrl.PageItems()
			for _, item := range items {
				b.WriteString("  ")
				b.WriteString(row(item))
				b.WriteString("\n")
			}
			if len(items) == 0 {
				b.WriteString("  (no items)\n")
			}
			fmt.Fprintf(&b, "  page %d/%d, %d of %d items match\n",
				ctrl.CurrentPage(), ctrl.TotalPages(), len(ctrl.Filtered()), len(ctrl.Items()))
			return b.String()
		},
	}
}

func buildViews(client *apiclient.Client) map[string]*resourceView {
	views := make(map[string]*resourceView)

	destinations := listview.New(listview.Config[domain.Destination]{
		Fetch: client.Destinations().List,
		ID:    func(d domain.Destination) string { return d.ID },
		MatchFields: func(d domain.Destination) []string {
			return []string{d.Name, d.City, d.Country}
		},
		DeleteOne:  client.Destinations().Delete,
		DeleteMany: client.Destinations().DeleteMany,
	})
	dv := newResourceView("destinations", destinations, func(d domain.Destination) string {
		return fmt.Sprintf("%s  %-20s %-15s %-15s %s", d.ID, d.Name, d.City, d.Country, d.Status)
	})
	dv.transitions["activate"] = func(ctx context.Context, id string) error {
		return client.Destinations().SetStatus(ctx, id, domain.DestinationActive)
	}
	dv.transitions["deactivate"] = func(ctx context.Context, id string) error {
		return client.Destinations().SetStatus(ctx, id, domain.DestinationInactive)
	}
	views["destinations"] = dv

	packages := listview.New(listview.Config[domain.TravelPackage]{
		Fetch: client.Packages().List,
		ID:    func(p domain.TravelPackage) string { return p.ID },
		MatchFields: func(p domain.TravelPackage) []string {
			return []string{p.Title, p.Description}
		},
		DeleteOne:  client.Packages().Delete,
		DeleteMany: client.Packages().DeleteMany,
	})
	pv := newResourceView("packages", packages, func(p domain.TravelPackage) string {
		return fmt.Sprintf("%s  %-24s %8.2f  %dd  %s", p.ID, p.Title, p.Price, p.DurationDays, p.Status)
	})
	for verb, status := range map[string]domain.PackageStatus{
		"publish": domain.PackagePublished,
		"archive": domain.PackageArchived,
		"draft":   domain.PackageDraft,
	} {
		status := status
		pv.transitions[verb] = func(ctx context.Context, id string) error {
			return client.Packages().SetStatus(ctx, id, status)
		}
	}
	views["packages"] = pv

	tickets := listview.New(listview.Config[domain.FlightTicket]{
		Fetch: client.FlightTickets().List,
		ID:    func(t domain.FlightTicket) string { return t.ID },
		MatchFields: func(t domain.FlightTicket) []string {
			return []string{t.FlightNumber, t.Airline, t.DepartureCity, t.ArrivalCity}
		},
		DeleteOne:  client.FlightTickets().Delete,
		DeleteMany: client.FlightTickets().DeleteMany,
	})
	tv := newResourceView("tickets", tickets, func(t domain.FlightTicket) string {
		return fmt.Sprintf("%s  %-7s %-10s -> %-10s %s  %8.2f  %s",
			t.ID, t.FlightNumber, t.DepartureCity, t.ArrivalCity,
			t.DepartureDateTime.Format(time.RFC3339), t.Price, t.Status)
	})
	tv.transitions["pay"] = client.FlightTickets().MarkPaid
	tv.transitions["cancel"] = client.FlightTickets().Cancel
	views["tickets"] = tv

	bookings := listview.New(listview.Config[domain.Booking]{
		Fetch: client.Bookings().List,
		ID:    func(b domain.Booking) string { return b.ID },
		MatchFields: func(b domain.Booking) []string {
			return []string{b.ClientName, b.PackageID}
		},
		DeleteOne:  client.Bookings().Delete,
		DeleteMany: client.Bookings().DeleteMany,
	})
	bv := newResourceView("bookings", bookings, func(b domain.Booking) string {
		return fmt.Sprintf("%s  %-18s %s  x%d  %8.2f  %s",
			b.ID, b.ClientName, b.StartDate.Format("2006-01-02"), b.Travelers, b.TotalPrice, b.Status)
	})
	bv.transitions["confirm"] = client.Bookings().Confirm
	bv.transitions["cancel"] = client.Bookings().Cancel
	views["bookings"] = bv

	consultations := listview.New(listview.Config[domain.Consultation]{
		Fetch: client.Consultations().List,
		ID:    func(c domain.Consultation) string { return c.ID },
		MatchFields: func(c domain.Consultation) []string {
			return []string{c.ClientName, c.Email, c.Subject}
		},
		DeleteOne:  client.Consultations().Delete,
		DeleteMany: client.Consultations().DeleteMany,
	})
	cv := newResourceView("consultations", consultations, func(c domain.Consultation) string {
		return fmt.Sprintf("%s  %-18s %-28s %s", c.ID, c.ClientName, c.Subject, c.Status)
	})
	cv.transitions["close"] = client.Consultations().Close
	views["consultations"] = cv

	return views
}
