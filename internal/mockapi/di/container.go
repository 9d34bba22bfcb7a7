package di

import (
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/handler"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

// Container holds all dependencies for the dev API server
type Container struct {
	// Infrastructure
	Pool   *pgxpool.Pool
	Redis  *goredis.Client
	Tokens *token.Manager

	// Repositories
	UserRepo         repository.UserRepository
	SessionRepo      repository.SessionRepository
	DestinationRepo  repository.ResourceRepository[domain.Destination]
	PackageRepo      repository.ResourceRepository[domain.TravelPackage]
	TicketRepo       repository.ResourceRepository[domain.FlightTicket]
	BookingRepo      repository.ResourceRepository[domain.Booking]
	ConsultationRepo repository.ResourceRepository[domain.Consultation]

	// Services
	AuthService         *service.AuthService
	DestinationService  *service.DestinationService
	PackageService      *service.PackageService
	TicketService       *service.FlightTicketService
	BookingService      *service.BookingService
	ConsultationService *service.ConsultationService

	// Handlers
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	DestinationHandler  *handler.DestinationHandler
	PackageHandler      *handler.PackageHandler
	TicketHandler       *handler.FlightTicketHandler
	BookingHandler      *handler.BookingHandler
	ConsultationHandler *handler.ConsultationHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	// Pool is optional; when nil every repository runs in memory.
	Pool *pgxpool.Pool
	// Redis is optional; when nil token revocation is tracked in memory.
	Redis  *goredis.Client
	Tokens *token.Manager
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Pool:   cfg.Pool,
		Redis:  cfg.Redis,
		Tokens: cfg.Tokens,
	}

	// Initialize repositories. Users, destinations and flight tickets have
	// Postgres implementations; the remaining resources always run in memory.
	if c.Pool != nil {
		c.UserRepo = repository.NewPostgresUserRepository(c.Pool)
		c.DestinationRepo = repository.NewPostgresDestinationRepository(c.Pool)
		c.TicketRepo = repository.NewPostgresFlightTicketRepository(c.Pool)
	} else {
		c.UserRepo = repository.NewMemoryUserRepository()
		c.DestinationRepo = repository.NewMemoryResourceRepository(func(d *domain.Destination) string { return d.ID })
		c.TicketRepo = repository.NewMemoryResourceRepository(func(t *domain.FlightTicket) string { return t.ID })
	}
	if c.Redis != nil {
		c.SessionRepo = repository.NewRedisSessionRepository(c.Redis)
	} else {
		c.SessionRepo = repository.NewMemorySessionRepository()
	}
	c.PackageRepo = repository.NewMemoryResourceRepository(func(p *domain.TravelPackage) string { return p.ID })
	c.BookingRepo = repository.NewMemoryResourceRepository(func(b *domain.Booking) string { return b.ID })
	c.ConsultationRepo = repository.NewMemoryResourceRepository(func(cn *domain.Consultation) string { return cn.ID })

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, c.SessionRepo, c.Tokens)
	c.DestinationService = service.NewDestinationService(c.DestinationRepo)
	c.PackageService = service.NewPackageService(c.PackageRepo, c.DestinationRepo)
	c.TicketService = service.NewFlightTicketService(c.TicketRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.PackageRepo)
	c.ConsultationService = service.NewConsultationService(c.ConsultationRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.Pool, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.DestinationHandler = handler.NewDestinationHandler(c.DestinationService)
	c.PackageHandler = handler.NewPackageHandler(c.PackageService)
	c.TicketHandler = handler.NewFlightTicketHandler(c.TicketService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.ConsultationHandler = handler.NewConsultationHandler(c.ConsultationService)

	return c
}
