package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"stockyard/internal/repositories"
	"stockyard/internal/services"
)

// StatsProviders collects every service with a cached Stats aggregate.
type StatsProviders struct {
	Warehouses services.WarehouseService
	Zones      services.ZoneService
	Locations  services.LocationService
	Customers  services.CustomerService
	Suppliers  services.SupplierService
	Items      services.ItemService
	Doors      services.DoorService
	Users      services.UserService
}

// Scheduler runs the periodic stats-cache warm job so dashboard /stats
// calls hit Redis instead of paying the SQL aggregation.
type Scheduler struct {
	scheduler gocron.Scheduler
	tenants   repositories.TenantRepository
	providers StatsProviders
	interval  time.Duration
}

func NewScheduler(tenants repositories.TenantRepository, providers StatsProviders, interval time.Duration) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		scheduler: scheduler,
		tenants:   tenants,
		providers: providers,
		interval:  interval,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.warmStatsCaches),
		gocron.WithName("stats-cache-warm"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	log.Info().Dur("interval", s.interval).Msg("starting background scheduler")
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	log.Info().Msg("stopping background scheduler")
	return s.scheduler.Shutdown()
}

// warmStatsCaches recomputes every tenant's aggregates; the Stats calls
// write through to Redis as a side effect. Tenants are paged so a large
// install does not hold one long transaction.
func (s *Scheduler) warmStatsCaches() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		tenants, err := s.tenants.List(ctx, pageSize, offset)
		if err != nil {
			log.Error().Err(err).Msg("stats warm: listing tenants failed")
			return
		}
		if len(tenants) == 0 {
			return
		}

		for _, tenant := range tenants {
			warmers := []struct {
				name string
				fn   func() error
			}{
				{"warehouses", func() error { _, err := s.providers.Warehouses.Stats(ctx, tenant.ID); return err }},
				{"zones", func() error { _, err := s.providers.Zones.Stats(ctx, tenant.ID); return err }},
				{"locations", func() error { _, err := s.providers.Locations.Stats(ctx, tenant.ID); return err }},
				{"customers", func() error { _, err := s.providers.Customers.Stats(ctx, tenant.ID); return err }},
				{"suppliers", func() error { _, err := s.providers.Suppliers.Stats(ctx, tenant.ID); return err }},
				{"items", func() error { _, err := s.providers.Items.Stats(ctx, tenant.ID); return err }},
				{"doors", func() error { _, err := s.providers.Doors.Stats(ctx, tenant.ID); return err }},
				{"users", func() error { _, err := s.providers.Users.Stats(ctx, tenant.ID); return err }},
			}
			for _, w := range warmers {
				if err := w.fn(); err != nil {
					log.Warn().Err(err).
						Str("tenant", tenant.ID.String()).
						Str("resource", w.name).
						Msg("stats warm failed")
				}
			}
		}

		if len(tenants) < pageSize {
			return
		}
	}
}
