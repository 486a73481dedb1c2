package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/settings"
)

const (
	kmPerDegreeLatitude = 111.32
	demoRadiusKm        = 8.0
)

var (
	demoFirstNames = []string{"Anna", "Ben", "Clara", "David", "Elif", "Felix", "Greta", "Hamid", "Ines", "Jonas"}
	demoLastNames  = []string{"Schmidt", "Yilmaz", "Weber", "Novak", "Fischer", "Rossi", "Becker", "Kowalski"}
	demoStreets    = []string{"Torstrasse", "Invalidenstrasse", "Karl-Marx-Allee", "Schoenhauser Allee", "Oranienstrasse", "Kantstrasse"}
)

// InitializeDatabaseCommandHandler resets the database and fills it with demo
// data. Orders are scattered within a few kilometres of the depot so every
// courier type can reach them; their addresses are synthetic and already
// carry coordinates, so nothing is geocoded.
type InitializeDatabaseCommandHandler struct {
	reset  *ResetDatabaseCommandHandler
	random *rand.Rand
	logger *slog.Logger
}

// NewInitializeDatabaseCommandHandler uses random for every generated value;
// a seeded source yields the same demo data on every run.
func NewInitializeDatabaseCommandHandler(
	reset *ResetDatabaseCommandHandler,
	random *rand.Rand,
	logger *slog.Logger,
) *InitializeDatabaseCommandHandler {
	return &InitializeDatabaseCommandHandler{
		reset:  reset,
		random: random,
		logger: logger.With("component", "initialize_database"),
	}
}

func (h *InitializeDatabaseCommandHandler) Handle(ctx context.Context, cmd InitializeDatabaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.reset.section.Lock()
	defer h.reset.section.Unlock()

	if err := h.reset.reset(ctx); err != nil {
		return err
	}
	cfg := h.reset.settings.Get()

	uow := h.reset.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for i := range cmd.Couriers() {
		c, err := h.demoCourier(int64(i+1), cfg)
		if err != nil {
			return fmt.Errorf("demo courier %d: %w", i+1, err)
		}
		if err = uow.CourierRepository().Add(ctx, c); err != nil {
			return err
		}
	}

	for i := range cmd.Orders() {
		o, err := h.demoOrder(cfg)
		if err != nil {
			return fmt.Errorf("demo order %d: %w", i+1, err)
		}
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "database initialized",
		"couriers", cmd.Couriers(),
		"orders", cmd.Orders())
	return nil
}

func (h *InitializeDatabaseCommandHandler) demoCourier(id int64, cfg settings.Config) (*courier.Courier, error) {
	first, last := h.pick(demoFirstNames), h.pick(demoLastNames)
	contact, err := courier.NewContact(
		first+" "+last,
		fmt.Sprintf("+49 30 %07d", h.random.IntN(10_000_000)),
		fmt.Sprintf("%s.%s@example.com", first, last),
	)
	if err != nil {
		return nil, err
	}

	types := courier.DeliveryTypes()
	deliveryType := types[int(id-1)%len(types)]

	var personalMax *float64
	if deliveryType == courier.OnFoot || deliveryType == courier.Bicycle {
		km := 4 + float64(h.random.IntN(5))
		personalMax = &km
	}

	employed := cfg.Clock.AddDate(0, -1-h.random.IntN(36), 0)
	return courier.NewCourier(id, contact, deliveryType, employed, personalMax, true)
}

func (h *InitializeDatabaseCommandHandler) demoOrder(cfg settings.Config) (*order.Order, error) {
	location, err := h.scatter(cfg.CompanyLocation)
	if err != nil {
		return nil, err
	}

	parcel, err := order.NewParcel(
		0.5+h.random.Float64()*9.5,
		1+h.random.Float64()*39,
		order.Dimensions{
			LengthCm: float64(10 + h.random.IntN(50)),
			WidthCm:  float64(10 + h.random.IntN(40)),
			HeightCm: float64(5 + h.random.IntN(30)),
		},
		h.random.IntN(4) == 0,
	)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(
		h.pick(demoFirstNames)+" "+h.pick(demoLastNames),
		fmt.Sprintf("+49 30 %07d", h.random.IntN(10_000_000)),
	)
	if err != nil {
		return nil, err
	}

	types := order.Types()
	address := fmt.Sprintf("%s %d, Berlin", h.pick(demoStreets), 1+h.random.IntN(150))
	openedAt := cfg.Clock.Add(-time.Duration(h.random.IntN(4)) * 15 * time.Minute)

	return order.NewOrder(kernel.NewUUID(), types[h.random.IntN(len(types))], address, location, parcel, customer, openedAt)
}

// scatter returns a point at a random bearing and distance from center.
func (h *InitializeDatabaseCommandHandler) scatter(center kernel.Coordinates) (kernel.Coordinates, error) {
	distanceKm := 0.5 + h.random.Float64()*(demoRadiusKm-0.5)
	bearing := h.random.Float64() * 2 * math.Pi

	dLat := distanceKm * math.Cos(bearing) / kmPerDegreeLatitude
	dLon := distanceKm * math.Sin(bearing) / (kmPerDegreeLatitude * math.Cos(center.Latitude()*math.Pi/180))

	return kernel.NewCoordinates(center.Latitude()+dLat, center.Longitude()+dLon)
}

func (h *InitializeDatabaseCommandHandler) pick(values []string) string {
	return values[h.random.IntN(len(values))]
}
