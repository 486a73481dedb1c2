package queries

import (
	"context"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// GetAvailableOrdersQueryHandler returns every open order within the
// courier's personal reach, oldest first. The general delivery area is not
// applied here: it only gates order creation.
//
// Inactive or busy couriers still get the list; pickup enforces those rules.
type GetAvailableOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsReader
	evaluator  engine.ScheduleEvaluator
}

func NewGetAvailableOrdersQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsReader,
	evaluator engine.ScheduleEvaluator,
) *GetAvailableOrdersQueryHandler {
	return &GetAvailableOrdersQueryHandler{
		uowFactory: uowFactory,
		settings:   settings,
		evaluator:  evaluator,
	}
}

func (h *GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]AvailableOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cfg := h.settings.Get()
	uow := h.uowFactory.Create()

	courierEntity, err := uow.CourierRepository().Get(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}
	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	deliveries, err := uow.DeliveryRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byOrder := groupByOrder(deliveries)

	available := make([]AvailableOrder, 0)
	for _, o := range orders {
		state, err := h.evaluator.Evaluate(ctx, cfg, o, byOrder[o.ID()])
		if err != nil {
			return nil, err
		}
		if state.Status != order.Open {
			continue
		}

		aerialKm, err := cfg.CompanyLocation.AerialDistance(o.Location())
		if err != nil {
			return nil, err
		}
		if !courierEntity.CanReach(aerialKm) {
			continue
		}

		available = append(available, AvailableOrder{
			ID:               o.ID(),
			Type:             o.Type(),
			Address:          o.Address(),
			AerialDistanceKm: kernel.RoundDistance(aerialKm),
			OpenedAt:         o.OpenedAt(),
			ScheduleStatus:   state.Schedule,
		})
	}

	return available, nil
}
