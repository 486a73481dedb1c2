package queries

import (
	"context"
	"fmt"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/ports"
)

type GetOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsReader
	evaluator  engine.ScheduleEvaluator
}

func NewGetOrdersQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsReader,
	evaluator engine.ScheduleEvaluator,
) *GetOrdersQueryHandler {
	return &GetOrdersQueryHandler{
		uowFactory: uowFactory,
		settings:   settings,
		evaluator:  evaluator,
	}
}

// Handle returns the orders oldest first.
func (h *GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cfg := h.settings.Get()
	uow := h.uowFactory.Create()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	deliveries, err := uow.DeliveryRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byOrder := groupByOrder(deliveries)

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		state, err := h.evaluator.Evaluate(ctx, cfg, o, byOrder[o.ID()])
		if err != nil {
			return nil, fmt.Errorf("evaluate order %s: %w", o.ID(), err)
		}
		views = append(views, newOrderView(o, cfg, state.Status, state.Schedule))
	}

	return views, nil
}
