package queries

import (
	"context"

	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/ports"
)

type GetOrderStatusQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	settings   SettingsReader
	evaluator  engine.ScheduleEvaluator
}

func NewGetOrderStatusQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	settings SettingsReader,
	evaluator engine.ScheduleEvaluator,
) *GetOrderStatusQueryHandler {
	return &GetOrderStatusQueryHandler{
		uowFactory: uowFactory,
		settings:   settings,
		evaluator:  evaluator,
	}
}

// Handle derives the order status from its deliveries and the schedule
// status from the same configuration snapshot.
func (h *GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	cfg := h.settings.Get()
	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	deliveries, err := uow.DeliveryRepository().GetByOrderID(ctx, o.ID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	state, err := h.evaluator.Evaluate(ctx, cfg, o, deliveries)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response := GetOrderStatusQueryResponse{
		OrderID:        o.ID(),
		Status:         state.Status,
		ScheduleStatus: state.Schedule,
		Deadline:       o.Deadline(cfg.MaxDeliveryTimeSpan),
	}
	if state.Latest != nil {
		view := newDeliveryView(state.Latest)
		response.Delivery = &view
	}
	return response, nil
}
