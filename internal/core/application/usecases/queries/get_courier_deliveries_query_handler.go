package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

type GetCourierDeliveriesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCourierDeliveriesQueryHandler(uowFactory ports.UnitOfWorkFactory) *GetCourierDeliveriesQueryHandler {
	return &GetCourierDeliveriesQueryHandler{uowFactory: uowFactory}
}

// Handle returns the deliveries by start time; an unknown courier is NotFound.
func (h *GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.CourierRepository().Get(ctx, query.CourierID()); err != nil {
		return nil, err
	}
	deliveries, err := uow.DeliveryRepository().GetByCourierID(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	views := make([]DeliveryView, 0, len(deliveries))
	for _, d := range deliveries {
		views = append(views, newDeliveryView(d))
	}
	return views, nil
}
