package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetAllCouriersQueryHandler retrieves every courier ordered by id.
//
// Example:
//
//	handler := NewGetAllCouriersQueryHandler(uowFactory)
//	couriers, err := handler.Handle(ctx, NewGetAllCouriersQuery())
//	if err != nil {
//	    log.Printf("Failed to get couriers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d couriers\n", len(couriers))
type GetAllCouriersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
func NewGetAllCouriersQueryHandler(uowFactory ports.UnitOfWorkFactory) *GetAllCouriersQueryHandler {
	return &GetAllCouriersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query to retrieve all couriers.
func (h *GetAllCouriersQueryHandler) Handle(ctx context.Context, query GetAllCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers, err := h.uowFactory.Create().CourierRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CourierView, 0, len(couriers))
	for _, c := range couriers {
		views = append(views, newCourierView(c))
	}
	return views, nil
}
