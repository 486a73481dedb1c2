package memory

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DeliveryRepository stores copies: callers never share a *delivery.Delivery with the store.
type DeliveryRepository struct {
	uow *UnitOfWork
}

func (r *DeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	clone, err := r.detach(d)
	if err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, d.ID()); ok {
			return errs.NewObjectAlreadyExistsError("delivery", d.ID())
		}
		tx.deliveries.put(opAdd, d.ID(), clone)
		return nil
	})
}

func (r *DeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	clone, err := r.detach(d)
	if err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, d.ID()); !ok {
			return errs.NewObjectNotFoundError("delivery", d.ID())
		}
		tx.deliveries.put(opUpdate, d.ID(), clone)
		return nil
	})
}

func (r *DeliveryRepository) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	d, ok := r.lookup(r.uow.tx, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id)
	}
	return cloneDelivery(d)
}

func (r *DeliveryRepository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	return r.filter(func(*delivery.Delivery) bool { return true })
}

func (r *DeliveryRepository) GetByOrderID(_ context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	return r.filter(func(d *delivery.Delivery) bool { return d.OrderID().IsEqual(orderID) })
}

func (r *DeliveryRepository) GetByCourierID(_ context.Context, courierID int64) ([]*delivery.Delivery, error) {
	return r.filter(func(d *delivery.Delivery) bool { return d.CourierID() == courierID })
}

func (r *DeliveryRepository) GetAllActive(_ context.Context) ([]*delivery.Delivery, error) {
	return r.filter((*delivery.Delivery).IsActive)
}

func (r *DeliveryRepository) DeleteAll(ctx context.Context) error {
	return r.uow.write(ctx, func(tx *transaction) error {
		tx.deliveries.clear()
		return nil
	})
}

func (r *DeliveryRepository) filter(keep func(*delivery.Delivery) bool) ([]*delivery.Delivery, error) {
	r.uow.store.mu.RLock()
	all := r.uow.tx.deliveryTable().list(r.uow.store.deliveries)
	r.uow.store.mu.RUnlock()

	out := make([]*delivery.Delivery, 0, len(all))
	for _, d := range all {
		if !keep(d) {
			continue
		}
		clone, err := cloneDelivery(d)
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}
	sortDeliveries(out)
	return out, nil
}

func (r *DeliveryRepository) detach(d *delivery.Delivery) (*delivery.Delivery, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return cloneDelivery(d)
}

func (r *DeliveryRepository) lookup(tx *transaction, id kernel.UUID) (*delivery.Delivery, bool) {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	return tx.deliveryTable().lookup(r.uow.store.deliveries, id)
}
