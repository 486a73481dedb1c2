package memory

import (
	"context"
	"sort"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
)

type CourierRepository struct {
	uow *UnitOfWork
}

func (r *CourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, c.ID()); ok {
			return errs.NewObjectAlreadyExistsError("courier", c.ID())
		}
		tx.couriers.put(opAdd, c.ID(), c)
		return nil
	})
}

func (r *CourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, c.ID()); !ok {
			return errs.NewObjectNotFoundError("courier", c.ID())
		}
		tx.couriers.put(opUpdate, c.ID(), c)
		return nil
	})
}

func (r *CourierRepository) Delete(ctx context.Context, id int64) error {
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, id); !ok {
			return errs.NewObjectNotFoundError("courier", id)
		}
		tx.couriers.remove(id)
		return nil
	})
}

func (r *CourierRepository) Get(_ context.Context, id int64) (*courier.Courier, error) {
	c, ok := r.lookup(r.uow.tx, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return c, nil
}

func (r *CourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	r.uow.store.mu.RLock()
	list := r.uow.tx.courierTable().list(r.uow.store.couriers)
	r.uow.store.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
	return list, nil
}

func (r *CourierRepository) DeleteAll(ctx context.Context) error {
	return r.uow.write(ctx, func(tx *transaction) error {
		tx.couriers.clear()
		return nil
	})
}

func (r *CourierRepository) lookup(tx *transaction, id int64) (*courier.Courier, bool) {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	return tx.courierTable().lookup(r.uow.store.couriers, id)
}
