package memory

import (
	"context"
	"sort"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, o.ID()); ok {
			return errs.NewObjectAlreadyExistsError("order", o.ID())
		}
		tx.orders.put(opAdd, o.ID(), o)
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, o.ID()); !ok {
			return errs.NewObjectNotFoundError("order", o.ID())
		}
		tx.orders.put(opUpdate, o.ID(), o)
		return nil
	})
}

func (r *OrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.uow.write(ctx, func(tx *transaction) error {
		if _, ok := r.lookup(tx, id); !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		tx.orders.remove(id)
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.lookup(r.uow.tx, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.uow.store.mu.RLock()
	list := r.uow.tx.orderTable().list(r.uow.store.orders)
	r.uow.store.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if !list[i].OpenedAt().Equal(list[j].OpenedAt()) {
			return list[i].OpenedAt().Before(list[j].OpenedAt())
		}
		return list[i].ID().String() < list[j].ID().String()
	})
	return list, nil
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	return r.uow.write(ctx, func(tx *transaction) error {
		tx.orders.clear()
		return nil
	})
}

func (r *OrderRepository) lookup(tx *transaction, id kernel.UUID) (*order.Order, bool) {
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	return tx.orderTable().lookup(r.uow.store.orders, id)
}
