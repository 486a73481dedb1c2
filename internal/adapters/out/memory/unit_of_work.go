package memory

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback outside of Begin.
var ErrNoTransaction = errors.New("no transaction in progress")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork writes straight to the store until Begin is called, then stages
// everything until Commit.
type UnitOfWork struct {
	store *Store
	tx    *transaction
}

type transaction struct {
	couriers   *staged[int64, *courier.Courier]
	orders     *staged[kernel.UUID, *order.Order]
	deliveries *staged[kernel.UUID, *delivery.Delivery]
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}
	uow.tx = &transaction{
		couriers:   newStaged[int64, *courier.Courier](),
		orders:     newStaged[kernel.UUID, *order.Order](),
		deliveries: newStaged[kernel.UUID, *delivery.Delivery](),
	}
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	tx := uow.tx
	uow.tx = nil

	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	couriers := copyMap(s.couriers)
	orders := copyMap(s.orders)
	deliveries := copyMap(s.deliveries)

	if err := errors.Join(
		tx.couriers.replay(couriers, conflict[int64]("courier")),
		tx.orders.replay(orders, conflict[kernel.UUID]("order")),
		tx.deliveries.replay(deliveries, conflict[kernel.UUID]("delivery")),
	); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.couriers, s.orders, s.deliveries = couriers, orders, deliveries
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.tx = nil
	return nil
}

func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &DeliveryRepository{uow: uow}
}

// write runs mutate against the open transaction, or autocommits it.
func (uow *UnitOfWork) write(ctx context.Context, mutate func(tx *transaction) error) error {
	if uow.tx != nil {
		return mutate(uow.tx)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := mutate(uow.tx); err != nil {
		uow.tx = nil
		return err
	}
	return uow.Commit(ctx)
}

func conflict[K comparable](param string) func(kind opKind, key K) error {
	return func(kind opKind, key K) error {
		if kind == opAdd {
			return errs.NewObjectAlreadyExistsError(param, key)
		}
		return errs.NewObjectNotFoundError(param, key)
	}
}

// The accessors below tolerate a nil transaction so reads outside Begin see committed state only.

func (tx *transaction) courierTable() *staged[int64, *courier.Courier] {
	if tx == nil {
		return nil
	}
	return tx.couriers
}

func (tx *transaction) orderTable() *staged[kernel.UUID, *order.Order] {
	if tx == nil {
		return nil
	}
	return tx.orders
}

func (tx *transaction) deliveryTable() *staged[kernel.UUID, *delivery.Delivery] {
	if tx == nil {
		return nil
	}
	return tx.deliveries
}
