package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/suite"
)

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *deliveryrepo.GormDeliveryRepository
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.database.DB)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) delivery(courierID int64, startedAt time.Time) *delivery.Delivery {
	c := testutil.Courier(suite.T(), courierID)
	o := testutil.NearbyOrder(suite.T(), testutil.T0.Add(-time.Hour))
	return testutil.ActiveDelivery(suite.T(), c, o, startedAt, 4.2)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ActiveRoundTrip() {
	ctx := context.Background()
	original := suite.delivery(1, testutil.T0)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsActive())
	suite.Equal(original.OrderID(), loaded.OrderID())
	suite.Equal(original.DeliveryType(), loaded.DeliveryType())
	km, ok := loaded.ActualDistance()
	suite.True(ok)
	suite.InDelta(4.2, km, 1e-9)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_Close() {
	ctx := context.Background()
	d := suite.delivery(1, testutil.T0)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.Close(delivery.CustomerRefused, testutil.T0.Add(20*time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	endType, closed := loaded.EndType()
	suite.True(closed)
	suite.Equal(delivery.CustomerRefused, endType)
	endedAt, _ := loaded.EndedAt()
	suite.True(endedAt.Equal(testutil.T0.Add(20 * time.Minute)))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Empty(active)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdministrativeCancellation() {
	ctx := context.Background()
	d, err := delivery.NewAdministrativeCancellation(kernel.NewUUID(), kernel.NewUUID(), testutil.T0)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAdministrative())
	suite.False(loaded.IsActive())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestLookups_OrderedByStart() {
	ctx := context.Background()
	later := suite.delivery(1, testutil.T0.Add(time.Hour))
	earlier := suite.delivery(1, testutil.T0)
	other := suite.delivery(2, testutil.T0.Add(30*time.Minute))
	for _, d := range []*delivery.Delivery{later, earlier, other} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	byCourier, err := suite.repository.GetByCourierID(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(byCourier, 2)
	suite.Equal(earlier.ID(), byCourier[0].ID())
	suite.Equal(later.ID(), byCourier[1].ID())

	byOrder, err := suite.repository.GetByOrderID(ctx, other.OrderID())
	suite.Require().NoError(err)
	suite.Require().Len(byOrder, 1)
	suite.Equal(other.ID(), byOrder[0].ID())

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(other.ID(), all[1].ID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestErrors() {
	ctx := context.Background()
	d := suite.delivery(1, testutil.T0)

	_, err := suite.repository.Get(ctx, d.ID())
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
	suite.Equal(errs.KindNotFound, errs.KindOf(suite.repository.Update(ctx, d)))

	suite.Require().NoError(suite.repository.Add(ctx, d))
	suite.Equal(errs.KindAlreadyExists, errs.KindOf(suite.repository.Add(ctx, d)))
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
