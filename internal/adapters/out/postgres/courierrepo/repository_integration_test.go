package courierrepo_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/suite"
)

// CourierRepositoryIntegrationTestSuite runs the courier repository against a
// real PostgreSQL container.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *courierrepo.GormCourierRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = courierrepo.NewGormCourierRepository(suite.database.DB)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	original := testutil.Courier(suite.T(), 7, testutil.WithDeliveryType(courier.Bicycle), testutil.WithMaxDistance(6.5))

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(original.Name(), loaded.Name())
	suite.Equal(original.Contact().Email(), loaded.Contact().Email())
	suite.Equal(courier.Bicycle, loaded.DeliveryType())
	suite.True(loaded.IsActive())
	suite.True(original.EmploymentStart().Equal(loaded.EmploymentStart()))
	km, ok := loaded.PersonalMaxDistance()
	suite.True(ok)
	suite.InDelta(6.5, km, 1e-9)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateID() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, testutil.Courier(suite.T(), 1)))

	err := suite.repository.Add(ctx, testutil.Courier(suite.T(), 1))

	suite.Equal(errs.KindAlreadyExists, errs.KindOf(err))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_WritesZeroValues() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, testutil.Courier(suite.T(), 1, testutil.WithMaxDistance(3))))

	suite.Require().NoError(suite.repository.Update(ctx, testutil.Courier(suite.T(), 1, testutil.Inactive())))

	loaded, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
	_, ok := loaded.PersonalMaxDistance()
	suite.False(ok)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUnknownCourier_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 42)
	suite.Equal(errs.KindNotFound, errs.KindOf(err))

	err = suite.repository.Update(ctx, testutil.Courier(suite.T(), 42))
	suite.Equal(errs.KindNotFound, errs.KindOf(err))

	err = suite.repository.Delete(ctx, 42)
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAll_OrderedByID() {
	ctx := context.Background()
	for _, id := range []int64{3, 1, 2} {
		suite.Require().NoError(suite.repository.Add(ctx, testutil.Courier(suite.T(), id)))
	}

	couriers, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(couriers, 3)
	for i, c := range couriers {
		suite.Equal(int64(i+1), c.ID())
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestDeleteAll() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, testutil.Courier(suite.T(), 1)))
	suite.Require().NoError(suite.repository.Add(ctx, testutil.Courier(suite.T(), 2)))

	suite.Require().NoError(suite.repository.DeleteAll(ctx))

	couriers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(couriers)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
