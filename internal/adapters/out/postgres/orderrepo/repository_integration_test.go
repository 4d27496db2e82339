package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"embroidery/internal/adapters/out/postgres/catalogrepo"
	"embroidery/internal/adapters/out/postgres/orderrepo"
	"embroidery/internal/adapters/out/postgres/pgtest"
	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// migrated PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Postgres
	repository *orderrepo.GormOrderRepository
	productID  kernel.UUID
	sizeID     kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB)

	cat, err := catalog.NewCategory(kernel.NewUUID(), "Shirt", decimal.NewFromInt(10000), catalog.CategoryTypeApparel)
	suite.Require().NoError(err)
	catDTO := catalogrepo.CategoryFromDomain(cat)
	suite.Require().NoError(suite.pg.DB.Create(&catDTO).Error)

	size, err := catalog.NewSize(kernel.NewUUID(), "XL", decimal.NewFromInt(2000))
	suite.Require().NoError(err)
	sizeDTO := catalogrepo.SizeFromDomain(size)
	suite.Require().NoError(suite.pg.DB.Create(&sizeDTO).Error)
	suite.sizeID = size.ID()

	p, err := catalog.NewProduct(kernel.NewUUID(), "Logo polo", "P-01", cat.ID(), nil, "")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormCatalogRepository(suite.pg.DB).AddProduct(context.Background(), p))
	suite.productID = p.ID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	o := suite.newOrder("PO-1", 120, &suite.sizeID)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	suite.Equal("PO-1", got.PO())
	suite.Equal(suite.productID, got.ProductID())
	suite.Require().NotNil(got.SizeID())
	suite.Equal(suite.sizeID, *got.SizeID())
	suite.Equal(120, got.QuantityOrdered())
	suite.Zero(got.AssignedTotal())
	suite.Zero(got.DeliveredTotal())
	suite.True(o.Deadline().Equal(got.Deadline()))
	suite.False(got.CreatedAt().IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetMany_SkipsUnknownIDs() {
	ctx := context.Background()
	a := suite.newOrder("PO-1", 10, nil)
	b := suite.newOrder("PO-2", 20, nil)
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.GetMany(ctx, []kernel.UUID{a.ID(), kernel.NewUUID(), b.ID()})
	suite.Require().NoError(err)
	suite.Len(got, 2)

	empty, err := suite.repository.GetMany(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestIncrements_AreRelative() {
	ctx := context.Background()
	o := suite.newOrder("PO-1", 10, nil)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.IncrementAssigned(ctx, o.ID(), 6))
	suite.Require().NoError(suite.repository.IncrementAssigned(ctx, o.ID(), 6))
	suite.Require().NoError(suite.repository.IncrementDelivered(ctx, o.ID(), 3))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(12, got.AssignedTotal(), "over-assignment is allowed")
	suite.Equal(3, got.DeliveredTotal())

	suite.Require().ErrorIs(suite.repository.IncrementAssigned(ctx, o.ID(), 0), errs.ErrValueIsInvalid)
	suite.Require().ErrorIs(suite.repository.IncrementDelivered(ctx, kernel.NewUUID(), 1), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsForProduct() {
	ctx := context.Background()

	exists, err := suite.repository.ExistsForProduct(ctx, suite.productID)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("PO-1", 5, nil)))

	exists, err = suite.repository.ExistsForProduct(ctx, suite.productID)
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSchema_RejectsZeroQuantity() {
	dto := orderrepo.OrderDTO{
		ID:              kernel.NewUUID().Bytes(),
		PO:              "PO-1",
		ProductID:       suite.productID.Bytes(),
		QuantityOrdered: 0,
		Deadline:        time.Now().UTC(),
	}
	suite.Require().Error(suite.pg.DB.Create(&dto).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(po string, qty int, sizeID *kernel.UUID) *order.Order {
	deadline := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), po, suite.productID, sizeID, qty, deadline, "")
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
