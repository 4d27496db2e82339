package commands_test

import (
	"context"
	"io"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/core/domain/model/payment"
	"embroidery/internal/core/domain/model/returns"
	"embroidery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.Called().Get(0).(ports.AssignmentRepository)
}
func (m *MockUoW) ReturnRepository() ports.ReturnRepository {
	return m.Called().Get(0).(ports.ReturnRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}
func (m *MockUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}
func (m *MockUoW) ResetTokenRepository() ports.ResetTokenRepository {
	return m.Called().Get(0).(ports.ResetTokenRepository)
}

// MockFactory hands out the unit of work registered for "Create".
type MockFactory[T any] struct{ mock.Mock }

func (m *MockFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) IncrementAssigned(ctx context.Context, id kernel.UUID, n int) error {
	return m.Called(ctx, id, n).Error(0)
}
func (m *MockOrderRepository) IncrementDelivered(ctx context.Context, id kernel.UUID, n int) error {
	return m.Called(ctx, id, n).Error(0)
}
func (m *MockOrderRepository) ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) UpsertIncrement(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*assignment.Assignment)
	return a, args.Error(1)
}
func (m *MockAssignmentRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, ids)
	a, _ := args.Get(0).([]*assignment.Assignment)
	return a, args.Error(1)
}
func (m *MockAssignmentRepository) CreditReturned(ctx context.Context, id kernel.UUID, n int) error {
	return m.Called(ctx, id, n).Error(0)
}
func (m *MockAssignmentRepository) AddDelivered(ctx context.Context, id kernel.UUID, n int) error {
	return m.Called(ctx, id, n).Error(0)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) AddMany(ctx context.Context, items []*returns.Return) error {
	return m.Called(ctx, items).Error(0)
}
func (m *MockReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Return, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*returns.Return)
	return r, args.Error(1)
}
func (m *MockReturnRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*returns.Return, error) {
	args := m.Called(ctx, ids)
	r, _ := args.Get(0).([]*returns.Return)
	return r, args.Error(1)
}
func (m *MockReturnRepository) UpdateQuantityUnconfirmed(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}
func (m *MockReturnRepository) DeleteUnconfirmed(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockReturnRepository) ConfirmUnconfirmed(ctx context.Context, id kernel.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}
func (m *MockReturnRepository) MarkPaid(ctx context.Context, ids []kernel.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) FindByPODay(ctx context.Context, po string, day delivery.Day) (*delivery.Delivery, error) {
	args := m.Called(ctx, po, day)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}
func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddProduct(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockCatalogRepository) DeleteProduct(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockCatalogRepository) FindProductByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockCatalogRepository) ProductCodeTaken(ctx context.Context, code string, except *kernel.UUID) (bool, error) {
	args := m.Called(ctx, code, except)
	return args.Bool(0), args.Error(1)
}
func (m *MockCatalogRepository) GetCategory(ctx context.Context, id kernel.UUID) (catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(catalog.Category)
	return c, args.Error(1)
}
func (m *MockCatalogRepository) GetDifficulty(ctx context.Context, id kernel.UUID) (catalog.Difficulty, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(catalog.Difficulty)
	return d, args.Error(1)
}
func (m *MockCatalogRepository) GetSize(ctx context.Context, id kernel.UUID) (catalog.Size, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(catalog.Size)
	return s, args.Error(1)
}
func (m *MockCatalogRepository) FindSizeByName(ctx context.Context, name string) (catalog.Size, error) {
	args := m.Called(ctx, name)
	s, _ := args.Get(0).(catalog.Size)
	return s, args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}
func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}
func (m *MockAccountRepository) ExistsUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepository) UpdatePassword(ctx context.Context, id kernel.UUID, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

type MockResetTokenRepository struct{ mock.Mock }

func (m *MockResetTokenRepository) Upsert(ctx context.Context, t account.ResetToken) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (account.ResetToken, error) {
	args := m.Called(ctx, token)
	t, _ := args.Get(0).(account.ResetToken)
	return t, args.Error(1)
}
func (m *MockResetTokenRepository) FindByEmail(ctx context.Context, email string) (account.ResetToken, error) {
	args := m.Called(ctx, email)
	t, _ := args.Get(0).(account.ResetToken)
	return t, args.Error(1)
}
func (m *MockResetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockResetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockResetTokenRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockFileStore struct{ mock.Mock }

func (m *MockFileStore) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	args := m.Called(ctx, name, content)
	return args.String(0), args.Error(1)
}
func (m *MockFileStore) Delete(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) Send(ctx context.Context, msg ports.Email) error {
	return m.Called(ctx, msg).Error(0)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}
func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}
func (m *MockHasher) Compare(hash, plain string) error {
	return m.Called(hash, plain).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(acc *account.Account) (string, ports.Identity, error) {
	args := m.Called(acc)
	return args.String(0), args.Get(1).(ports.Identity), args.Error(2)
}
func (m *MockTokenIssuer) Parse(token string) (ports.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Identity), args.Error(1)
}

type MockDenylist struct{ mock.Mock }

func (m *MockDenylist) Deny(ctx context.Context, tokenID string, until time.Time) error {
	return m.Called(ctx, tokenID, until).Error(0)
}
func (m *MockDenylist) IsDenied(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
