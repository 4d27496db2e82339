package commands_test

import (
	"errors"
	"testing"
	"time"

	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

func catalogUoW(cat *MockCatalogRepository, orders *MockOrderRepository) (*MockUoW, *MockFactory[commands.CatalogUoW]) {
	uow := new(MockUoW)
	uow.On("CatalogRepository").Return(cat)
	uow.On("OrderRepository").Return(orders)
	factory := new(MockFactory[commands.CatalogUoW])
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestCreateOrdersCommandHandler_Handle(t *testing.T) {
	deadline := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	product, err := catalog.NewProduct(kernel.NewUUID(), "Logo polo", "P-01", kernel.NewUUID(), nil, "")
	require.NoError(t, err)
	size, err := catalog.NewSize(kernel.NewUUID(), "XL", decimal.Zero)
	require.NoError(t, err)

	t.Run("stores valid lines and reports the rest", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrdersCommand([]commands.OrderItem{
			{PO: "PO-1", ProdCode: " P-01 ", Size: "xl", Quantity: 10, Deadline: deadline},
			{PO: "PO-2", ProdCode: "P-99", Quantity: 5, Deadline: deadline},
			{PO: "PO-3", ProdCode: "P-01", Size: "XXXL", Quantity: 5, Deadline: deadline},
			{PO: "PO-4", ProdCode: "P-01", Quantity: 0, Deadline: deadline},
		})
		require.NoError(t, err)

		cat := new(MockCatalogRepository)
		cat.On("FindProductByCode", mock.Anything, "P-01").Return(product, nil)
		cat.On("FindProductByCode", mock.Anything, "P-99").Return(nil, errs.NewObjectNotFoundError("prodCode", "P-99"))
		cat.On("FindSizeByName", mock.Anything, "xl").Return(size, nil)
		cat.On("FindSizeByName", mock.Anything, "XXXL").Return(nil, errs.NewObjectNotFoundError("size", "XXXL"))
		orders := new(MockOrderRepository)
		orders.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.PO() == "PO-1" && o.SizeID() != nil && *o.SizeID() == size.ID()
		})).Return(nil).Once()

		uow := new(MockUoW)
		uow.On("CatalogRepository").Return(cat)
		uow.On("OrderRepository").Return(orders)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockFactory[commands.OrderUoW])
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrdersCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Len(t, result.Created, 1)
		require.Len(t, result.Failed, 3)
		assert.Equal(t, 1, result.Failed[0].Index)
		assert.Contains(t, result.Failed[0].Reason, "P-99")
		assert.Contains(t, result.Failed[1].Reason, "XXXL")
		assert.Equal(t, "PO-4", result.Failed[2].ID)
		orders.AssertExpectations(t)
	})

	t.Run("nothing stored is a validation error", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateOrdersCommand([]commands.OrderItem{{PO: "PO-1", Quantity: 1, Deadline: deadline}})
		require.NoError(t, err)

		uow := new(MockUoW)
		uow.On("CatalogRepository").Return(new(MockCatalogRepository))
		uow.On("OrderRepository").Return(new(MockOrderRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockFactory[commands.OrderUoW])
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrdersCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
		assert.Len(t, result.Failed, 1)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestNewCreateProductCommand(t *testing.T) {
	t.Run("renames the document by content", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("Logo polo", "P-01", kernel.NewUUID().String(), "",
			commands.Upload{FileName: "design.bin", Content: pdfBytes})
		require.NoError(t, err)
	})

	t.Run("rejects what is not a PDF", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("Logo polo", "P-01", kernel.NewUUID().String(), "",
			commands.Upload{FileName: "design.pdf", Content: pngBytes})
		coded := errs.As(err)
		require.NotNil(t, coded)
		assert.Equal(t, errs.CodeValidation, coded.Code())
		assert.Contains(t, coded.Message(), "PDF")
	})

	t.Run("reports every field problem", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("", "", "x", "y", commands.Upload{})
		coded := errs.As(err)
		require.NotNil(t, coded)
		problems, ok := coded.Details().([]commands.ItemProblem)
		require.True(t, ok)
		assert.Len(t, problems, 4)
	})
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	category, err := catalog.NewCategory(kernel.NewUUID(), "Shirt", decimal.NewFromInt(10000), catalog.CategoryTypeApparel)
	require.NoError(t, err)

	t.Run("stores the document then the product", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateProductCommand("Logo polo", "P-01", category.ID().String(), "",
			commands.Upload{FileName: "logo.pdf", Content: pdfBytes})
		require.NoError(t, err)

		cat := new(MockCatalogRepository)
		cat.On("ProductCodeTaken", mock.Anything, "P-01", (*kernel.UUID)(nil)).Return(false, nil)
		cat.On("GetCategory", mock.Anything, category.ID()).Return(category, nil)
		cat.On("AddProduct", mock.Anything, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.Image() == "/images/logo.pdf"
		})).Return(nil).Once()
		files := new(MockFileStore)
		files.On("Save", mock.Anything, "logo.pdf", mock.Anything).Return("/images/logo.pdf", nil).Once()

		uow, factory := catalogUoW(cat, new(MockOrderRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCreateProductCommandHandler(factory, files)
		id, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		require.NoError(t, id.Validate())
		files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		cat.AssertExpectations(t)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateProductCommand("Logo polo", "P-01", category.ID().String(), "",
			commands.Upload{FileName: "logo.pdf", Content: pdfBytes})
		require.NoError(t, err)

		cat := new(MockCatalogRepository)
		cat.On("ProductCodeTaken", mock.Anything, "P-01", (*kernel.UUID)(nil)).Return(true, nil)
		files := new(MockFileStore)
		uow, factory := catalogUoW(cat, new(MockOrderRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCreateProductCommandHandler(factory, files)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeConflict, errs.CodeOf(err))
		files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed insert removes the stored document", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateProductCommand("Logo polo", "P-01", category.ID().String(), "",
			commands.Upload{FileName: "logo.pdf", Content: pdfBytes})
		require.NoError(t, err)

		cat := new(MockCatalogRepository)
		cat.On("ProductCodeTaken", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		cat.On("GetCategory", mock.Anything, category.ID()).Return(category, nil)
		cat.On("AddProduct", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))
		files := new(MockFileStore)
		files.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("/images/logo.pdf", nil)
		files.On("Delete", mock.Anything, "/images/logo.pdf").Return(nil).Once()

		uow, factory := catalogUoW(cat, new(MockOrderRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCreateProductCommandHandler(factory, files)
		_, err = h.Handle(ctx, cmd)
		require.Error(t, err)
		files.AssertExpectations(t)
	})
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	product, err := catalog.NewProduct(kernel.NewUUID(), "Logo polo", "P-01", kernel.NewUUID(), nil, "/images/logo.pdf")
	require.NoError(t, err)

	t.Run("ordered product is kept", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteProductCommand(product.ID().String())
		require.NoError(t, err)

		cat := new(MockCatalogRepository)
		cat.On("GetProduct", mock.Anything, product.ID()).Return(product, nil)
		orders := new(MockOrderRepository)
		orders.On("ExistsForProduct", mock.Anything, product.ID()).Return(true, nil)
		files := new(MockFileStore)

		uow, factory := catalogUoW(cat, orders)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewDeleteProductCommandHandler(factory, files)
		err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeDependentResource, errs.CodeOf(err))
		cat.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
		files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes row and document", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteProductCommand(product.ID().String())
		require.NoError(t, err)

		cat := new(MockCatalogRepository)
		cat.On("GetProduct", mock.Anything, product.ID()).Return(product, nil)
		cat.On("DeleteProduct", mock.Anything, product.ID()).Return(nil).Once()
		orders := new(MockOrderRepository)
		orders.On("ExistsForProduct", mock.Anything, product.ID()).Return(false, nil)
		files := new(MockFileStore)
		files.On("Delete", mock.Anything, "/images/logo.pdf").Return(nil).Once()

		uow, factory := catalogUoW(cat, orders)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteProductCommandHandler(factory, files)
		require.NoError(t, h.Handle(ctx, cmd))
		files.AssertExpectations(t)
		cat.AssertExpectations(t)
	})
}
