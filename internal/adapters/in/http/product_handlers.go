package http

import (
	"errors"
	"io"
	"net/http"

	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"
	"embroidery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	imageField    = "image"
	maxUploadSize = 10 << 20
)

func (s *Server) listCategories(c echo.Context) error {
	items, err := s.h.ListCatalog.Categories(requestContext(c), queries.NewListCatalogQuery())
	if err != nil {
		return err
	}
	return ok(c, nonNil(items))
}

func (s *Server) listSizes(c echo.Context) error {
	items, err := s.h.ListCatalog.Sizes(requestContext(c), queries.NewListCatalogQuery())
	if err != nil {
		return err
	}
	return ok(c, nonNil(items))
}

func (s *Server) listDifficulties(c echo.Context) error {
	items, err := s.h.ListCatalog.Difficulties(requestContext(c), queries.NewListCatalogQuery())
	if err != nil {
		return err
	}
	return ok(c, nonNil(items))
}

func (s *Server) listProducts(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	categoryID, err := optionalID(c, "categoryId")
	if err != nil {
		return err
	}
	difficultyID, err := optionalID(c, "difficultyId")
	if err != nil {
		return err
	}
	search, err := queryString(c, "q")
	if err != nil {
		return err
	}
	res, err := s.h.ListProducts.Handle(requestContext(c),
		queries.NewListProductsQuery(categoryID, difficultyID, search, page, limit))
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}

func (s *Server) getProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	q, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}
	product, err := s.h.GetProduct.Handle(requestContext(c), q)
	if err != nil {
		return err
	}
	return ok(c, product)
}

func (s *Server) createProduct(c echo.Context) error {
	upload, err := readUpload(c, true)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateProductCommand(
		c.FormValue("name"),
		c.FormValue("prodCode"),
		c.FormValue("categoryId"),
		c.FormValue("difficultyId"),
		*upload,
	)
	if err != nil {
		return err
	}
	id, err := s.h.CreateProduct.Handle(requestContext(c), cmd)
	if err != nil {
		return err
	}
	return created(c, "product created", map[string]any{"id": id})
}

func (s *Server) updateProduct(c echo.Context) error {
	upload, err := readUpload(c, false)
	if err != nil {
		return err
	}
	patch := commands.ProductPatch{
		Name:         formValue(c, "name"),
		Code:         formValue(c, "prodCode"),
		CategoryID:   formValue(c, "categoryId"),
		DifficultyID: formValue(c, "difficultyId"),
		File:         upload,
	}
	cmd, err := commands.NewUpdateProductCommand(c.Param("id"), patch)
	if err != nil {
		return err
	}
	if err = s.h.UpdateProduct.Handle(requestContext(c), cmd); err != nil {
		return err
	}
	return done(c, "product updated", nil)
}

func (s *Server) deleteProduct(c echo.Context) error {
	cmd, err := commands.NewDeleteProductCommand(c.Param("id"))
	if err != nil {
		return err
	}
	if err = s.h.DeleteProduct.Handle(requestContext(c), cmd); err != nil {
		return err
	}
	return done(c, "product deleted", nil)
}

// readUpload loads the image part of a multipart form. A missing part is
// an error only when required.
func readUpload(c echo.Context, required bool) (*commands.Upload, error) {
	fh, err := c.FormFile(imageField)
	switch {
	case err == nil:
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		if required {
			return nil, errs.New(errs.CodeValidation, "product file is required").
				WithDetails(map[string]string{imageField: "is required"})
		}
		return nil, nil
	default:
		return nil, errs.Wrap(errs.CodeValidation, err, "invalid multipart form")
	}
	if fh.Size > maxUploadSize {
		return nil, errs.New(errs.CodeValidation, "product file is too large").
			WithDetails(map[string]int64{"maxBytes": maxUploadSize})
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(errs.CodeValidation, err, "cannot read uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, errs.Wrap(errs.CodeValidation, err, "cannot read uploaded file")
	}
	return &commands.Upload{FileName: fh.Filename, Content: content}, nil
}

// formValue distinguishes an absent field from an empty one.
func formValue(c echo.Context, name string) *string {
	form, err := c.FormParams()
	if err != nil {
		return nil
	}
	values, present := form[name]
	if !present || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
