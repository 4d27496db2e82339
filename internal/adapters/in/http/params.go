package http

import (
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// optionalQuery binds a form-style query parameter. It returns nil when the
// parameter is absent.
func optionalQuery[T any](c echo.Context, name string) (*T, error) {
	var v *T
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return nil, invalidParam(name, err)
	}
	return v, nil
}

// queryParam stores the parameter in dest when present and leaves dest
// untouched otherwise.
func queryParam[T any](c echo.Context, name string, dest *T) error {
	v, err := optionalQuery[T](c, name)
	if err != nil {
		return err
	}
	if v != nil {
		*dest = *v
	}
	return nil
}

func queryString(c echo.Context, name string) (string, error) {
	var v string
	err := queryParam(c, name, &v)
	return v, err
}

// pageParams reads page and limit, leaving zero values for the pagination
// defaults.
func pageParams(c echo.Context) (page, limit int, err error) {
	if err = queryParam(c, "page", &page); err != nil {
		return 0, 0, err
	}
	if err = queryParam(c, "limit", &limit); err != nil {
		return 0, 0, err
	}
	if page < 0 || limit < 0 || limit > pagination.MaxLimit {
		return 0, 0, errs.New(errs.CodeValidation, "page and limit must be positive, limit at most 100").
			WithDetails(map[string]int{"page": page, "limit": limit})
	}
	return page, limit, nil
}

func optionalID(c echo.Context, name string) (*kernel.UUID, error) {
	raw, err := optionalQuery[uuid.UUID](c, name)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, invalidParam(name, err)
	}
	return &id, nil
}

func requiredID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := optionalID(c, name)
	if err != nil {
		return kernel.UUID{}, err
	}
	if id == nil {
		return kernel.UUID{}, errs.Newf(errs.CodeValidation, "%s is required", name).
			WithDetails(map[string]string{name: "is required"})
	}
	return *id, nil
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		return kernel.UUID{}, invalidParam(name, err)
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, invalidParam(name, err)
	}
	return id, nil
}
