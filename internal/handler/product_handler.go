package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apierrors "github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/response"
	"github.com/dovietdong/WebApiBase/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a product creation request. Price and stock
// range checks live in the service so they are enforced before persistence
// regardless of transport.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest represents a partial product update. Absent fields are
// left untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

// ListProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.OK("products retrieved", products))
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid product id"))
	}

	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		if err == apierrors.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, response.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(http.StatusOK, response.OK("product retrieved", product))
}

// CreateProduct godoc
// @Summary Create a product (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.FailWith("validation failed", validationMessages(err)))
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		if err == apierrors.ErrInvalidPrice || err == apierrors.ErrInvalidStock {
			return c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/products/%d", product.ID))
	return c.JSON(http.StatusCreated, response.OK("product created", product))
}

// UpdateProduct godoc
// @Summary Update a product (admin only, partial)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid product id"))
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.FailWith("validation failed", validationMessages(err)))
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		switch err {
		case apierrors.ErrProductNotFound:
			return c.JSON(http.StatusNotFound, response.Fail(err.Error()))
		case apierrors.ErrInvalidPrice, apierrors.ErrInvalidStock:
			return c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(http.StatusOK, response.OK("product updated", product))
}

// DeleteProduct godoc
// @Summary Delete a product (admin only)
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid product id"))
	}

	if err := h.productService.DeleteProduct(c.Request().Context(), id); err != nil {
		if err == apierrors.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, response.Fail(err.Error()))
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
