package controller

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/marketbase/product-catalog-service/internal/service"
	"github.com/marketbase/product-catalog-service/internal/validation"
	"github.com/marketbase/product-catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service    service.ProductService
	validation *validation.Validation
}

func CreateProductController(e *echo.Group, service service.ProductService, validation *validation.Validation) {
	c := Controller{
		service:    service,
		validation: validation,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

func (c *Controller) GetProducts(e echo.Context) error {
	products, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return writeProductError(e, err, "Error querying products")
	}

	return e.JSON(http.StatusOK, products)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return writeProductError(e, err, "Error querying product")
	}

	return e.JSON(http.StatusOK, product)
}

func (c *Controller) AddProduct(e echo.Context) error {
	body, err := io.ReadAll(e.Request().Body)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return e.String(http.StatusInternalServerError, "Error inserting product")
	}

	payload, validationErrs := c.validation.ValidateProductPayload(body)
	if len(validationErrs) > 0 {
		return e.JSON(http.StatusBadRequest, validationErrs)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return e.String(http.StatusInternalServerError, "Error inserting product")
	}

	return e.JSON(http.StatusCreated, product)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	id := e.Param("id")

	body, err := io.ReadAll(e.Request().Body)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return e.String(http.StatusInternalServerError, "Error updating product")
	}

	payload, validationErrs := c.validation.ValidateProductPayload(body)
	if len(validationErrs) > 0 {
		return e.JSON(http.StatusBadRequest, validationErrs)
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return writeProductError(e, err, "Error updating product")
	}

	return e.JSON(http.StatusOK, product)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("id")

	product, err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return writeProductError(e, err, "Error deleting product")
	}

	return e.JSON(http.StatusOK, product)
}

// writeProductError maps a repository error to the response the endpoint
// exposes: a missing or syntactically invalid id is a plain-text 404, every
// other failure is a generic 500 whose detail stays in the log.
func writeProductError(e echo.Context, err error, serverErrorMessage string) error {
	if errs.GetErrorStatusCode(err) == http.StatusNotFound {
		return e.String(http.StatusNotFound, "Product not found")
	}

	return e.String(http.StatusInternalServerError, serverErrorMessage)
}
