package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"faithshop/catalog"
	"faithshop/models"
	"faithshop/pkg/logx"
	"faithshop/repository"
)

// ProductController serves the catalog REST surface.
type ProductController struct {
	Store repository.ProductStore
}

func NewProductController(store repository.ProductStore) *ProductController {
	return &ProductController{Store: store}
}

// GetProducts returns all products, newest first. When any filter or
// sort query param is present the full list is run through the query
// engine instead.
//
// GET /api/products?search=&category=&brand=&price_min=&price_max=&in_stock=&sort=
func (pc *ProductController) GetProducts(c *fiber.Ctx) error {
	products, err := pc.Store.List(c.Context())
	if err != nil {
		logx.Error().Err(err).Msg("list products failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	spec, filtered := querySpec(c)
	if filtered {
		products = catalog.FilterAndSort(products, spec)
	}
	return c.JSON(products)
}

// GetProductFacets returns the distinct category and brand lists used
// to populate filter controls, each prefixed with "All".
//
// GET /api/products/facets
func (pc *ProductController) GetProductFacets(c *fiber.Ctx) error {
	products, err := pc.Store.List(c.Context())
	if err != nil {
		logx.Error().Err(err).Msg("list products failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{
		"categories": catalog.DistinctCategories(products),
		"brands":     catalog.DistinctBrands(products),
	})
}

// GetProductByID returns a single product.
//
// GET /api/products/:id
func (pc *ProductController) GetProductByID(c *fiber.Ctx) error {
	p, err := pc.Store.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(p)
}

// CreateProduct creates a product from the posted fields.
//
// POST /api/products
func (pc *ProductController) CreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p, err := pc.Store.Create(c.Context(), &in)
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdateProduct replaces the mutable fields of a product.
//
// PUT /api/products/:id
func (pc *ProductController) UpdateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p, err := pc.Store.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(p)
}

// DeleteProduct removes a product by id.
//
// DELETE /api/products/:id
func (pc *ProductController) DeleteProduct(c *fiber.Ctx) error {
	if err := pc.Store.Delete(c.Context(), c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// productError maps repository errors onto the HTTP surface:
// validation and duplicate-sku conflicts are 400 with a field message,
// unknown ids are 404, everything else is a 500.
func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	case errors.Is(err, repository.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	case repository.IsDuplicateKey(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		logx.Error().Err(err).Msg("product request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
}

// querySpec builds a catalog.Spec from the query string and reports
// whether any filter/sort param was supplied at all.
func querySpec(c *fiber.Ctx) (catalog.Spec, bool) {
	spec := catalog.DefaultSpec()
	filtered := false

	if v := strings.TrimSpace(c.Query("search")); v != "" {
		spec.Search = v
		filtered = true
	}
	if v := c.Query("category"); v != "" {
		spec.Category = v
		filtered = true
	}
	if v := c.Query("brand"); v != "" {
		spec.Brand = v
		filtered = true
	}
	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.PriceMin = f
			filtered = true
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.PriceMax = f
			filtered = true
		}
	}
	if c.Query("in_stock") == "true" {
		spec.InStockOnly = true
		filtered = true
	}
	if v := c.Query("sort"); v != "" {
		spec.Sort = v
		filtered = true
	}
	return spec, filtered
}
