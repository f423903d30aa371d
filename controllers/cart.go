package controllers

import (
	"github.com/gofiber/fiber/v2"

	"faithshop/cart"
	"faithshop/models"
	"faithshop/repository"
	"faithshop/utils"
)

// CartController exposes the session-scoped cart aggregator. Carts live
// in memory only and vanish with the session.
type CartController struct {
	Carts    *cart.Store
	Products repository.ProductStore
}

func NewCartController(carts *cart.Store, products repository.ProductStore) *CartController {
	return &CartController{Carts: carts, Products: products}
}

type cartView struct {
	Items []models.CartLine `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the session's cart.
//
// GET /api/cart
func (cc *CartController) GetCart(c *fiber.Ctx) error {
	return c.JSON(cc.view(utils.SessionID(c)))
}

// AddItem adds a product to the cart, merging quantities when the
// product is already present. The line snapshots name, price and image
// at add time.
//
// POST /api/cart/items
func (cc *CartController) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	p, err := cc.Products.GetByID(c.Context(), req.ProductID)
	if err != nil {
		return productError(c, err)
	}

	sid := utils.SessionID(c)
	cc.Carts.With(sid, func(crt *cart.Cart) {
		crt.Add(*p, req.Quantity)
	})
	return c.Status(fiber.StatusCreated).JSON(cc.view(sid))
}

// SetItemQuantity overwrites a line's quantity; zero removes the line.
//
// PUT /api/cart/items/:product_id
func (cc *CartController) SetItemQuantity(c *fiber.Ctx) error {
	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	sid := utils.SessionID(c)
	cc.Carts.With(sid, func(crt *cart.Cart) {
		crt.SetQuantity(c.Params("product_id"), req.Quantity)
	})
	return c.JSON(cc.view(sid))
}

// RemoveItem drops a line from the cart.
//
// DELETE /api/cart/items/:product_id
func (cc *CartController) RemoveItem(c *fiber.Ctx) error {
	sid := utils.SessionID(c)
	cc.Carts.With(sid, func(crt *cart.Cart) {
		crt.Remove(c.Params("product_id"))
	})
	return c.JSON(cc.view(sid))
}

func (cc *CartController) view(sessionID string) cartView {
	var v cartView
	cc.Carts.With(sessionID, func(crt *cart.Cart) {
		v = cartView{Items: crt.Lines(), Total: crt.Total(), Count: crt.Count()}
	})
	return v
}
