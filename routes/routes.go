package routes

import (
	"github.com/gofiber/fiber/v2"

	"faithshop/controllers"
)

func RegisterRoutes(app *fiber.App, products *controllers.ProductController, uploads *controllers.UploadController, carts *controllers.CartController) {

	// catalog
	app.Get("/api/products", products.GetProducts)
	app.Get("/api/products/facets", products.GetProductFacets)
	app.Get("/api/products/:id", products.GetProductByID)
	app.Post("/api/products", products.CreateProduct)
	app.Put("/api/products/:id", products.UpdateProduct)
	app.Delete("/api/products/:id", products.DeleteProduct)

	// image upload
	app.Post("/api/upload", uploads.UploadImages)

	// cart
	app.Get("/api/cart", carts.GetCart)
	app.Post("/api/cart/items", carts.AddItem)
	app.Put("/api/cart/items/:product_id", carts.SetItemQuantity)
	app.Delete("/api/cart/items/:product_id", carts.RemoveItem)
}
