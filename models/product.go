package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry as stored in the products collection.
// SKU carries a unique index; the repository reports violations as a
// duplicate-key conflict.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	SKU         string             `json:"sku" bson:"sku"`
	Category    string             `json:"category" bson:"category"`
	Brand       string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	SalePrice   *float64           `json:"salePrice" bson:"salePrice"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Specs       string             `json:"specs,omitempty" bson:"specs,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	InStock     bool               `json:"inStock" bson:"inStock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput is the mutable field set accepted on create and update.
// Update is a full replace of these fields.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	SKU         string   `json:"sku" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Brand       string   `json:"brand"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	SalePrice   *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	Description string   `json:"description"`
	Specs       string   `json:"specs"`
	ImageURL    string   `json:"imageUrl"`
	InStock     *bool    `json:"inStock"`
}

var validate = validator.New()

// Normalize trims text fields and upper-cases the SKU, mirroring the
// write-time schema behaviour of the catalog store.
func (in *ProductInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.ToUpper(strings.TrimSpace(in.SKU))
	in.Category = strings.TrimSpace(in.Category)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Description = strings.TrimSpace(in.Description)
	in.Specs = strings.TrimSpace(in.Specs)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// Validate checks required fields and numeric minimums. Returns a
// ValidationErrors with one field-level message per violation.
func (in *ProductInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		out := make(ValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldMessage(fe))
		}
		return out
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonField(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be at least " + fe.Param()
	default:
		return field + " is invalid"
	}
}

func jsonField(name string) string {
	switch name {
	case "Name":
		return "name"
	case "SKU":
		return "sku"
	case "Category":
		return "category"
	case "Price":
		return "price"
	case "SalePrice":
		return "salePrice"
	default:
		return strings.ToLower(name)
	}
}

// Apply copies the input onto a product. InStock defaults to true when
// the field is omitted, matching the schema default.
func (in *ProductInput) Apply(p *Product) {
	p.Name = in.Name
	p.SKU = in.SKU
	p.Category = in.Category
	p.Brand = in.Brand
	if in.Price != nil {
		p.Price = *in.Price
	}
	p.SalePrice = in.SalePrice
	p.Description = in.Description
	p.Specs = in.Specs
	p.ImageURL = in.ImageURL
	if in.InStock != nil {
		p.InStock = *in.InStock
	} else {
		p.InStock = true
	}
}

// ValidationErrors is the set of field-level messages for one request.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, ", ")
}
