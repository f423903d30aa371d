package controllers_test

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"faithshop/models"
	"faithshop/repository"
)

// fakeStore is an in-memory ProductStore for handler tests. It mirrors
// the repository's contract: opaque hex ids, unique sku, newest-first
// listing.
type fakeStore struct {
	products []models.Product
	listErr  error
}

func (f *fakeStore) List(context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Product, len(f.products))
	// newest first
	for i, p := range f.products {
		out[len(f.products)-1-i] = p
	}
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, p := range f.products {
		if p.ID.Hex() == id {
			q := p
			return &q, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) Create(_ context.Context, in *models.ProductInput) (*models.Product, error) {
	if f.bySKU(in.SKU) != nil {
		return nil, &repository.DuplicateKeyError{Field: "sku"}
	}
	now := time.Now().UTC()
	p := models.Product{ID: primitive.NewObjectID(), CreatedAt: now, UpdatedAt: now}
	in.Apply(&p)
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeStore) Update(_ context.Context, id string, in *models.ProductInput) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	for i := range f.products {
		if f.products[i].ID.Hex() != id {
			continue
		}
		if other := f.bySKU(in.SKU); other != nil && other.ID.Hex() != id {
			return nil, &repository.DuplicateKeyError{Field: "sku"}
		}
		in.Apply(&f.products[i])
		f.products[i].UpdatedAt = time.Now().UTC()
		q := f.products[i]
		return &q, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) bySKU(sku string) *models.Product {
	for i := range f.products {
		if f.products[i].SKU == sku {
			return &f.products[i]
		}
	}
	return nil
}

var errStorage = errors.New("storage down")
