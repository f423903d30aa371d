// Package repository implements the product store over MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"faithshop/models"
)

const productCollection = "products"

// ProductStore is the persistence boundary for products. Ids are
// opaque hex strings assigned on Create.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, in *models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, in *models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// MongoProductStore implements ProductStore on a Mongo collection with
// a unique index on sku.
type MongoProductStore struct {
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection(productCollection)}
}

// EnsureIndexes creates the unique sku index. Safe to call on every
// startup.
func (s *MongoProductStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create sku index: %w", err)
	}
	return nil
}

// List returns every product, newest first.
func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var p models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (s *MongoProductStore) Create(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	now := time.Now().UTC()
	p := &models.Product{CreatedAt: now, UpdatedAt: now}
	in.Apply(p)

	result, err := s.collection.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &DuplicateKeyError{Field: "sku"}
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// Update replaces the mutable fields of the product. Concurrent updates
// are last-write-wins; there is no version token.
func (s *MongoProductStore) Update(ctx context.Context, id string, in *models.ProductInput) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var fields models.Product
	in.Apply(&fields)

	update := bson.M{"$set": bson.M{
		"name":        fields.Name,
		"sku":         fields.SKU,
		"category":    fields.Category,
		"brand":       fields.Brand,
		"price":       fields.Price,
		"salePrice":   fields.SalePrice,
		"description": fields.Description,
		"specs":       fields.Specs,
		"imageUrl":    fields.ImageURL,
		"inStock":     fields.InStock,
		"updatedAt":   time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &DuplicateKeyError{Field: "sku"}
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &updated, nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
