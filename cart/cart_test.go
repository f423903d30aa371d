package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"faithshop/models"
)

func newProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()
	return models.Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
	}
}

func TestAddMergesQuantities(t *testing.T) {
	c := New()
	p := newProduct(t, "Dell XPS 13", 1200)

	c.Add(p, 2)
	c.Add(p, 3)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, c.Count())
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := New()
	c.Add(newProduct(t, "Cable", 15), 0)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	p := newProduct(t, "iPhone 14", 1100)
	other := newProduct(t, "Cable", 15)

	c.Add(p, 2)
	c.Add(other, 1)
	c.SetQuantity(p.ID.Hex(), 0)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, other.ID.Hex(), c.Lines()[0].ProductID)
	assert.Equal(t, 15.0, c.Total())
}

func TestSetQuantityOverwrites(t *testing.T) {
	c := New()
	p := newProduct(t, "iPhone 14", 1100)

	c.Add(p, 2)
	c.SetQuantity(p.ID.Hex(), 7)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 7, c.Lines()[0].Quantity)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New()
	c.Add(newProduct(t, "Cable", 15), 1)

	c.Remove("missing")

	assert.Len(t, c.Lines(), 1)
}

func TestTotalUsesSnapshotPrice(t *testing.T) {
	c := New()
	p := newProduct(t, "Galaxy S23", 950)
	c.Add(p, 2)

	// A later price change on the product does not reprice the line.
	p.Price = 500
	c.Add(newProduct(t, "Cable", 15), 1)

	assert.Equal(t, 950.0*2+15, c.Total())
}

func TestCountSumsQuantities(t *testing.T) {
	c := New()
	c.Add(newProduct(t, "a", 1), 2)
	c.Add(newProduct(t, "b", 1), 3)

	assert.Equal(t, 5, c.Count())
}

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	p := newProduct(t, "Cable", 15)

	s.With("alice", func(c *Cart) { c.Add(p, 1) })
	s.With("bob", func(c *Cart) { assert.Empty(t, c.Lines()) })
	s.With("alice", func(c *Cart) { assert.Equal(t, 1, c.Count()) })
}

func TestStoreSerialisesAccess(t *testing.T) {
	s := NewStore()
	p := newProduct(t, "Cable", 15)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.With("sess", func(c *Cart) { c.Add(p, 1) })
		}()
	}
	wg.Wait()

	s.With("sess", func(c *Cart) {
		assert.Equal(t, 50, c.Count())
		assert.Len(t, c.Lines(), 1)
	})
}
