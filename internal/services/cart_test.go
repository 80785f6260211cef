package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
)

type fakeCartRepo struct {
	mu    sync.Mutex
	items []*models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{}
}

func (f *fakeCartRepo) Insert(_ context.Context, item *models.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = primitive.NewObjectID()
	stored := *item
	f.items = append(f.items, &stored)
	return nil
}

func (f *fakeCartRepo) FindByUserAndProduct(_ context.Context, userID, productID string) (*models.CartItem, error) {
	return f.findBy(func(i *models.CartItem) bool {
		return i.UserID == userID && i.ProductID == productID
	})
}

func (f *fakeCartRepo) FindByUserAndID(_ context.Context, userID, itemID string) (*models.CartItem, error) {
	return f.findBy(func(i *models.CartItem) bool {
		return i.UserID == userID && i.ID.Hex() == itemID
	})
}

func (f *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CartItem
	for _, i := range f.items {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) UpdateQuantity(_ context.Context, id primitive.ObjectID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, i := range f.items {
		if i.ID == id {
			i.Quantity = quantity
		}
	}
	return nil
}

// DeleteByProduct removes the first item matching the product id, like a
// deleteOne with no owner in the filter.
func (f *fakeCartRepo) DeleteByProduct(_ context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for idx, i := range f.items {
		if i.ProductID == productID {
			f.items = append(f.items[:idx], f.items[idx+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartRepo) DeleteAllByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.items[:0]
	for _, i := range f.items {
		if i.UserID != userID {
			kept = append(kept, i)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartRepo) findBy(match func(*models.CartItem) bool) (*models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, i := range f.items {
		if match(i) {
			copied := *i
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) seed(item models.CartItem) models.CartItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	stored := item
	f.items = append(f.items, &stored)
	return stored
}

type fakeProductRepo struct {
	products map[string]models.Product
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]models.Product)}
	for _, p := range products {
		f.products[p.ID.Hex()] = p
	}
	return f
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindLatestByCategory(ctx context.Context, category string, limit int64) ([]models.Product, error) {
	out, err := f.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Search(_ context.Context, _ string) ([]models.Product, error) {
	return nil, nil
}

func testProduct() models.Product {
	return models.Product{
		ID:          primitive.NewObjectID(),
		ProductName: "Canvas Sneakers",
		BrandName:   "Dropkicks",
		Category:    "shoes",
		Price:       49.99,
	}
}

func TestCartAdd_DuplicatesAllowed(t *testing.T) {
	product := testProduct()
	items := newFakeCartRepo()
	svc := NewCartService(items, newFakeProductRepo(product))
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "u1", product.ID.Hex()))
	require.NoError(t, svc.Add(ctx, "u1", product.ID.Hex()))

	list, err := svc.Items(ctx, "u1")
	require.NoError(t, err)
	// No merge: two distinct entries, each with quantity 1.
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.Equal(t, 1, list[0].Quantity)
	assert.Equal(t, 1, list[1].Quantity)
}

func TestCartAdd_UnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), newFakeProductRepo())

	err := svc.Add(context.Background(), "u1", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCartIncreaseQuantity(t *testing.T) {
	items := newFakeCartRepo()
	seeded := items.seed(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	svc := NewCartService(items, newFakeProductRepo())
	ctx := context.Background()

	require.NoError(t, svc.IncreaseQuantity(ctx, "u1", seeded.ID.Hex()))

	got, err := items.FindByUserAndID(ctx, "u1", seeded.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)

	err = svc.IncreaseQuantity(ctx, "u1", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// An item id belonging to another user does not match.
	err = svc.IncreaseQuantity(ctx, "u2", seeded.ID.Hex())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCartDecreaseQuantity_AboveOne(t *testing.T) {
	items := newFakeCartRepo()
	seeded := items.seed(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 3})
	svc := NewCartService(items, newFakeProductRepo())
	ctx := context.Background()

	removed, err := svc.DecreaseQuantity(ctx, "u1", seeded.ID.Hex())
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := items.FindByUserAndID(ctx, "u1", seeded.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Quantity)
}

func TestCartDecreaseQuantity_ReachingZeroRemovesAllUserItems(t *testing.T) {
	items := newFakeCartRepo()
	target := items.seed(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	items.seed(models.CartItem{UserID: "u1", ProductID: "p2", Quantity: 5})
	other := items.seed(models.CartItem{UserID: "u2", ProductID: "p1", Quantity: 2})
	svc := NewCartService(items, newFakeProductRepo())
	ctx := context.Background()

	removed, err := svc.DecreaseQuantity(ctx, "u1", target.ID.Hex())
	require.NoError(t, err)
	assert.True(t, removed)

	// The delete is keyed by user id only: the untouched p2 entry is gone too.
	list, err := svc.Items(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Other users' carts are unaffected.
	got, err := items.FindByUserAndID(ctx, "u2", other.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCartRemove_DeletesByProductOnly(t *testing.T) {
	items := newFakeCartRepo()
	// u2's entry for the product was inserted first.
	items.seed(models.CartItem{UserID: "u2", ProductID: "p1", Quantity: 1})
	items.seed(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	svc := NewCartService(items, newFakeProductRepo())
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "u1", "p1"))

	// The delete filter omits the owner, so the first match (u2's entry)
	// is the one removed.
	u2Items, err := svc.Items(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, u2Items)

	u1Items, err := svc.Items(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, u1Items, 1)
}

func TestCartRemove_NotInCart(t *testing.T) {
	svc := NewCartService(newFakeCartRepo(), newFakeProductRepo())

	err := svc.Remove(context.Background(), "u1", "p1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCartContains(t *testing.T) {
	items := newFakeCartRepo()
	items.seed(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	svc := NewCartService(items, newFakeProductRepo())
	ctx := context.Background()

	in, err := svc.Contains(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.Contains(ctx, "u1", "p2")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestCartClear(t *testing.T) {
	items := newFakeCartRepo()
	items.seed(models.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	items.seed(models.CartItem{UserID: "u1", ProductID: "p2", Quantity: 2})
	svc := NewCartService(items, newFakeProductRepo())
	ctx := context.Background()

	require.NoError(t, svc.Clear(ctx, "u1"))
	list, err := svc.Items(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Clearing an already-empty cart still succeeds.
	require.NoError(t, svc.Clear(ctx, "u1"))
}
