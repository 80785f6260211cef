package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dropstore/dropstore-backend/internal/apperror"
)

func TestCatalogDetails(t *testing.T) {
	product := testProduct()
	svc := NewCatalogService(newFakeProductRepo(product))
	ctx := context.Background()

	got, err := svc.Details(ctx, product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, product.ProductName, got.ProductName)

	_, err = svc.Details(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCatalogSearch_EmptyQuery(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo())

	_, err := svc.Search(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
