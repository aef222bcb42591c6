package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSnapshotResolver_CopiesCurrentTitle(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Title: "旧タイトル", IsActive: true}, nil)

	r := usecase.NewSnapshotResolver()

	items, err := r.Resolve(context.Background(), products, []model.CartItem{
		{ProductID: 100, Quantity: 3, Variant: "blue"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "旧タイトル", items[0].TitleSnapshot)
	assert.Equal(t, "blue", items[0].Variant)
	assert.Equal(t, int64(3), items[0].Quantity)
}

func TestSnapshotResolver_InactiveProduct_Aborts(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Title: "停止中", IsActive: false}, nil)

	r := usecase.NewSnapshotResolver()

	items, err := r.Resolve(context.Background(), products, []model.CartItem{
		{ProductID: 100, Quantity: 1},
	})
	assert.Nil(t, items)
	assert.ErrorIs(t, err, usecase.ErrProductGone)
}
