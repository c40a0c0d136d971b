package order_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	validProductID := kernel.NewUUID()

	t.Run("should create valid item and snapshot line price", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 3, 12.5)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, 37.5, item.Price())
	})

	t.Run("should multiply price by quantity of one", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 1, 9.99)

		require.NoError(t, err)
		assert.Equal(t, 9.99, item.Price())
	})

	t.Run("should accept free product", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID, 5, 0)

		require.NoError(t, err)
		assert.Equal(t, 0.0, item.Price())
	})

	t.Run("should fail with invalid item ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, validProductID, 1, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid product ID", func(t *testing.T) {
		var invalidProductID kernel.UUID

		_, err := order.NewItem(validID, invalidProductID, 1, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: productId")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(validID, validProductID, 0, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewItem(validID, validProductID, -2, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: quantity")
		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("should fail with negative product price", func(t *testing.T) {
		_, err := order.NewItem(validID, validProductID, 1, -0.5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: productPrice")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidProductID kernel.UUID

		_, err := order.NewItem(invalidID, invalidProductID, -1, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is invalid: productId")
		assert.Contains(t, err.Error(), "value is invalid: quantity")
		assert.Contains(t, err.Error(), "value is invalid: productPrice")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore item with already snapshotted price", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()

		item, err := order.RestoreItem(id, productID, 4, 17.0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 4, item.Quantity())
		assert.Equal(t, 17.0, item.Price())
	})

	t.Run("should fail with negative stored price", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 1, -3.0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: price")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should pass for constructed item", func(t *testing.T) {
		item, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 1)

		require.NoError(t, item.Validate())
	})

	t.Run("should fail for zero value item", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
