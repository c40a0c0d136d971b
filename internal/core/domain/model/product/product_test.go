package product_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.RestoreProduct(id, "Tomatoes", 4.20)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Tomatoes", p.Name())
		assert.Equal(t, 4.20, p.Price())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Samples", 0)

		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Price())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.RestoreProduct(invalidID, "Tomatoes", 4.20)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Tomatoes", -1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "value is invalid: price")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail for zero value product", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
