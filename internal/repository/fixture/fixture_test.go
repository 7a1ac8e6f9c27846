package fixture

import (
	"context"
	"testing"

	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	s, err := NewCatalogSource().Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, s.Users, 4)
	assert.Len(t, s.Categories, 5)
	assert.Len(t, s.Products, 9)
	assert.Equal(t, "Milk", s.Products[0].Name)
	assert.Equal(t, int64(2), s.Categories[0].OwnerID)
}

func TestLoad_BrokenData(t *testing.T) {
	_, err := NewCatalogSourceFromBytes([]byte("{")).Load(context.Background())

	assert.ErrorIs(t, err, e.ErrCatalogSnapshot)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCatalogSource().Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
