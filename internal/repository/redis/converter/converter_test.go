package converter

import (
	"testing"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartConverter_RoundTrip(t *testing.T) {
	conv := NewCartConverterImpl()
	cart := domain.Cart{
		1:  domain.NewCartLine("Tea", 1000, 3),
		42: domain.NewCartLine("Coffee", 500, 1),
	}

	model := conv.ToRedisModel(cart)
	require.Len(t, model, 2)
	assert.Equal(t, CartLineRedisModel{Name: "Tea", Price: 1000, Qty: 3}, model["1"])

	restored, err := conv.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, cart, restored)
}

func TestCartConverter_ToEntity_BadKey(t *testing.T) {
	conv := NewCartConverterImpl()

	_, err := conv.ToEntity(CartRedisModel{"not-a-number": {Name: "Tea", Price: 1000, Qty: 1}})
	require.Error(t, err)
}
