package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPage(t *testing.T) {
	assert.True(t, ProductPage{Page: 0, TotalPages: 3}.IsFirst())
	assert.False(t, ProductPage{Page: 0, TotalPages: 3}.IsLast())
	assert.True(t, ProductPage{Page: 2, TotalPages: 3}.IsLast())
	assert.True(t, ProductPage{Page: 0, TotalPages: 0}.IsLast(), "an empty listing is both first and last")
}

func TestProductSpecsOmitted(t *testing.T) {
	b, err := json.Marshal(Product{ID: "p1", Title: "Mono 400W"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "averageRating")
	assert.Equal(t, map[string]any{}, raw["specs"])

	wattage := 400.0
	b, err = json.Marshal(Product{Specs: ProductSpecs{Wattage: &wattage}})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, map[string]any{"wattage": 400.0}, raw["specs"])
}
