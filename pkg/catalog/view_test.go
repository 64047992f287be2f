package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/suryakart/suryakart/pkg/storage"
	"github.com/suryakart/suryakart/pkg/types"
)

func TestEMIPlans(t *testing.T) {
	plans := EMIPlans(16200, []int{3, 6, 12, 0})
	assert.Equal(t, []types.EMIPlan{
		{Months: 3, MonthlyAmount: 5400, Display: "₹5,400/month for 3 months"},
		{Months: 6, MonthlyAmount: 2700, Display: "₹2,700/month for 6 months"},
		{Months: 12, MonthlyAmount: 1350, Display: "₹1,350/month for 12 months"},
	}, plans)

	plans = EMIPlans(1000, []int{3})
	assert.Equal(t, 333.0, plans[0].MonthlyAmount)
	plans = EMIPlans(1000, []int{6})
	assert.Equal(t, 167.0, plans[0].MonthlyAmount)
}

func TestMadeInIndia(t *testing.T) {
	assert.False(t, MadeInIndia(types.Product{}))
	assert.True(t, MadeInIndia(types.Product{Specs: types.ProductSpecs{Manufacturer: ptr("Waaree Energies, India")}}))
	assert.True(t, MadeInIndia(types.Product{Specs: types.ProductSpecs{Certifications: ptr("IEC 61215, ALMM listed")}}))
	assert.False(t, MadeInIndia(types.Product{Specs: types.ProductSpecs{Manufacturer: ptr("Jinko")}}))
}

func TestView(t *testing.T) {
	svc := New(storage.NewMemory())

	v := svc.View(types.Product{
		Title:         "Mono PERC 540W",
		Price:         1800000,
		Discount:      10,
		DiscountPrice: 1620000,
		Stock:         2,
	})
	assert.Equal(t, "₹16,20,000", v.CurrentPriceDisplay)
	assert.Equal(t, "₹18,00,000", v.OriginalPriceDisplay)
	assert.Equal(t, GSTNote, v.GSTNote)
	assert.Equal(t, "EMI from ₹1,35,000/month", v.EMIHeadline)
	assert.Equal(t, PlaceholderImage, v.ImageSrc)
	assert.Len(t, v.EMIPlans, 3)
	assert.True(t, v.InStock)
	assert.False(t, v.MadeInIndia)

	t.Run("NoDiscount", func(t *testing.T) {
		v := svc.View(types.Product{Price: 500, DiscountPrice: 500, Image: "/img/x.jpg"})
		assert.Empty(t, v.OriginalPriceDisplay)
		assert.Equal(t, "/img/x.jpg", v.ImageSrc)
		assert.False(t, v.InStock)
	})

	t.Run("SpecImage", func(t *testing.T) {
		v := svc.View(types.Product{Specs: types.ProductSpecs{ImageURL: ptr("https://cdn.example.com/p.jpg")}})
		assert.Equal(t, "https://cdn.example.com/p.jpg", v.ImageSrc)
		assert.Empty(t, v.EMIHeadline)
	})
}

func TestViewPage(t *testing.T) {
	svc := New(storage.NewMemory())
	page := svc.ViewPage(types.ProductPage{
		Items:      []types.Product{{ID: "a", DiscountPrice: 1200}},
		Page:       1,
		Size:       1,
		Total:      2,
		TotalPages: 2,
	})
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, "a", page.Items[0].ID)
		assert.Equal(t, "EMI from ₹100/month", page.Items[0].EMIHeadline)
	}
}
