package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/suryakart/suryakart/pkg/format"
	"github.com/suryakart/suryakart/pkg/types"
)

const (
	GSTNote          = "Price inclusive of GST"
	PlaceholderImage = "/img/placeholder.jpg"
	headlineMonths   = 12
)

// EMIPlans splits price into equal monthly instalments for each tenure,
// rounded to whole rupees.
func EMIPlans(price float64, months []int) []types.EMIPlan {
	plans := make([]types.EMIPlan, 0, len(months))
	for _, m := range months {
		if m <= 0 {
			continue
		}
		amount := decimal.NewFromFloat(price).Div(decimal.NewFromInt(int64(m))).Round(0).InexactFloat64()
		plans = append(plans, types.EMIPlan{
			Months:        m,
			MonthlyAmount: amount,
			Display:       fmt.Sprintf("%s/month for %d months", format.INR(amount), m),
		})
	}
	return plans
}

// MadeInIndia reports whether the product's manufacturer or certifications
// mark it as domestically manufactured.
func MadeInIndia(p types.Product) bool {
	for _, s := range []*string{p.Specs.Manufacturer, p.Specs.Certifications} {
		if s == nil {
			continue
		}
		v := strings.ToLower(*s)
		if strings.Contains(v, "india") || strings.Contains(v, "almm") {
			return true
		}
	}
	return false
}

// View decorates p with display prices for shoppers.
func (s *Service) View(p types.Product) types.ProductView {
	v := types.ProductView{
		Product:             p,
		CurrentPriceDisplay: format.INR(p.DiscountPrice),
		GSTNote:             GSTNote,
		EMIPlans:            EMIPlans(p.DiscountPrice, s.emiMonths),
		ImageSrc:            p.Image,
		MadeInIndia:         MadeInIndia(p),
		InStock:             p.Stock > 0,
	}
	if p.Discount > 0 {
		v.OriginalPriceDisplay = format.INR(p.Price)
	}
	switch {
	case v.ImageSrc != "":
	case p.Specs.ImageURL != nil && *p.Specs.ImageURL != "":
		v.ImageSrc = *p.Specs.ImageURL
	default:
		v.ImageSrc = PlaceholderImage
	}
	// the headline always uses a 12 month tenure even if it isn't offered
	twelve := decimal.NewFromFloat(p.DiscountPrice).Div(decimal.NewFromInt(headlineMonths)).Round(0).InexactFloat64()
	if twelve > 0 {
		v.EMIHeadline = fmt.Sprintf("EMI from %s/month", format.INR(twelve))
	}
	return v
}

// ViewPage converts a page of products into views.
func (s *Service) ViewPage(page types.ProductPage) types.ProductViewPage {
	out := types.ProductViewPage{
		Items:      make([]types.ProductView, 0, len(page.Items)),
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, p := range page.Items {
		out.Items = append(out.Items, s.View(p))
	}
	return out
}
