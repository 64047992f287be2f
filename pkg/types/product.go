package types

// Product is a solar product sold through the shop. Prices are in rupees and
// include GST. Optional datasheet values are pointers so an update can
// tell "not provided" apart from zero.
type Product struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	Description   string  `json:"description" yaml:"description"`
	Category      string  `json:"category" yaml:"category"`
	Price         float64 `json:"price" yaml:"price"`
	Discount      int     `json:"discount" yaml:"discount"` // percent
	DiscountPrice float64 `json:"discountPrice" yaml:"-"`
	Stock         int     `json:"stock" yaml:"stock"`
	Image         string  `json:"image" yaml:"image"`
	Active        bool    `json:"active" yaml:"active"`

	AverageRating *float64 `json:"averageRating,omitempty" yaml:"averageRating,omitempty"`
	TotalReviews  *int     `json:"totalReviews,omitempty" yaml:"totalReviews,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty" yaml:"stockQuantity,omitempty"`

	Specs ProductSpecs `json:"specs" yaml:"specs"`
}

// ProductSpecs are the datasheet values of a panel.
type ProductSpecs struct {
	// Electrical
	CellCount                       *int     `json:"cellCount,omitempty" yaml:"cellCount,omitempty"`
	Efficiency                      *float64 `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
	MaximumPowerCurrent             *float64 `json:"maximumPowerCurrent,omitempty" yaml:"maximumPowerCurrent,omitempty"`
	MaximumPowerVoltage             *float64 `json:"maximumPowerVoltage,omitempty" yaml:"maximumPowerVoltage,omitempty"`
	MaximumSystemVoltage            *float64 `json:"maximumSystemVoltage,omitempty" yaml:"maximumSystemVoltage,omitempty"`
	OpenCircuitVoltage              *float64 `json:"openCircuitVoltage,omitempty" yaml:"openCircuitVoltage,omitempty"`
	ShortCircuitCurrent             *float64 `json:"shortCircuitCurrent,omitempty" yaml:"shortCircuitCurrent,omitempty"`
	OperatingTemperature            *float64 `json:"operatingTemperature,omitempty" yaml:"operatingTemperature,omitempty"`
	TemperatureCoefficient          *float64 `json:"temperatureCoefficient,omitempty" yaml:"temperatureCoefficient,omitempty"`
	NominalOperatingCellTemperature *float64 `json:"nominalOperatingCellTemperature,omitempty" yaml:"nominalOperatingCellTemperature,omitempty"`
	PeakPowerOutput                 *float64 `json:"peakPowerOutput,omitempty" yaml:"peakPowerOutput,omitempty"`
	ModuleEfficiency                *float64 `json:"moduleEfficiency,omitempty" yaml:"moduleEfficiency,omitempty"`
	Wattage                         *float64 `json:"wattage,omitempty" yaml:"wattage,omitempty"`
	Weight                          *float64 `json:"weight,omitempty" yaml:"weight,omitempty"` // kg

	// Construction
	BacksheetMaterial     *string `json:"backsheetMaterial,omitempty" yaml:"backsheetMaterial,omitempty"`
	CableLength           *string `json:"cableLength,omitempty" yaml:"cableLength,omitempty"`
	CellType              *string `json:"cellType,omitempty" yaml:"cellType,omitempty"`
	Certifications        *string `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	ConnectorType         *string `json:"connectorType,omitempty" yaml:"connectorType,omitempty"`
	Dimensions            *string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	FrameType             *string `json:"frameType,omitempty" yaml:"frameType,omitempty"`
	ImageURL              *string `json:"imageURL,omitempty" yaml:"imageURL,omitempty"`
	InstallationType      *string `json:"installationType,omitempty" yaml:"installationType,omitempty"`
	InverterCompatibility *string `json:"inverterCompatibility,omitempty" yaml:"inverterCompatibility,omitempty"`
	JunctionBoxType       *string `json:"junctionBoxType,omitempty" yaml:"junctionBoxType,omitempty"`
	Manufacturer          *string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Warranty              *string `json:"warranty,omitempty" yaml:"warranty,omitempty"`
}

// ProductPage is one page of a product listing. Page is 0-based.
type ProductPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

// IsFirst reports whether p is the first page.
func (p ProductPage) IsFirst() bool {
	return p.Page == 0
}

// IsLast reports whether no page follows p.
func (p ProductPage) IsLast() bool {
	return p.Page >= p.TotalPages-1
}

// EMIPlan is an instalment option for a product price.
type EMIPlan struct {
	Months        int     `json:"months"`
	MonthlyAmount float64 `json:"monthlyAmount"`
	Display       string  `json:"display"`
}

// ProductView is a product as presented to shoppers with formatted prices.
type ProductView struct {
	Product
	CurrentPriceDisplay  string    `json:"currentPriceDisplay"`
	OriginalPriceDisplay string    `json:"originalPriceDisplay,omitempty"`
	GSTNote              string    `json:"gstNote"`
	EMIPlans             []EMIPlan `json:"emiPlans"`
	EMIHeadline          string    `json:"emiHeadline,omitempty"`
	ImageSrc             string    `json:"imageSrc"`
	MadeInIndia          bool      `json:"madeInIndia"`
	InStock              bool      `json:"inStock"`
}

// ProductViewPage is a ProductPage of views.
type ProductViewPage struct {
	Items      []ProductView `json:"items"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// User is an authenticated administrator of the shop.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}
