package entities

import "time"

// QuoteStatus represents the lifecycle of a customer quote.
//
// Domain notes:
//   - started: the intake form was submitted and candidate prices were computed.
//   - in_progress: the customer is selecting services in the estimator.
//   - completed: the quote was submitted and totaled.
//   - sent_email: the estimate was emailed to the customer.
type QuoteStatus string

const (
	QuoteStatusStarted    QuoteStatus = "started"
	QuoteStatusInProgress QuoteStatus = "in_progress"
	QuoteStatusCompleted  QuoteStatus = "completed"
	QuoteStatusSentEmail  QuoteStatus = "sent_email"
)

// Frequency is the recurring-service cadence chosen by the customer.
type Frequency string

const (
	FrequencyOneTime     Frequency = "one_time"
	FrequencyThreeMonths Frequency = "three_months"
	FrequencySixMonths   Frequency = "six_months"
	FrequencyYearly      Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyThreeMonths, FrequencySixMonths, FrequencyYearly:
		return true
	}
	return false
}

// PackageTier identifies the window-cleaning package a main service belongs to.
type PackageTier string

const (
	// PackageTierDefined is the premium package (screens, tracks and frames included).
	PackageTierDefined PackageTier = "defined"
	// PackageTierStandard is the reduced-scope package.
	PackageTierStandard PackageTier = "standard"
)

// ServiceKey identifies a priced service.
type ServiceKey string

const (
	ServiceBasicBoth            ServiceKey = "basic-both"
	ServiceBasicExt             ServiceKey = "basic-ext"
	ServiceStandardBoth         ServiceKey = "standard-both"
	ServiceStandardExt          ServiceKey = "standard-ext"
	ServiceDriveway             ServiceKey = "driveway"
	ServiceExteriorHouseWashing ServiceKey = "exterior-house-washing"
	ServiceBlinds               ServiceKey = "blinds"
	ServiceScreenRepair         ServiceKey = "screen-repair"
	ServiceScreenBuilding       ServiceKey = "screen-building"
)

// Tier returns the package tier of a window-cleaning key, or "" for add-ons.
func (k ServiceKey) Tier() PackageTier {
	switch k {
	case ServiceBasicBoth, ServiceBasicExt:
		return PackageTierDefined
	case ServiceStandardBoth, ServiceStandardExt:
		return PackageTierStandard
	}
	return ""
}

// IsWindowCleaning reports whether the key is one of the four main packages.
func (k ServiceKey) IsWindowCleaning() bool {
	return k.Tier() != ""
}

// IsQuantityPriced reports whether the price depends on a customer-entered quantity.
func (k ServiceKey) IsQuantityPriced() bool {
	return k == ServiceScreenRepair || k == ServiceScreenBuilding
}

// IsAddOn reports whether the key can be toggled independently.
func (k ServiceKey) IsAddOn() bool {
	switch k {
	case ServiceDriveway, ServiceExteriorHouseWashing, ServiceBlinds, ServiceScreenRepair, ServiceScreenBuilding:
		return true
	}
	return false
}

// HouseProfile is the house description supplied once by the intake form.
//
// SizeBucket is an ordinal 1..8 and StoryBucket an ordinal 1..3; both are
// resolved through lookup tables by the pricing package. Absent fields are 0.
type HouseProfile struct {
	SizeBucket     int `json:"size_bucket" dynamodbav:"size_bucket"`
	StoryBucket    int `json:"story_bucket" dynamodbav:"story_bucket"`
	SmallPanes     int `json:"small_panes" dynamodbav:"small_panes"`
	MediumPanes    int `json:"medium_panes" dynamodbav:"medium_panes"`
	LargePanes     int `json:"large_panes" dynamodbav:"large_panes"`
	VeryLargePanes int `json:"very_large_panes" dynamodbav:"very_large_panes"`
	NormalScreens  int `json:"normal_screens" dynamodbav:"normal_screens"`
	SunScreens     int `json:"sun_screens" dynamodbav:"sun_screens"`
}

// PriceTable holds candidate prices in whole currency units.
type PriceTable struct {
	BasicBoth            int64 `json:"basic_both" dynamodbav:"basic_both"`
	BasicExt             int64 `json:"basic_ext" dynamodbav:"basic_ext"`
	StandardBoth         int64 `json:"standard_both" dynamodbav:"standard_both"`
	StandardExt          int64 `json:"standard_ext" dynamodbav:"standard_ext"`
	Driveway             int64 `json:"driveway" dynamodbav:"driveway"`
	ExteriorHouseWashing int64 `json:"exterior_house_washing" dynamodbav:"exterior_house_washing"`
	Blinds               int64 `json:"blinds" dynamodbav:"blinds"`
	MinimumApplied       bool  `json:"minimum_applied" dynamodbav:"minimum_applied"`
}

// Lookup returns the table price for keys that do not depend on a quantity.
func (p PriceTable) Lookup(key ServiceKey) (int64, bool) {
	switch key {
	case ServiceBasicBoth:
		return p.BasicBoth, true
	case ServiceBasicExt:
		return p.BasicExt, true
	case ServiceStandardBoth:
		return p.StandardBoth, true
	case ServiceStandardExt:
		return p.StandardExt, true
	case ServiceDriveway:
		return p.Driveway, true
	case ServiceExteriorHouseWashing:
		return p.ExteriorHouseWashing, true
	case ServiceBlinds:
		return p.Blinds, true
	}
	return 0, false
}

// SelectedService is a service chosen by the customer.
//
// BasePrice is the undiscounted price; Price is BasePrice after the active
// frequency discount and is always recomputed from BasePrice.
type SelectedService struct {
	ServiceKey  ServiceKey  `json:"service_key" dynamodbav:"service_key"`
	BasePrice   int64       `json:"base_price" dynamodbav:"base_price"`
	Price       int64       `json:"price" dynamodbav:"price"`
	Quantity    int         `json:"quantity,omitempty" dynamodbav:"quantity,omitempty"`
	PackageTier PackageTier `json:"package_tier,omitempty" dynamodbav:"package_tier,omitempty"`
}

// Customer holds the contact data collected by the intake form.
type Customer struct {
	Name    string `json:"name" dynamodbav:"name" validate:"required"`
	Email   string `json:"email" dynamodbav:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Address string `json:"address,omitempty" dynamodbav:"address,omitempty"`
}

// Quote is the persisted quote record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
type Quote struct {
	ID              string            `json:"id"`
	Customer        Customer          `json:"customer"`
	House           HouseProfile      `json:"house"`
	Prices          PriceTable        `json:"prices"`
	MainService     *SelectedService  `json:"main_service,omitempty"`
	AddOns          []SelectedService `json:"add_ons"`
	Frequency       Frequency         `json:"frequency"`
	DiscountPercent int               `json:"discount_percent"`
	TotalPrice      int64             `json:"total_price"`
	Status          QuoteStatus       `json:"status"`
	BookingURL      string            `json:"booking_url,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
