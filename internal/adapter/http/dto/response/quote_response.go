package response

import (
	"time"

	"clearview_estimator/internal/domain/booking"
	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/quote"
)

type SelectedServiceResponse struct {
	ServiceKey  string `json:"service_key"`
	PackageTier string `json:"package_tier,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	BasePrice   int64  `json:"base_price"`
	Price       int64  `json:"price"`
}

type PriceTableResponse struct {
	BasicBoth            int64 `json:"basic-both"`
	BasicExt             int64 `json:"basic-ext"`
	StandardBoth         int64 `json:"standard-both"`
	StandardExt          int64 `json:"standard-ext"`
	Driveway             int64 `json:"driveway"`
	ExteriorHouseWashing int64 `json:"exterior-house-washing"`
	Blinds               int64 `json:"blinds"`
	MinimumApplied       bool  `json:"minimum_applied"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type QuoteResponse struct {
	QuoteID         string                    `json:"quote_id"`
	Customer        CustomerResponse          `json:"customer"`
	House           entities.HouseProfile     `json:"house"`
	Prices          PriceTableResponse        `json:"prices"`
	MainService     *SelectedServiceResponse  `json:"main_service,omitempty"`
	AddOns          []SelectedServiceResponse `json:"add_ons"`
	Frequency       string                    `json:"frequency"`
	DiscountPercent int                       `json:"discount_percent"`
	TotalPrice      int64                     `json:"total_price"`
	Status          string                    `json:"status"`
	BookingURL      string                    `json:"booking_url,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// SessionResponse is the live estimator state of an open quote.
type SessionResponse struct {
	QuoteID         string                    `json:"quote_id"`
	Prices          PriceTableResponse        `json:"prices"`
	MainService     *SelectedServiceResponse  `json:"main_service,omitempty"`
	AddOns          []SelectedServiceResponse `json:"add_ons"`
	Frequency       string                    `json:"frequency"`
	DiscountPercent int                       `json:"discount_percent"`
	TotalPrice      int64                     `json:"total_price"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// StartQuoteResponse is returned by the intake form: the stored quote plus
// the empty estimator session opened for it.
type StartQuoteResponse struct {
	Quote   QuoteResponse   `json:"quote"`
	Session SessionResponse `json:"session"`
}

type BookingLinkResponse struct {
	QuoteID string `json:"quote_id"`
	Band    string `json:"band"`
	URL     string `json:"url"`
}

func FromPriceTable(p entities.PriceTable) PriceTableResponse {
	return PriceTableResponse{
		BasicBoth:            p.BasicBoth,
		BasicExt:             p.BasicExt,
		StandardBoth:         p.StandardBoth,
		StandardExt:          p.StandardExt,
		Driveway:             p.Driveway,
		ExteriorHouseWashing: p.ExteriorHouseWashing,
		Blinds:               p.Blinds,
		MinimumApplied:       p.MinimumApplied,
	}
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID: q.ID,
		Customer: CustomerResponse{
			Name:    q.Customer.Name,
			Email:   q.Customer.Email,
			Phone:   q.Customer.Phone,
			Address: q.Customer.Address,
		},
		House:           q.House,
		Prices:          FromPriceTable(q.Prices),
		MainService:     fromMainService(q.MainService),
		AddOns:          fromAddOns(q.AddOns),
		Frequency:       string(q.Frequency),
		DiscountPercent: q.DiscountPercent,
		TotalPrice:      q.TotalPrice,
		Status:          string(q.Status),
		BookingURL:      q.BookingURL,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromSession(s quote.Session) SessionResponse {
	return SessionResponse{
		QuoteID:         s.QuoteID,
		Prices:          FromPriceTable(s.Prices),
		MainService:     fromMainService(s.State.Main),
		AddOns:          fromAddOns(s.State.AddOns),
		Frequency:       string(s.State.Frequency),
		DiscountPercent: s.State.DiscountPercent(),
		TotalPrice:      s.State.Total(),
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromBookingLink(quoteID string, l booking.Link) BookingLinkResponse {
	return BookingLinkResponse{QuoteID: quoteID, Band: l.Band, URL: l.URL}
}

func fromMainService(s *entities.SelectedService) *SelectedServiceResponse {
	if s == nil {
		return nil
	}
	res := fromSelected(*s)
	return &res
}

func fromAddOns(addOns []entities.SelectedService) []SelectedServiceResponse {
	out := make([]SelectedServiceResponse, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, fromSelected(a))
	}
	return out
}

func fromSelected(s entities.SelectedService) SelectedServiceResponse {
	return SelectedServiceResponse{
		ServiceKey:  string(s.ServiceKey),
		PackageTier: string(s.PackageTier),
		Quantity:    s.Quantity,
		BasePrice:   s.BasePrice,
		Price:       s.Price,
	}
}
