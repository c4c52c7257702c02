package request

import (
	"encoding/json"
	"strings"

	"clearview_estimator/internal/domain/entities"
)

// HouseProfileRequest is the house section of the intake form. Absent counts
// are zero; counts are capped at pricing.MaxCount.
type HouseProfileRequest struct {
	SizeBucket     int `json:"size_bucket" binding:"min=0"`
	StoryBucket    int `json:"story_bucket" binding:"min=0"`
	SmallPanes     int `json:"small_panes" binding:"min=0,max=1000"`
	MediumPanes    int `json:"medium_panes" binding:"min=0,max=1000"`
	LargePanes     int `json:"large_panes" binding:"min=0,max=1000"`
	VeryLargePanes int `json:"very_large_panes" binding:"min=0,max=1000"`
	NormalScreens  int `json:"normal_screens" binding:"min=0,max=1000"`
	SunScreens     int `json:"sun_screens" binding:"min=0,max=1000"`
}

func (r HouseProfileRequest) ToEntity() entities.HouseProfile {
	return entities.HouseProfile{
		SizeBucket:     r.SizeBucket,
		StoryBucket:    r.StoryBucket,
		SmallPanes:     r.SmallPanes,
		MediumPanes:    r.MediumPanes,
		LargePanes:     r.LargePanes,
		VeryLargePanes: r.VeryLargePanes,
		NormalScreens:  r.NormalScreens,
		SunScreens:     r.SunScreens,
	}
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// StartQuoteRequest is the intake form submission.
type StartQuoteRequest struct {
	Customer CustomerRequest     `json:"customer"`
	House    HouseProfileRequest `json:"house"`
}

type MainServiceRequest struct {
	Tier       string `json:"tier" binding:"required,oneof=defined standard"`
	ServiceKey string `json:"service_key" binding:"required"`
}

func (r MainServiceRequest) ResolveTier() entities.PackageTier {
	return entities.PackageTier(strings.TrimSpace(r.Tier))
}

func (r MainServiceRequest) ResolveServiceKey() entities.ServiceKey {
	return entities.ServiceKey(strings.TrimSpace(r.ServiceKey))
}

// AddOnRequest toggles an add-on. Quantity is the free-text screen count and
// may arrive as a JSON string or number.
type AddOnRequest struct {
	ServiceKey string          `json:"service_key" binding:"required"`
	Quantity   json.RawMessage `json:"quantity,omitempty" swaggertype:"string"`
}

func (r AddOnRequest) ResolveServiceKey() entities.ServiceKey {
	return entities.ServiceKey(strings.TrimSpace(r.ServiceKey))
}

// RawQuantity returns the quantity as typed by the customer, "" when absent.
func (r AddOnRequest) RawQuantity() string {
	raw := strings.TrimSpace(string(r.Quantity))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Quantity, &s); err == nil {
		return s
	}
	return raw
}

type FrequencyRequest struct {
	Frequency string `json:"frequency" binding:"required"`
}

func (r FrequencyRequest) ResolveFrequency() entities.Frequency {
	return entities.Frequency(strings.TrimSpace(r.Frequency))
}
