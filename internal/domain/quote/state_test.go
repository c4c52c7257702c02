package quote

import (
	"testing"

	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStoryPrices() entities.PriceTable {
	return pricing.ComputePrices(entities.HouseProfile{
		SizeBucket:  2,
		StoryBucket: 3,
		SmallPanes:  10,
		MediumPanes: 5,
	})
}

func TestState_SelectMainServiceTogglesOff(t *testing.T) {
	s := NewState()
	basic := entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined}

	s.SelectMainService(basic)
	require.NotNil(t, s.Main)
	assert.Equal(t, int64(264), s.Main.Price)

	s.SelectMainService(basic)
	assert.Nil(t, s.Main)
}

func TestState_SelectMainServiceReplaces(t *testing.T) {
	s := NewState()
	s.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined})
	s.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceStandardBoth, BasePrice: 150, PackageTier: entities.PackageTierStandard})

	require.NotNil(t, s.Main)
	assert.Equal(t, entities.ServiceStandardBoth, s.Main.ServiceKey)
	assert.Equal(t, int64(150), s.Total())
}

func TestState_SameKeyDifferentTierReplaces(t *testing.T) {
	s := NewState()
	s.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined})
	s.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierStandard})

	require.NotNil(t, s.Main)
	assert.Equal(t, entities.PackageTierStandard, s.Main.PackageTier)
}

func TestState_ToggleAddOnTwiceRestoresSet(t *testing.T) {
	s := NewState()
	driveway := entities.SelectedService{ServiceKey: entities.ServiceDriveway, BasePrice: 225}
	blinds := entities.SelectedService{ServiceKey: entities.ServiceBlinds, BasePrice: 75}

	s.ToggleAddOn(driveway)
	before := append([]entities.SelectedService{}, s.AddOns...)

	s.ToggleAddOn(blinds)
	s.ToggleAddOn(blinds)

	assert.Equal(t, before, s.AddOns)
}

func TestState_ToggleAddOnKeepsInsertionOrder(t *testing.T) {
	s := NewState()
	s.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceDriveway, BasePrice: 225})
	s.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceBlinds, BasePrice: 75})
	s.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceExteriorHouseWashing, BasePrice: 1350})
	s.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceBlinds})

	require.Len(t, s.AddOns, 2)
	assert.Equal(t, entities.ServiceDriveway, s.AddOns[0].ServiceKey)
	assert.Equal(t, entities.ServiceExteriorHouseWashing, s.AddOns[1].ServiceKey)
}

func TestState_SetFrequencyIsIdempotent(t *testing.T) {
	s := NewState()
	s.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined})
	s.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceDriveway, BasePrice: 225})

	require.NoError(t, s.SetFrequency(entities.FrequencyThreeMonths))
	first := s.Total()
	require.NoError(t, s.SetFrequency(entities.FrequencyThreeMonths))

	assert.Equal(t, first, s.Total())
	assert.Equal(t, int64(211), s.Main.Price)
	assert.Equal(t, int64(180), s.AddOns[0].Price)
	assert.Equal(t, int64(391), s.Total())
	assert.Equal(t, 20, s.DiscountPercent())
}

func TestState_SetFrequencyBackToOneTimeRestoresBase(t *testing.T) {
	s := NewState()
	s.SelectMainService(entities.SelectedService{ServiceKey: entities.ServiceBasicBoth, BasePrice: 264, PackageTier: entities.PackageTierDefined})
	require.NoError(t, s.SetFrequency(entities.FrequencySixMonths))
	require.NoError(t, s.SetFrequency(entities.FrequencyOneTime))

	assert.Equal(t, int64(264), s.Total())
}

func TestState_SelectionsAfterFrequencyAreDiscounted(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetFrequency(entities.FrequencyYearly))
	s.ToggleAddOn(entities.SelectedService{ServiceKey: entities.ServiceDriveway, BasePrice: 200})

	assert.Equal(t, int64(180), s.AddOns[0].Price)
	assert.Equal(t, int64(200), s.AddOns[0].BasePrice)
}

func TestState_SetFrequencyRejectsUnknown(t *testing.T) {
	s := NewState()
	err := s.SetFrequency("weekly")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	assert.Equal(t, entities.FrequencyOneTime, s.Frequency)
}

func TestState_EmptyTotalAndValidate(t *testing.T) {
	s := NewState()
	assert.Zero(t, s.Total())
	assert.True(t, s.IsEmpty())
	assert.ErrorIs(t, s.Validate(), ErrEmptyQuote)

	_, err := s.Finalize(entities.Quote{ID: "q-1"})
	assert.ErrorIs(t, err, ErrEmptyQuote)
}

func TestState_ApplyMainSelection(t *testing.T) {
	prices := threeStoryPrices()
	s := NewState()

	require.NoError(t, s.Apply(MainSelection{Tier: entities.PackageTierDefined, Key: entities.ServiceBasicBoth}, prices))
	require.NotNil(t, s.Main)
	assert.Equal(t, int64(264), s.Main.BasePrice)

	require.NoError(t, s.Apply(MainSelection{Tier: entities.PackageTierDefined, Key: entities.ServiceBasicBoth}, prices))
	assert.Nil(t, s.Main)
}

func TestState_ApplyRejectsBadMainSelection(t *testing.T) {
	prices := threeStoryPrices()
	s := NewState()

	err := s.Apply(MainSelection{Tier: entities.PackageTierStandard, Key: entities.ServiceBasicBoth}, prices)
	assert.ErrorIs(t, err, ErrTierMismatch)

	err = s.Apply(MainSelection{Tier: entities.PackageTierDefined, Key: entities.ServiceDriveway}, prices)
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.True(t, s.IsEmpty())
}

func TestState_ApplyAddOnSelection(t *testing.T) {
	prices := threeStoryPrices()
	s := NewState()

	require.NoError(t, s.Apply(AddOnSelection{Key: entities.ServiceDriveway}, prices))
	require.NoError(t, s.Apply(AddOnSelection{Key: entities.ServiceScreenRepair, Quantity: 4}, prices))

	require.Len(t, s.AddOns, 2)
	assert.Equal(t, prices.Driveway, s.AddOns[0].Price)
	assert.Equal(t, int64(100), s.AddOns[1].Price)
	assert.Equal(t, 4, s.AddOns[1].Quantity)

	// Removing a quantity-priced add-on does not need a quantity.
	require.NoError(t, s.Apply(AddOnSelection{Key: entities.ServiceScreenRepair}, prices))
	require.Len(t, s.AddOns, 1)
}

func TestState_ApplyAddOnRejects(t *testing.T) {
	prices := threeStoryPrices()
	s := NewState()

	err := s.Apply(AddOnSelection{Key: entities.ServiceScreenBuilding, Quantity: 0}, prices)
	assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)

	err = s.Apply(AddOnSelection{Key: entities.ServiceBasicExt}, prices)
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.True(t, s.IsEmpty())
}

func TestState_FinalizeCopiesSelections(t *testing.T) {
	prices := threeStoryPrices()
	s := NewState()
	require.NoError(t, s.Apply(MainSelection{Tier: entities.PackageTierDefined, Key: entities.ServiceBasicBoth}, prices))
	require.NoError(t, s.Apply(AddOnSelection{Key: entities.ServiceBlinds}, prices))
	require.NoError(t, s.SetFrequency(entities.FrequencyThreeMonths))

	q, err := s.Finalize(entities.Quote{ID: "q-1", Prices: prices})
	require.NoError(t, err)

	assert.Equal(t, "q-1", q.ID)
	assert.Equal(t, entities.FrequencyThreeMonths, q.Frequency)
	assert.Equal(t, 20, q.DiscountPercent)
	assert.Equal(t, int64(211+60), q.TotalPrice)
	require.NotNil(t, q.MainService)

	// The record must not alias the session state.
	s.Main.Price = 1
	s.AddOns[0].Price = 1
	assert.Equal(t, int64(211), q.MainService.Price)
	assert.Equal(t, int64(60), q.AddOns[0].Price)
}
