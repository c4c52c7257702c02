// Package pricing converts a house profile into candidate service prices.
//
// All amounts are whole currency units. Every function here is pure and total:
// absent counts are zero, unknown buckets resolve to zero and counts are
// clamped to [0, MaxCount], so no amount is ever negative.
package pricing

import (
	"math"

	"clearview_estimator/internal/domain/entities"
)

// MinimumCharge is the floor applied to every window-cleaning price.
const MinimumCharge int64 = 150

// MaxCount caps every pane, screen and quantity count. Larger counts are
// clamped here and rejected at the edges.
const MaxCount = 1000

const (
	sunScreenSurcharge  = 10
	standardRatio       = 0.5
	threeStoryFactor    = 2.2
	drivewayRate        = 0.15
	houseWashingRate    = 0.3
	blindsPerPane       = 5
	screenRepairPerUnit = 25
	screenBuildPerUnit  = 50
)

// houseSizeSqft maps the intake form's size bucket to an estimated square footage.
var houseSizeSqft = map[int]float64{
	1: 1000,
	2: 1500,
	3: 2000,
	4: 2500,
	5: 3000,
	6: 3500,
	7: 4500,
	8: 6000,
}

var storyCount = map[int]int{
	1: 1,
	2: 2,
	3: 3,
}

// HouseSize resolves a size bucket to square footage, 0 when unknown.
func HouseSize(bucket int) float64 {
	return houseSizeSqft[bucket]
}

// Stories resolves a story bucket to a story count, 0 when unknown.
func Stories(bucket int) int {
	return storyCount[bucket]
}

// ComputePrices derives the candidate price table for a house.
//
// Standard-tier prices come from the raw amounts before the story multiplier.
// Only three-story houses get the multiplier; one and two stories use 1.
func ComputePrices(profile entities.HouseProfile) entities.PriceTable {
	small := clampCount(profile.SmallPanes)
	medium := clampCount(profile.MediumPanes)
	large := clampCount(profile.LargePanes)
	veryLarge := clampCount(profile.VeryLargePanes)
	sun := clampCount(profile.SunScreens)

	paneCount := small + medium + large + veryLarge
	screenSurcharge := sun * sunScreenSurcharge

	rawBoth := float64(small*7 + medium*10 + large*9 + veryLarge*10 + screenSurcharge)
	rawExt := float64(small*4 + medium*5 + large*6 + veryLarge*7 + screenSurcharge)

	standardBoth := round(rawBoth * standardRatio)
	standardExt := round(rawExt * standardRatio)

	stories := Stories(profile.StoryBucket)
	if stories == 3 {
		rawBoth *= threeStoryFactor
		rawExt *= threeStoryFactor
	}
	basicBoth := round(rawBoth)
	basicExt := round(rawExt)

	minimumApplied := basicBoth < MinimumCharge || basicExt < MinimumCharge ||
		standardBoth < MinimumCharge || standardExt < MinimumCharge

	houseSize := HouseSize(profile.SizeBucket)

	return entities.PriceTable{
		BasicBoth:            floor(basicBoth),
		BasicExt:             floor(basicExt),
		StandardBoth:         floor(standardBoth),
		StandardExt:          floor(standardExt),
		Driveway:             round(houseSize * drivewayRate),
		ExteriorHouseWashing: round(houseSize * houseWashingRate * float64(stories)),
		Blinds:               int64(paneCount * blindsPerPane),
		MinimumApplied:       minimumApplied,
	}
}

// ScreenRepairPrice prices the repair of count screens.
func ScreenRepairPrice(count int) int64 {
	return int64(clampCount(count) * screenRepairPerUnit)
}

// ScreenBuildPrice prices building count new screens.
func ScreenBuildPrice(count int) int64 {
	return int64(clampCount(count) * screenBuildPerUnit)
}

// QuantityPrice prices a quantity-priced service key.
func QuantityPrice(key entities.ServiceKey, count int) (int64, bool) {
	switch key {
	case entities.ServiceScreenRepair:
		return ScreenRepairPrice(count), true
	case entities.ServiceScreenBuilding:
		return ScreenBuildPrice(count), true
	}
	return 0, false
}

func floor(v int64) int64 {
	if v < MinimumCharge {
		return MinimumCharge
	}
	return v
}

func round(v float64) int64 {
	return int64(math.Round(v))
}

func clampCount(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxCount {
		return MaxCount
	}
	return v
}
