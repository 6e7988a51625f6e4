package packing

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/weather"
)

// stubForecaster serves a fixed forecast.
type stubForecaster struct {
	forecast *weather.Forecast
	err      error
}

func (s *stubForecaster) Forecast(_ context.Context, _, _ float64, _ int) (*weather.Forecast, error) {
	return s.forecast, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func warmDryForecast(days int) *weather.Forecast {
	forecast := &weather.Forecast{}
	for i := 0; i < days; i++ {
		forecast.Days = append(forecast.Days, weather.Day{MaxTempC: 25, MinTempC: 16})
	}
	return forecast
}

func coldRainyForecast(days int) *weather.Forecast {
	forecast := &weather.Forecast{}
	for i := 0; i < days; i++ {
		forecast.Days = append(forecast.Days, weather.Day{MaxTempC: 6, MinTempC: 0, PrecipProbability: 80})
	}
	return forecast
}

func sampleWardrobe() []model.WardrobeItem {
	return []model.WardrobeItem{
		{ID: "t1", Category: model.CategoryTop, Analysis: "black casual t-shirt"},
		{ID: "t2", Category: model.CategoryTop, Analysis: "white casual t-shirt"},
		{ID: "t3", Category: model.CategoryTop, Analysis: "navy polo shirt"},
		{ID: "b1", Category: model.CategoryBottom, Analysis: "dark wash jeans"},
		{ID: "b2", Category: model.CategoryBottom, Analysis: "beige chinos"},
		{ID: "s1", Category: model.CategoryShoes, Analysis: "white leather sneakers"},
		{ID: "s2", Category: model.CategoryShoes, Analysis: "brown leather boots"},
		{ID: "o1", Category: model.CategoryOuterwear, Analysis: "navy wool blazer"},
		{ID: "o2", Category: model.CategoryOuterwear, Analysis: "green waterproof rain jacket"},
		{ID: "a1", Category: model.CategoryAccessory, Analysis: "brown leather belt"},
	}
}

func TestPlanWarmTrip(t *testing.T) {
	planner := NewPlanner(&stubForecaster{forecast: warmDryForecast(5)}, testLogger())

	plan, err := planner.Plan(context.Background(), sampleWardrobe(), Trip{Destination: "Lisbon", Days: 5})
	require.NoError(t, err)

	assert.Equal(t, weather.ConditionWarm, plan.Weather.Condition)
	assert.Equal(t, 3, plan.Quotas[model.CategoryTop], "5 days packs 3 tops")
	assert.Equal(t, 2, plan.Quotas[model.CategoryBottom])
	assert.Equal(t, 2, plan.Quotas[model.CategoryShoes])
	assert.Zero(t, plan.Quotas[model.CategoryOuterwear], "no layer needed for warm dry weather")
	assert.Positive(t, plan.Outfits)
}

func TestPlanColdRainyTripPicksRainLayer(t *testing.T) {
	planner := NewPlanner(&stubForecaster{forecast: coldRainyForecast(3)}, testLogger())

	plan, err := planner.Plan(context.Background(), sampleWardrobe(), Trip{Destination: "Bergen", Days: 3})
	require.NoError(t, err)

	assert.Equal(t, weather.ConditionCold, plan.Weather.Condition)
	require.Equal(t, 1, plan.Quotas[model.CategoryOuterwear])

	var outerwearID string
	for _, item := range plan.Items {
		if item.Category == model.CategoryOuterwear {
			outerwearID = item.ID
		}
	}
	assert.Equal(t, "o2", outerwearID, "rain jacket beats the blazer")

	require.NotEmpty(t, plan.Advice)
	assert.Contains(t, plan.Advice[0], "Rain expected")
}

func TestPlanShortTripMinimums(t *testing.T) {
	planner := NewPlanner(&stubForecaster{forecast: warmDryForecast(1)}, testLogger())

	plan, err := planner.Plan(context.Background(), sampleWardrobe(), Trip{Days: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, plan.Quotas[model.CategoryTop], "always at least two tops")
	assert.Equal(t, 1, plan.Quotas[model.CategoryBottom])
	assert.Equal(t, 1, plan.Quotas[model.CategoryShoes])
	assert.Zero(t, plan.Quotas[model.CategoryAccessory], "accessories only on longer trips")
}

func TestPlanDressQuotaForWarmWeather(t *testing.T) {
	wardrobe := append(sampleWardrobe(), model.WardrobeItem{
		ID: "d1", Category: model.CategoryDress, Analysis: "floral summer dress",
	})
	planner := NewPlanner(&stubForecaster{forecast: warmDryForecast(4)}, testLogger())

	plan, err := planner.Plan(context.Background(), wardrobe, Trip{Days: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Quotas[model.CategoryDress])
}

func TestPlanFlagsShortfall(t *testing.T) {
	wardrobe := []model.WardrobeItem{
		{ID: "t1", Category: model.CategoryTop, Analysis: "white t-shirt"},
		{ID: "b1", Category: model.CategoryBottom, Analysis: "jeans"},
	}
	planner := NewPlanner(&stubForecaster{forecast: warmDryForecast(7)}, testLogger())

	plan, err := planner.Plan(context.Background(), wardrobe, Trip{Days: 7})
	require.NoError(t, err)

	var flagged bool
	for _, note := range plan.Advice {
		if strings.HasPrefix(note, "Wardrobe is short") {
			flagged = true
		}
	}
	assert.True(t, flagged, "missing shoes should be flagged")
}

func TestPlanErrors(t *testing.T) {
	planner := NewPlanner(&stubForecaster{forecast: warmDryForecast(3)}, testLogger())

	_, err := planner.Plan(context.Background(), sampleWardrobe(), Trip{Days: 0})
	assert.Error(t, err)

	_, err = planner.Plan(context.Background(), nil, Trip{Days: 3})
	assert.ErrorIs(t, err, common.ErrNoItems)

	failing := NewPlanner(&stubForecaster{err: common.ErrWeatherUnavailable}, testLogger())
	_, err = failing.Plan(context.Background(), sampleWardrobe(), Trip{Days: 3})
	assert.ErrorIs(t, err, common.ErrWeatherUnavailable)
}
