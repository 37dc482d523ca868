package dataset

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/epitrend/timeseries"
)

func growingRegion(t *testing.T, days int) *RegionData {
	t.Helper()

	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	data := &RegionData{Name: "Growing"}
	for i := 0; i < days; i++ {
		ts := start.AddDate(0, 0, i).Unix()
		confirmed := 10 * math.Pow(2, float64(i)/2)
		data.Confirmed = append(data.Confirmed, timeseries.RawPair{Timestamp: ts, Value: confirmed})
		data.Deaths = append(data.Deaths, timeseries.RawPair{Timestamp: ts, Value: math.Floor(confirmed / 50)})
		if i%2 == 0 {
			data.Recovered = append(data.Recovered, timeseries.RawPair{Timestamp: ts, Value: float64(i)})
		}
	}
	return data
}

func TestRegionSeries(t *testing.T) {
	region := growingRegion(t, 10).Region(nil)

	assert.Equal(t, "Growing", region.Name)
	assert.Equal(t, LabelCases, region.Confirmed.Label())
	assert.Equal(t, LabelDeaths, region.Deaths.Label())
	assert.Equal(t, LabelRecovered, region.Recovered.Label())
	assert.Equal(t, 10, region.Confirmed.Len())
	assert.Equal(t, 5, region.Recovered.Len())
}

func TestRegionActive(t *testing.T) {
	data, err := ParseJSON("r", strings.NewReader(`{
		"Confirmed": {"03/01/2020": 10, "03/02/2020": 20, "03/03/2020": 30},
		"Death": {"03/02/2020": 2, "03/03/2020": 3},
		"Recovered": {"03/03/2020": 5}
	}`))
	require.NoError(t, err)

	active := data.Region(nil).Active()
	assert.Equal(t, LabelActive, active.Label())
	assert.Equal(t, timeseries.KindGenerator, active.Kind())
	assert.Equal(t, []float64{10, 18, 22}, active.Values())
}

func TestRegionActiveWithoutRecovered(t *testing.T) {
	data, err := ParseJSON("r", strings.NewReader(`{"Confirmed": {"03/01/2020": 10}}`))
	require.NoError(t, err)

	active := data.Region(nil).Active()
	assert.Equal(t, timeseries.KindEmpty, active.Kind())
}

func TestRegionOverlaysFlatten(t *testing.T) {
	region := growingRegion(t, 12).Region(nil)

	daily, err := timeseries.Flatten(region.DailyOverlays()...)
	require.NoError(t, err)
	assert.Len(t, daily.Rows, 12)
	assert.Equal(t, []string{
		"New Cases", "New Cases (Trend)", "New Cases (3 day avg)", "Cases", "Active", "Recovered", "New Deaths", "Deaths",
	}, daily.Labels)

	doubling, err := timeseries.Flatten(region.DoublingOverlays()...)
	require.NoError(t, err)
	assert.Len(t, doubling.Rows, 12-7)
	assert.Equal(t, []string{"Cases Days to Double", "Deaths Days to Double"}, doubling.Labels)
}

func TestRegionSummary(t *testing.T) {
	region := growingRegion(t, 12).Region(nil)
	summary := region.Summary()

	assert.Equal(t, "Growing", summary.Name)
	assert.True(t, summary.Date.Equal(time.Date(2020, 3, 12, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, summary.Confirmed)
	require.NotNil(t, summary.NewCases)
	require.NotNil(t, summary.NewPercent)
	require.NotNil(t, summary.DaysToDouble)
	assert.InDelta(t, 10*math.Pow(2, 5.5), *summary.Confirmed, 1e-9)
	assert.InDelta(t, 2.0, *summary.DaysToDouble, 1e-6)
	assert.InDelta(t, *summary.NewCases/(*summary.Confirmed-*summary.NewCases), *summary.NewPercent, 1e-12)
	assert.NotEmpty(t, summary.TrendModel)
}

func TestRegionSummaryShortSeries(t *testing.T) {
	data, err := ParseJSON("r", strings.NewReader(`{"Confirmed": {"03/01/2020": 3}}`))
	require.NoError(t, err)

	summary := data.Region(nil).Summary()
	require.NotNil(t, summary.Confirmed)
	assert.Equal(t, 3.0, *summary.Confirmed)
	require.NotNil(t, summary.NewCases)
	assert.Equal(t, 3.0, *summary.NewCases)
	assert.Nil(t, summary.NewPercent)
	assert.Nil(t, summary.Deaths)
	assert.Nil(t, summary.DaysToDouble)
	assert.Empty(t, summary.TrendModel)
}
