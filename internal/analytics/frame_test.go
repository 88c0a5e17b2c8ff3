package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testObservations() []Observation {
	return []Observation{
		{Year: 2016, Dims: map[string]string{"region": "Sub-Saharan Africa"}, Values: map[string]float64{"rate": 24.5}},
		{Year: 2015, Dims: map[string]string{"region": "Sub-Saharan Africa"}, Values: map[string]float64{"rate": 25.0}},
		{Year: 2015, Dims: map[string]string{"region": "Asia"}, Values: map[string]float64{"rate": 12.0}},
		{Year: 2016, Dims: map[string]string{"region": "Asia"}, Values: map[string]float64{"rate": 11.5}},
		{Year: 2015, Dims: map[string]string{"region": "Europe"}, Values: map[string]float64{"rate": 2.0}},
	}
}

func TestFrameAccessors(t *testing.T) {
	f := NewFrame(testObservations())

	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 2016, f.Year(0))
	assert.Equal(t, "Sub-Saharan Africa", f.Dim(0, "region"))
	assert.Equal(t, "2016", f.Dim(0, DimYear))
	assert.Equal(t, 24.5, f.Value(0, "rate"))
	assert.Equal(t, 0.0, f.Value(0, "missing"))
}

func TestFrameYears(t *testing.T) {
	f := NewFrame(testObservations())

	assert.Equal(t, []int{2015, 2016}, f.Years())
	assert.Equal(t, 2016, f.LatestYear())
	assert.Equal(t, 2015, f.EarliestYear())
}

func TestEmptyFrame(t *testing.T) {
	f := NewFrame(nil)

	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Years())
	assert.Equal(t, 0, f.LatestYear())
	assert.Equal(t, 0, f.EarliestYear())
}

func TestFrameDimValues(t *testing.T) {
	f := NewFrame(testObservations())

	regions := f.DimValues("region")
	assert.Equal(t, []string{"Sub-Saharan Africa", "Asia", "Europe"}, regions)
}

func TestFrameAggregations(t *testing.T) {
	f := NewFrame(testObservations())

	assert.InDelta(t, 75.0, f.Sum("rate"), 1e-9)
	assert.InDelta(t, 15.0, f.Mean("rate"), 1e-9)
	assert.InDelta(t, 2.0, f.Min("rate"), 1e-9)
	assert.InDelta(t, 25.0, f.Max("rate"), 1e-9)
	assert.Equal(t, 5.0, f.Aggregate("rate", AggCount))
}

func TestEmptyFrameAggregatesToZero(t *testing.T) {
	f := NewFrame(nil)

	assert.Equal(t, 0.0, f.Mean("rate"))
	assert.Equal(t, 0.0, f.Min("rate"))
	assert.Equal(t, 0.0, f.Max("rate"))
	assert.Equal(t, 0.0, f.Sum("rate"))
}
