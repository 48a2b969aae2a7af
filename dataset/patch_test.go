package dataset_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/covidtrend/trend-api/dataset"
	"github.com/covidtrend/trend-api/schema"
)

func fixtureSet() *schema.TimeSeriesSet {
	return &schema.TimeSeriesSet{
		Timestamps: []string{"4/5/20", "4/6/20", "4/7/20"},
		Regions: []schema.RegionSeries{
			{Country: "India", Data: []float64{100, 200, 400}},
			{Country: "Italy", Data: []float64{10, 20, 30}},
		},
	}
}

func TestPatchCountry(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ts := fixtureSet()
	records := []schema.CorrectionRecord{
		{Date: "05 April ", TotalConfirmed: "150"},
		{Date: "07 April ", TotalConfirmed: "450"},
	}

	err := dataset.PatchCountry(ts, "India", records)
	assert.Nil(t, err, "wrong PatchCountry")

	india := ts.Region("", "India")
	assert.Equal(t, []float64{150, 200, 450}, india.Data, "wrong patched data")

	// other regions and the date axis stay untouched
	assert.Equal(t, []float64{10, 20, 30}, ts.Region("", "Italy").Data, "other region altered")
	assert.Equal(t, []string{"4/5/20", "4/6/20", "4/7/20"}, ts.Timestamps, "timestamps altered")

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "no correction point" {
			warnings++
			assert.Equal(t, "4/6/20", entry.Data["timestamp"], "wrong warned timestamp")
			assert.Equal(t, float64(200), entry.Data["kept"], "wrong retained value")
		}
	}
	assert.Equal(t, 1, warnings, "wrong warning count")
}

func TestPatchCountryDuplicateDates(t *testing.T) {
	ts := fixtureSet()
	records := []schema.CorrectionRecord{
		{Date: "05 April ", TotalConfirmed: "111"},
		{Date: "05 April ", TotalConfirmed: "222"},
		{Date: "06 April ", TotalConfirmed: "250"},
		{Date: "07 April ", TotalConfirmed: "450"},
	}

	err := dataset.PatchCountry(ts, "India", records)
	assert.Nil(t, err, "wrong PatchCountry")

	// later duplicates overwrite earlier ones
	assert.Equal(t, float64(222), ts.Region("", "India").Data[0], "duplicate not overwritten")
}

func TestPatchCountrySkipsBadRecords(t *testing.T) {
	ts := fixtureSet()
	records := []schema.CorrectionRecord{
		{Date: "05 Avril ", TotalConfirmed: "150"},
		{Date: "06 April ", TotalConfirmed: "not-a-number"},
	}

	err := dataset.PatchCountry(ts, "India", records)
	assert.Nil(t, err, "wrong PatchCountry")
	assert.Equal(t, []float64{100, 200, 400}, ts.Region("", "India").Data, "bad records should not patch")
}

func TestPatchCountryMissingRegion(t *testing.T) {
	ts := fixtureSet()
	err := dataset.PatchCountry(ts, "Narnia", nil)
	assert.NotNil(t, err, "missing region should fail")
}
