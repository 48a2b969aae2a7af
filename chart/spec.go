// Package chart assembles declarative chart specifications with the dataset
// embedded as row records. The service only guarantees the shape of the
// embedded values; rendering is the client's business.
package chart

import (
	"github.com/covidtrend/trend-api/reshape"
	"github.com/covidtrend/trend-api/schema"
)

const specSchema = "https://vega.github.io/schema/vega-lite/v4.json"

const (
	// field names of the multiplexed growth dataset
	TimeField  = "date"
	ValueField = "growth"
	LabelField = "country"
)

// Field binds a dataset field to a visual channel.
type Field struct {
	Field string `json:"field"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

// Data embeds the row-record dataset.
type Data struct {
	Values []schema.Row `json:"values"`
}

// Spec is a declarative chart specification.
type Spec struct {
	Schema   string           `json:"$schema"`
	Title    string           `json:"title,omitempty"`
	Width    int              `json:"width,omitempty"`
	Height   int              `json:"height,omitempty"`
	Mark     string           `json:"mark"`
	Data     Data             `json:"data"`
	Encoding map[string]Field `json:"encoding"`
}

// GrowthLineChart builds a line chart of daily growth-rate percentages, one
// line per country, from an aggregated report set.
func GrowthLineChart(set *schema.ReportSet) Spec {
	rows := reshape.Multiplex(set.Dates, set.Reports, TimeField, ValueField, LabelField)

	return Spec{
		Schema: specSchema,
		Title:  "Confirmed case growth rate",
		Width:  800,
		Height: 400,
		Mark:   "line",
		Data:   Data{Values: rows},
		Encoding: map[string]Field{
			"x":     {Field: TimeField, Type: "ordinal", Title: "Date"},
			"y":     {Field: ValueField, Type: "quantitative", Title: "Daily growth %"},
			"color": {Field: LabelField, Type: "nominal"},
		},
	}
}

// SummaryBarChart wraps already-transposed daily summary rows into a bar
// chart bound to the given fields.
func SummaryBarChart(rows []schema.Row, xField, yField string) Spec {
	return Spec{
		Schema: specSchema,
		Title:  "Daily summary",
		Width:  800,
		Height: 400,
		Mark:   "bar",
		Data:   Data{Values: rows},
		Encoding: map[string]Field{
			"x": {Field: xField, Type: "ordinal"},
			"y": {Field: yField, Type: "quantitative"},
		},
	}
}
