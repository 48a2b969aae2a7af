package schema

// CorrectionRecord is one entry of the correction source's cases_time_series
// feed. The upstream serves every number as a string and dates in the
// "DD Month " form.
type CorrectionRecord struct {
	Date           string `json:"date"`
	TotalConfirmed string `json:"totalconfirmed"`
	TotalDeceased  string `json:"totaldeceased"`
	TotalRecovered string `json:"totalrecovered"`
	DailyConfirmed string `json:"dailyconfirmed"`
	DailyDeceased  string `json:"dailydeceased"`
	DailyRecovered string `json:"dailyrecovered"`
}
