package schema

// Row is one record of a row-oriented dataset, as consumed by the charting
// client: a mapping from field name to scalar value.
type Row map[string]interface{}
