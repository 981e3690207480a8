package domain

// TitleRecord is one aggregated hot-topic entry. Upstream feeds disagree on
// field names, so records stay generic string-keyed maps and consumers probe
// an ordered list of known keys.
type TitleRecord = map[string]any

// StatGroup is one keyword group produced by the collection pipeline. The
// same structure is consumed by the report renderer.
type StatGroup struct {
	Word   string        `json:"word" yaml:"word"`
	Titles []TitleRecord `json:"titles" yaml:"titles"`
}

// BestURL picks the URL used for publish-time resolution, preferring the
// desktop URL over mobile variants.
func BestURL(record TitleRecord) string {
	for _, key := range []string{"url", "mobileUrl", "mobile_url"} {
		if value, ok := record[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
