package timeutil

// PublishTimeKeys is the ordered list of record fields that may carry a
// pre-supplied publish time.
var PublishTimeKeys = []string{
	"published_at",
	"publishedAt",
	"published_time",
	"publish_time",
	"pubDate",
	"pub_date",
	"date",
	"datetime",
	"created_at",
	"createdAt",
}

// ExtractPublishTimeDisplay probes a record, then its nested "extra" map,
// for a publish time and returns the first value that normalizes. Lets
// upstream producers pre-supply a publish time without a fetch.
func ExtractPublishTimeDisplay(record map[string]any) string {
	if record == nil {
		return ""
	}

	sources := []map[string]any{record}
	if extra, ok := record["extra"].(map[string]any); ok {
		sources = append(sources, extra)
	}

	for _, source := range sources {
		for _, key := range PublishTimeKeys {
			value, ok := source[key]
			if !ok {
				continue
			}
			if formatted := FormatDatetimeLike(value); formatted != "" {
				return formatted
			}
		}
	}

	return ""
}
