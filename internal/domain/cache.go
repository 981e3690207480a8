package domain

// LookupState classifies a publish-time cache lookup.
type LookupState int

const (
	// LookupAbsent means no usable entry exists and the URL needs a fetch.
	// Expired misses and rows with unparseable timestamps read as absent.
	LookupAbsent LookupState = iota
	// LookupHit means a publish time is stored for the key.
	LookupHit
	// LookupRecentMiss means a recent fetch found no publish time; the URL
	// is not retried until the miss TTL expires.
	LookupRecentMiss
)

func (s LookupState) String() string {
	switch s {
	case LookupHit:
		return "hit"
	case LookupRecentMiss:
		return "recent_miss"
	default:
		return "absent"
	}
}
