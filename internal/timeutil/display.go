package timeutil

import "strings"

// Valid time display modes for rendered output.
const (
	ModeHidden            = "hidden"
	ModeObserved          = "observed"
	ModePublish           = "publish"
	ModePublishOrObserved = "publish_or_observed"
)

var validTimeDisplayModes = map[string]struct{}{
	ModeHidden:            {},
	ModeObserved:          {},
	ModePublish:           {},
	ModePublishOrObserved: {},
}

var timeModeAliases = map[string]string{
	"observation": ModeObserved,
	"observe":     ModeObserved,
	"published":   ModePublish,
	"none":        ModeHidden,
	"off":         ModeHidden,
	"false":       ModeHidden,
	"0":           ModeHidden,
}

// NormalizeTimeDisplayMode maps user-supplied mode strings (including
// aliases) onto a valid mode, falling back to fallback and then to hidden.
func NormalizeTimeDisplayMode(mode, fallback string) string {
	normalizedFallback := canonicalMode(fallback)
	if _, ok := validTimeDisplayModes[normalizedFallback]; !ok {
		normalizedFallback = ModeHidden
	}

	raw := canonicalMode(mode)
	if raw == "" {
		return normalizedFallback
	}
	if _, ok := validTimeDisplayModes[raw]; !ok {
		return normalizedFallback
	}
	return raw
}

func canonicalMode(mode string) string {
	raw := strings.ToLower(strings.TrimSpace(mode))
	if alias, ok := timeModeAliases[raw]; ok {
		return alias
	}
	return raw
}

// ResolveShowObservationCount decides whether observation counts are shown.
// An explicit setting wins; otherwise counts follow the observed modes.
func ResolveShowObservationCount(timeDisplayMode string, showObservationCount *bool) bool {
	if showObservationCount != nil {
		return *showObservationCount
	}
	return timeDisplayMode == ModeObserved || timeDisplayMode == ModePublishOrObserved
}

// ResolveTimeDisplay picks the display string for a mode: publish_or_observed
// prefers the publish time and falls back to the observed window.
func ResolveTimeDisplay(timeDisplayMode, observedDisplay, publishDisplay string) string {
	switch NormalizeTimeDisplayMode(timeDisplayMode, ModeHidden) {
	case ModeHidden:
		return ""
	case ModePublish:
		return publishDisplay
	case ModePublishOrObserved:
		if publishDisplay != "" {
			return publishDisplay
		}
		return observedDisplay
	default:
		return observedDisplay
	}
}
