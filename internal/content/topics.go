package content

import (
	"sort"
	"strings"
)

// topicNames maps GATE Civil topic codes to display names. Static and
// read-only; unknown codes fall back to "General".
var topicNames = map[string]string{
	"SM":    "Soil Mechanics",
	"FM":    "Fluid Mechanics",
	"SA":    "Structural Analysis",
	"RCC":   "Reinforced Concrete Design",
	"STEEL": "Steel Structures",
	"GEO":   "Geomatics / Surveying",
	"ENV":   "Environmental Engineering",
	"TRANS": "Transportation Engineering",
	"HYDRO": "Hydrology & Irrigation",
	"CONST": "Construction Management",
}

// TopicName returns the display name for a topic code, or "General" for
// unknown codes.
func TopicName(code string) string {
	if name, ok := topicNames[strings.ToUpper(code)]; ok {
		return name
	}
	return "General"
}

// KnownTopic reports whether code is a recognized topic code.
func KnownTopic(code string) bool {
	_, ok := topicNames[strings.ToUpper(code)]
	return ok
}

// TopicCodes returns all topic codes in sorted order.
func TopicCodes() []string {
	codes := make([]string, 0, len(topicNames))
	for c := range topicNames {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
