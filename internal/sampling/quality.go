package sampling

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// QualityLevel is an acceptable quality level, in percent defective.
type QualityLevel string

// Supported quality levels.
const (
	QualityStrict   QualityLevel = "1.0"
	QualityStandard QualityLevel = "2.5"
	QualityLow      QualityLevel = "4.0"
)

var qualityLabels = map[QualityLevel]string{
	QualityStrict:   "Strict (only 1% defective allowed)",
	QualityStandard: "Standard (up to 2.5% defective allowed)",
	QualityLow:      "Low (up to 4% defective allowed)",
}

// QualityLevels returns the supported levels from strictest to loosest.
func QualityLevels() []QualityLevel {
	return []QualityLevel{QualityStrict, QualityStandard, QualityLow}
}

// ParseQualityLevel canonicalises s so that "2.5", "2.50" and " 2.5 " all
// name the same level.
func ParseQualityLevel(s string) (QualityLevel, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: quality level %q", ErrInvalidInput, s)
	}
	return levelFromDecimal(d, s)
}

// QualityLevelFromFloat converts a numeric quality level such as 2.5.
func QualityLevelFromFloat(f float64) (QualityLevel, error) {
	return levelFromDecimal(decimal.NewFromFloat(f), fmt.Sprint(f))
}

func levelFromDecimal(d decimal.Decimal, raw string) (QualityLevel, error) {
	for _, level := range QualityLevels() {
		if d.Equal(decimal.RequireFromString(string(level))) {
			return level, nil
		}
	}
	return "", fmt.Errorf("%w: quality level %q", ErrInvalidInput, raw)
}

// Valid reports whether l is one of the supported levels.
func (l QualityLevel) Valid() bool {
	_, ok := qualityLabels[l]
	return ok
}

// Label returns the inspector-facing description of the level.
func (l QualityLevel) Label() string {
	return qualityLabels[l]
}

func (l QualityLevel) String() string {
	return string(l)
}

// UnmarshalJSON accepts either a JSON string ("2.5") or a number (2.5).
// "" and null decode to the zero level, so an unset level round-trips;
// callers that require a level check for it after decoding.
func (l *QualityLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	if raw == "" || raw == "null" {
		*l = ""
		return nil
	}
	parsed, err := ParseQualityLevel(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
