package compression

import "fmt"

// Level selects the DPI/quality tradeoff for a compression run.
type Level string

const (
	LevelLow         Level = "low"
	LevelRecommended Level = "recommended"
	LevelExtreme     Level = "extreme"
)

// levelParams is the immutable parameter triple behind each level.
type levelParams struct {
	dpi     float64
	quality float64
	label   string
}

var levelTable = map[Level]levelParams{
	LevelLow:         {dpi: 144, quality: 0.90, label: "Low compression"},
	LevelRecommended: {dpi: 120, quality: 0.60, label: "Recommended"},
	LevelExtreme:     {dpi: 72, quality: 0.35, label: "Extreme compression"},
}

const (
	boostDPIFactor   = 1.2
	boostQualityStep = 0.10
)

// ParseLevel validates a level string coming from the UI.
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if _, ok := levelTable[level]; !ok {
		return "", fmt.Errorf("unknown compression level %q", s)
	}
	return level, nil
}

// DPI returns the base target render resolution.
func (l Level) DPI() float64 {
	return levelTable[l].dpi
}

// Quality returns the base lossy-encoder quality factor.
func (l Level) Quality() float64 {
	return levelTable[l].quality
}

// Label returns the human-readable level name.
func (l Level) Label() string {
	return levelTable[l].label
}

// Resolve returns the effective (dpi, quality) pair for this level. The
// quality boost scales resolution by 1.2 and raises quality by 0.10, capped
// at 1.0. Base values are never mutated; the boost is computed on read.
func (l Level) Resolve(qualityBoost bool) (dpi, quality float64) {
	params := levelTable[l]
	dpi, quality = params.dpi, params.quality

	if qualityBoost {
		dpi *= boostDPIFactor
		quality += boostQualityStep
		if quality > 1.0 {
			quality = 1.0
		}
	}

	return dpi, quality
}

// Levels lists all levels in display order.
func Levels() []Level {
	return []Level{LevelLow, LevelRecommended, LevelExtreme}
}
