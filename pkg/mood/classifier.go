// Package mood maps ambient temperature to a news-relevance policy.
// Classification is a pure, total function over celsius temperatures; the
// band thresholds and keyword tables drive which headlines survive filtering.
package mood

// Band is a named temperature range driving keyword selection
type Band string

// bands, evaluated as ordered non-overlapping thresholds
const (
	BandCold    Band = "cold"    // below 10C
	BandCool    Band = "cool"    // 10C to 20C inclusive
	BandNeutral Band = "neutral" // above 20C up to 25C inclusive, no keywords
	BandHot     Band = "hot"     // above 25C
)

// celsius thresholds separating the bands
const (
	coldThreshold = 10.0
	coolThreshold = 20.0
	hotThreshold  = 25.0
)

// Profile is the classification result: the band and its keyword set.
// The neutral band carries an empty set, which downstream filtering treats
// as pass-through.
type Profile struct {
	Band     Band
	Keywords []string
}

// cold weather: hardship and negativity
var coldKeywords = []string{
	"depression", "sad", "gloomy", "melancholy", "despair", "hopelessness",
	"economic crisis", "recession", "unemployment", "poverty", "homelessness",
	"death", "tragedy", "disaster", "accident", "crime", "violence",
	"political turmoil", "corruption", "scandal", "failure", "bankruptcy",
	"disease", "illness", "pandemic", "epidemic", "outbreak",
}

// hot weather: fear and alarm
var hotKeywords = []string{
	"fear", "terror", "horror", "panic", "anxiety", "dread",
	"threat", "danger", "warning", "alert", "emergency", "crisis",
	"attack", "invasion", "war", "conflict", "violence", "terrorism",
	"natural disaster", "earthquake", "tsunami", "hurricane", "wildfire",
	"climate change", "global warming", "extinction", "pollution", "contamination",
}

// cool weather: success and positivity
var coolKeywords = []string{
	"victory", "win", "success", "achievement", "triumph", "celebration",
	"happiness", "joy", "excitement", "optimism", "hope", "inspiration",
	"breakthrough", "discovery", "innovation", "progress", "advancement",
	"good news", "positive", "uplifting", "motivational", "encouraging",
	"sports win", "championship", "medal", "award", "recognition",
}

// Classify maps a celsius temperature to its mood band and keyword set.
// The input is always celsius regardless of the display unit. The gap
// between the cool upper bound and the hot lower bound is deliberate: it
// is the neutral band and returns no keywords.
func Classify(tempCelsius float64) Profile {
	switch {
	case tempCelsius < coldThreshold:
		return Profile{Band: BandCold, Keywords: coldKeywords}
	case tempCelsius > hotThreshold:
		return Profile{Band: BandHot, Keywords: hotKeywords}
	case tempCelsius <= coolThreshold:
		return Profile{Band: BandCool, Keywords: coolKeywords}
	default:
		return Profile{Band: BandNeutral}
	}
}
