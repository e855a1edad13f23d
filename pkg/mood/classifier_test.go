package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		band Band
	}{
		{"deep freeze", -20, BandCold},
		{"just below cold threshold", 9.99, BandCold},
		{"cold threshold is cool", 10, BandCool},
		{"middle of cool", 15, BandCool},
		{"cool upper bound inclusive", 20, BandCool},
		{"just above cool is neutral", 20.01, BandNeutral},
		{"neutral middle", 22.5, BandNeutral},
		{"hot threshold still neutral", 25, BandNeutral},
		{"just above hot threshold", 25.01, BandHot},
		{"heat wave", 40, BandHot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Classify(tt.temp)
			assert.Equal(t, tt.band, profile.Band)
		})
	}
}

func TestClassify_NeutralHasNoKeywords(t *testing.T) {
	for _, temp := range []float64{20.5, 22, 25} {
		profile := Classify(temp)
		require.Equal(t, BandNeutral, profile.Band)
		assert.Empty(t, profile.Keywords)
	}
}

func TestClassify_KeywordThemes(t *testing.T) {
	cold := Classify(5)
	assert.Contains(t, cold.Keywords, "tragedy")
	assert.Contains(t, cold.Keywords, "disease")
	assert.Contains(t, cold.Keywords, "economic crisis")

	cool := Classify(15)
	assert.Contains(t, cool.Keywords, "victory")
	assert.Contains(t, cool.Keywords, "breakthrough")

	hot := Classify(30)
	assert.Contains(t, hot.Keywords, "fear")
	assert.Contains(t, hot.Keywords, "natural disaster")
}

func TestClassify_Deterministic(t *testing.T) {
	// same input always yields the same output
	first := Classify(7.3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(7.3))
	}
}

func TestClassify_TotalOverRange(t *testing.T) {
	// every temperature lands in exactly one band
	known := map[Band]bool{BandCold: true, BandCool: true, BandNeutral: true, BandHot: true}
	for temp := -60.0; temp <= 60.0; temp += 0.25 {
		profile := Classify(temp)
		assert.True(t, known[profile.Band], "temp %.2f produced unknown band %q", temp, profile.Band)
	}
}
