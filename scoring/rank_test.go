package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustRankScore(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		rankPoints []float64
		expected   []float64
	}{
		{
			name:       "No ties",
			counts:     []int{12, 9, 5, 4, 2, 1, 1},
			rankPoints: []float64{38, 14, 7},
			expected:   []float64{38, 14, 7, 0, 0, 0, 0},
		},
		{
			name:       "Two tied at the top",
			counts:     []int{10, 10, 5},
			rankPoints: []float64{38, 14, 7},
			expected:   []float64{26, 26, 7},
		},
		{
			name:       "Tie straddling the end of the scored positions",
			counts:     []int{10, 8, 8, 8},
			rankPoints: []float64{38, 14, 7},
			expected:   []float64{38, 7, 7, 7},
		},
		{
			name:       "Everyone tied",
			counts:     []int{4, 4, 4, 4, 4, 4, 4},
			rankPoints: []float64{7000, 6000, 5000, 4000, 3000, 2000, 1000},
			expected:   []float64{4000, 4000, 4000, 4000, 4000, 4000, 4000},
		},
		{
			name:       "No rank points at all",
			counts:     []int{10, 5, 3},
			rankPoints: nil,
			expected:   []float64{0, 0, 0},
		},
		{
			name:       "Empty input",
			counts:     nil,
			rankPoints: []float64{38, 14, 7},
			expected:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustRankScore(tt.counts, tt.rankPoints)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, len(tt.counts))
		})
	}
}

// Within each tie group the adjusted points must add up to the raw points
// those positions would have earned untied.
func TestAdjustRankScorePreservesGroupSums(t *testing.T) {
	counts := []int{10, 10, 10, 7, 7, 2, 0}
	rankPoints := []float64{38, 14, 7, 3}
	got := AdjustRankScore(counts, rankPoints)

	assert.InDelta(t, 38+14+7, got[0]+got[1]+got[2], 1e-9)
	assert.InDelta(t, 3.0, got[3]+got[4], 1e-9)
	assert.Equal(t, 0.0, got[5])
	assert.Equal(t, 0.0, got[6])
}
