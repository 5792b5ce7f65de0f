package scoring

// AdjustRankScore takes the final centre counts for one game, ordered
// highest to lowest, and a list of ranking points for positions, ordered
// from first place to last. It returns the ranking points for each position,
// adjusted for ties: where two or more powers hold the same number of
// centres, the points for their positions are shared evenly between them.
// Positions beyond the end of rankPoints earn zero. Within each tie group
// the adjusted points always sum to the raw points those positions would
// have received untied.
func AdjustRankScore(counts []int, rankPoints []float64) []float64 {
	adjusted := make([]float64, len(counts))
	i := 0
	for i < len(counts) {
		// Count how many powers tied at this position, summing the points
		// their positions would have earned
		j := i
		points := 0.0
		for j < len(counts) && counts[j] == counts[i] {
			if j < len(rankPoints) {
				points += rankPoints[j]
			}
			j++
		}
		share := points / float64(j-i)
		for k := i; k < j; k++ {
			adjusted[k] = share
		}
		i = j
	}
	return adjusted
}
