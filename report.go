// Package dipscore turns scoring results into the tables tournament rooms
// actually put on a projector: standings, the best-countries board, and
// one-line game results.
package dipscore

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"dipscore/models"
	"dipscore/scoring"
)

const standingsHTML = `
<h1>{{.Name}}</h1>
<table>
<caption>Standings</caption>
<tr><th>Rank</th><th>Player</th>{{range .Rounds}}<th>Round {{.}}</th>{{end}}<th>Score</th></tr>
{{ range .Rows -}}
<tr><td>{{.Rank}}</td><td>{{.Player}}</td>{{range .RoundScores}}<td>{{.}}</td>{{end}}<td>{{printf "%.2f" .Score}}</td></tr>
{{ end -}}
</table>
`

type standingsRow struct {
	Rank        string
	Player      string
	RoundScores []string
	Score       float64
}

// GenerateStandingsHTML computes the tournament's standings "as it stands
// now" and renders them as an HTML table, one column per round
func GenerateStandingsHTML(state *models.TournamentState) ([]byte, error) {
	standings, err := scoring.ComputeStandings(state)
	if err != nil {
		return nil, err
	}

	var roundNumbers []int
	for _, r := range state.Rounds {
		roundNumbers = append(roundNumbers, r.Number)
	}
	sort.Ints(roundNumbers)

	var rows []standingsRow
	for _, s := range standings.Players {
		row := standingsRow{
			Rank:   fmt.Sprintf("%d", s.Rank),
			Player: s.Player.String(),
			Score:  s.Score,
		}
		if s.Unranked {
			row.Rank = "Unranked"
		}
		for _, n := range roundNumbers {
			score, played := standings.RoundScores[n][s.Player]
			if !played {
				row.RoundScores = append(row.RoundScores, "")
				continue
			}
			row.RoundScores = append(row.RoundScores, fmt.Sprintf("%.2f", score))
		}
		rows = append(rows, row)
	}

	tmpl, err := template.New("standings").Parse(standingsHTML)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{
		"Name":   state.Name,
		"Rounds": roundNumbers,
		"Rows":   rows,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const bestCountriesHTML = `
<h1>{{.Name}}</h1>
<table>
<caption>Best countries</caption>
<tr>{{range .Powers}}<th>{{.}}</th>{{end}}</tr>
{{ range .Rows -}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{ end -}}
</table>
`

// GenerateBestCountriesHTML renders the best-countries board: row i holds
// the i-th best performance as each power under the given criterion
func GenerateBestCountriesHTML(state *models.TournamentState, criterion scoring.Criterion) ([]byte, error) {
	best, err := scoring.BestCountries(state, criterion)
	if err != nil {
		return nil, err
	}
	powers := models.GreatPowers()

	depth := 0
	for _, perfs := range best {
		if len(perfs) > depth {
			depth = len(perfs)
		}
	}
	var rows [][]string
	for i := 0; i < depth; i++ {
		row := make([]string, len(powers))
		for j, power := range powers {
			perfs := best[power]
			if i >= len(perfs) {
				continue
			}
			p := perfs[i]
			row[j] = fmt.Sprintf("%s (%d centres, %.2f)", p.Player, p.Count, p.Score)
		}
		rows = append(rows, row)
	}

	tmpl, err := template.New("bestCountries").Parse(bestCountriesHTML)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{
		"Name":   state.Name,
		"Powers": powers,
		"Rows":   rows,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ResultString describes how a game came out, or returns "" while it is
// still being played
func ResultString(g *models.GameState) (string, error) {
	history := &scoring.GameHistory{Counts: g.CentreCounts, Draw: g.Draw}
	final, err := history.FinalCounts()
	if err != nil {
		return "", fmt.Errorf("result of game %q: %w", g.Name, err)
	}

	named := func(power models.Power) string {
		if player, ok := g.LatestPlayer(power); ok {
			return fmt.Sprintf("%s (%s)", player, power.Abbreviation())
		}
		return string(power)
	}

	if g.Draw != nil {
		var winners []string
		for _, power := range g.Draw.Powers {
			winners = append(winners, named(power))
		}
		if g.Draw.Size() == 1 {
			return fmt.Sprintf("Game conceded to %s", winners[0]), nil
		}
		return fmt.Sprintf("Vote passed to end game as a %d-way draw between %s",
			g.Draw.Size(), strings.Join(winners, ", ")), nil
	}

	if final[0].Count >= models.WinningSCs {
		return fmt.Sprintf("Game won by %s with %d centres", named(final[0].Power), final[0].Count), nil
	}

	if g.Finished {
		var toppers []string
		for _, sc := range final {
			if sc.Count == final[0].Count {
				toppers = append(toppers, named(sc.Power))
			}
		}
		return fmt.Sprintf("Game ended. Board top is %d centres, for %s",
			final[0].Count, strings.Join(toppers, ", ")), nil
	}

	return "", nil
}
