package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/kiliankoe/scoredash/internal/game"
)

// WriteReport renders the final results as plain text.
func WriteReport(w io.Writer, s game.Summary) error {
	var sb strings.Builder

	sb.WriteString("Simulation Results\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(s.Ranking) == 0 {
		sb.WriteString("No players.\n")
	} else {
		sb.WriteString(fmt.Sprintf("Winner: %s with %d points!\n\n", s.Winner.Name, s.Winner.Score))
		sb.WriteString("Ranking:\n")
		sb.WriteString(strings.Repeat("-", 40) + "\n")
		for i, p := range s.Ranking {
			sb.WriteString(fmt.Sprintf("%d. %-6s %4d  avg %.2f  bonuses %d  penalties %d  rate %s\n",
				i+1, p.Name, p.Score, p.AvgScore, p.Bonuses, p.Penalties, successRate(p)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Total points: %d\n", s.Stats.TotalScore))
	sb.WriteString(fmt.Sprintf("Average score: %.2f\n", s.Stats.MeanScore))
	sb.WriteString(fmt.Sprintf("High score: %d\n", s.Stats.MaxScore))
	sb.WriteString(fmt.Sprintf("Low score: %d\n", s.Stats.MinScore))
	sb.WriteString(fmt.Sprintf("Duration: %.2fs\n", s.Duration.Seconds()))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func successRate(p game.Player) string {
	if p.TotalAttempts == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(p.SuccessfulScores)/float64(p.TotalAttempts)*100)
}
