package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	iv "github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/rubric"
	"github.com/abhisek/intervu/internal/ui/components"
	"github.com/abhisek/intervu/internal/ui/theme"
)

var dimLabels = map[rubric.Dimension]string{
	rubric.DimCommunication:  "Communication",
	rubric.DimProblemSolving: "Problem solving",
	rubric.DimCorrectness:    "Correctness",
	rubric.DimComplexity:     "Complexity",
	rubric.DimEdgeCases:      "Edge cases",
}

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.sessionID == "" {
		return renderLoading(width, height)
	}

	inputArea := s.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := s.renderTranscript(width, transcriptHeight)

	return transcript + "\n" + inputArea
}

// renderTranscript wraps every line and keeps the most recent ones that
// fit, so the conversation sticks to the bottom like a chat log.
func (s *InterviewScreen) renderTranscript(width, height int) string {
	innerWidth := width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	interviewerPrefix := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Interviewer")
	candidatePrefix := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You")
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(innerWidth)

	var rows []string
	for _, l := range s.lines {
		prefix := interviewerPrefix
		if l.role == iv.RoleStudent {
			prefix = candidatePrefix
		}
		block := prefix + "\n" + bodyStyle.Render(l.text)
		rows = append(rows, block, "")
	}

	if s.done && s.rubric != nil {
		rows = append(rows, s.renderSummary(innerWidth), "")
	}

	all := strings.Split(strings.Join(rows, "\n"), "\n")
	if len(all) > height {
		all = all[len(all)-height:]
	}

	content := strings.Join(all, "\n")
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

func (s *InterviewScreen) renderInputArea(width int) string {
	if s.done {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Interview over. Press Ctrl+C to exit.")
		return lipgloss.NewStyle().Padding(0, 2).Render(hint)
	}

	if s.waiting {
		thinking := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("interviewer is thinking...")
		return lipgloss.NewStyle().Padding(0, 2).Render(thinking)
	}

	box := lipgloss.NewStyle().
		Width(width - 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(s.input.View())

	return lipgloss.NewStyle().Padding(0, 1).Render(box)
}

// renderSummary shows the per-dimension rubric averages once the
// interview is done.
func (s *InterviewScreen) renderSummary(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Performance Summary"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d scored turns", s.rubric.Turns())))
	b.WriteString("\n\n")

	barWidth := width
	if barWidth > 48 {
		barWidth = 48
	}

	for _, d := range rubric.Dimensions {
		stats := s.rubric.Dims[d]
		if stats == nil {
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-16s", dimLabels[d]),
			stats.EMA/10.0,
			true,
			barWidth,
		)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	return theme.Card.Render(b.String())
}

func renderLoading(width, height int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Setting up your interview...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func renderError(width, height int, errMsg string) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Error).
		Render("Something went wrong:\n\n" + errMsg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
