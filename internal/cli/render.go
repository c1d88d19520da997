package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/worldforge/internal/noise"
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
)

// noiseRamp maps a [0,1] sample to a shade character, darkest to brightest.
var noiseRamp = []rune(" .:-=+*#%@")

// renderSummary formats a titled block of label/value lines for stdout.
func renderSummary(title string, pairs [][2]string) string {
	var b strings.Builder
	b.WriteString(summaryTitle.Render(title))
	b.WriteByte('\n')
	for _, p := range pairs {
		b.WriteString(summaryLabel.Render(p[0]))
		b.WriteString(p[1])
		b.WriteByte('\n')
	}
	return b.String()
}

// renderNoise formats a noise map as one shade rune per sample.
func renderNoise(m *noise.Map) string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := int(m.At(x, y) * float64(len(noiseRamp)-1))
			b.WriteRune(noiseRamp[idx])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
