package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	litGlyph = "●"
	offGlyph = "·"
)

var (
	layerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// Render draws every layer as a bordered grid, side by side.
func Render(src Source, hue float64, brightness uint8) string {
	n := int(src.Size())
	tiles := Tiles(src)
	lit := lipgloss.NewStyle().Foreground(lipgloss.Color(Colour(hue, brightness).Hex()))
	if brightness == 0 {
		lit = offStyle
	}

	blocks := make([]string, 0, n)
	for z := 0; z < n; z++ {
		var b strings.Builder
		for row := 0; row < n; row++ {
			if row > 0 {
				b.WriteByte('\n')
			}
			for x := 0; x < n; x++ {
				if x > 0 {
					b.WriteByte(' ')
				}
				if tiles.BitAt(z*(n+1)+x, row) == image1bit.On {
					b.WriteString(lit.Render(litGlyph))
				} else {
					b.WriteString(offStyle.Render(offGlyph))
				}
			}
		}
		label := labelStyle.Render(fmt.Sprintf("z=%d", z))
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Center, label, layerStyle.Render(b.String())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
