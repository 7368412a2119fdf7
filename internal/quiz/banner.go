package quiz

import "github.com/charmbracelet/lipgloss"

const bannerArt = `███╗   ███╗ ██████╗ ██╗   ██╗██╗███████╗     ██████╗ ██╗   ██╗██╗███████╗
████╗ ████║██╔═══██╗██║   ██║██║██╔════╝    ██╔═══██╗██║   ██║██║╚══███╔╝
██╔████╔██║██║   ██║██║   ██║██║█████╗      ██║   ██║██║   ██║██║  ███╔╝
██║╚██╔╝██║██║   ██║╚██╗ ██╔╝██║██╔══╝      ██║▄▄ ██║██║   ██║██║ ███╔╝
██║ ╚═╝ ██║╚██████╔╝ ╚████╔╝ ██║███████╗    ╚██████╔╝╚██████╔╝██║███████╗
╚═╝     ╚═╝ ╚═════╝   ╚═══╝  ╚═╝╚══════╝     ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#FACC15"}).
	Padding(1, 0)

// Banner returns the start screen.
func Banner() string {
	return bannerStyle.Render(bannerArt)
}
