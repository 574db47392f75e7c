package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Info struct {
	Version    string
	Addr       string
	Routes     int
	HealthAddr string
}

type Banner struct {
	renderer *lipgloss.Renderer
}

func New(w io.Writer, profile termenv.Profile) *Banner {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Banner{renderer: r}
}

func (b *Banner) Render(info Info) string {
	titleStyle := b.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	labelStyle := b.renderer.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Width(9)

	valueStyle := b.renderer.NewStyle().
		Foreground(lipgloss.Color("#04B575"))

	boxStyle := b.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 2)

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}

	rows := []string{
		titleStyle.Render("mini_web " + info.Version),
		"",
		row("listen", "http://"+info.Addr),
		row("routes", fmt.Sprintf("%d", info.Routes)),
	}
	if info.HealthAddr != "" {
		rows = append(rows, row("health", "grpc://"+info.HealthAddr))
	}

	return boxStyle.Render(strings.Join(rows, "\n"))
}

// Print writes the banner using the color profile the environment allows.
func Print(w io.Writer, info Info) error {
	profile := termenv.NewOutput(w).EnvColorProfile()
	_, err := fmt.Fprintln(w, New(w, profile).Render(info))
	return err
}
