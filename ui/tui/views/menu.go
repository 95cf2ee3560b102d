package views

import (
	"fmt"
	"math"

	"circleprogress/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// MenuOptions are the menu rows in display order.
var MenuOptions = []string{
	"Manual Ring Control",
	"CPU Load",
	"Memory Usage",
	"Disk Usage",
	"Event Console",
}

// MenuZoneID names the clickable zone of a menu row.
func MenuZoneID(i int) string {
	return fmt.Sprintf("menu_%d", i)
}

type MenuView struct{}

func (v MenuView) Render(s state.AppState, props ViewProps) string {
	// 1. Header
	header := MenuHeaderStyle.Width(props.Width).Render("CIRCLEPROGRESS // RING DEMO")

	// 2. Menu Items
	menuItems := make([]string, 0, len(MenuOptions))
	for i, option := range MenuOptions {
		item := menuItemStyle(i, props).Render(fmt.Sprintf("%02d. %s", i+1, option))
		menuItems = append(menuItems, props.mark(MenuZoneID(i), item))
	}

	// 3. Construct Menu Box
	menuList := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	menuContent := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(2).Foreground(BrandColor).Render("PROGRESS SOURCES"),
		CopyStyle.Render("Pick what drives the ring."),
		menuList,
	)

	menuBox := MenuBoxStyle.Render(menuContent)

	// 4. Footer
	hintText := lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).Render("Sensor sources animate to each new reading.")
	controlsText := lipgloss.NewStyle().Foreground(lipgloss.Color("#333")).Render("\n[↑/↓] Navigate • [Enter] Select • [Q] Quit")

	footer := lipgloss.JoinVertical(lipgloss.Left,
		hintText,
		controlsText,
	)

	footerStyled := lipgloss.NewStyle().PaddingLeft(2).Render(footer)

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuBox,
		footerStyled,
	)

	return props.scan(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// menuListTop is the screen row of the first menu item, used to relate the
// mouse position to items. Each item is three rows tall.
const menuListTop = 6

// menuItemStyle pops the row under the spring-animated cursor out to the
// right and brightens borders near the mouse.
func menuItemStyle(i int, props ViewProps) lipgloss.Style {
	strength := max(0, 1-math.Abs(float64(i)-props.AnimCursor))
	selected := i == props.MenuCursor

	border := BaseColor
	centerY := menuListTop + i*3 + 1
	if math.Abs(float64(props.MouseY-centerY)) < 5 {
		border = lipgloss.Color("#aaa")
	}
	if strength > 0.1 || selected {
		border = BrandColor
	}

	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		MarginLeft(2 + int(strength*2)).
		Width(40)

	if selected {
		return st.Bold(true).Foreground(lipgloss.Color("#FFF"))
	}
	return st.Foreground(lipgloss.Color("#AAA"))
}

// Keep styles global or move to theme.go if preferred, but keeping here for now.
var (
	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")

	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
			Padding(1, 0).
			MarginTop(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginBottom(1).
			PaddingLeft(2)
)
