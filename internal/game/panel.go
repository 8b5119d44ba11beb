package game

import (
	"fmt"
	"image"
	"strings"

	"github.com/iburimskiy/vector-effects/internal/config"
)

// Panel is the effect shown above the navigation buttons.
type Panel int

const (
	PanelNone Panel = iota
	PanelCircles
	PanelMesh
	PanelNeumorphism
)

var panelNames = map[Panel]string{
	PanelNone:        "",
	PanelCircles:     "Circles",
	PanelMesh:        "Mesh",
	PanelNeumorphism: "Neumorphism",
}

func (p Panel) String() string { return panelNames[p] }

// ParsePanel accepts a panel name, case-insensitively. The empty string
// selects no panel.
func ParsePanel(s string) (Panel, error) {
	for p, name := range panelNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return PanelNone, fmt.Errorf("unknown panel %q", s)
}

// button is one navigation entry. An inert button has no panel and does
// nothing when pressed.
type button struct {
	title string
	panel Panel
	inert bool
}

var buttons = [config.ButtonCount]button{
	{title: "Circles", panel: PanelCircles},
	{title: "Mesh", panel: PanelMesh},
	{title: "Neumorphism", panel: PanelNeumorphism},
	{title: "", inert: true},
}

// buttonRect is the screen rectangle of button i for the given window.
func buttonRect(i, width, height int) image.Rectangle {
	y := config.PanelHeight(height) + i*(config.ButtonHeight+config.ButtonSpacing) + config.ButtonSpacing/2
	return image.Rect(0, y, width, y+config.ButtonHeight)
}

// buttonAt returns the index of the button under (x, y), or -1.
func buttonAt(x, y, width, height int) int {
	pt := image.Pt(x, y)
	for i := range buttons {
		if pt.In(buttonRect(i, width, height)) {
			return i
		}
	}
	return -1
}

// panelRect is the drawing area of the selected effect.
func panelRect(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, config.PanelHeight(height))
}
