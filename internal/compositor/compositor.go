// Package compositor renders the window rules that float the launcher.
package compositor

import (
	"fmt"
	"regexp"
	"strings"
)

// WindowTitle is the title the compositor rules match.
const WindowTitle = "Application Launcher"

const (
	WindowWidth  = 300
	WindowHeight = 200
)

type Compositor string

const (
	Sway     Compositor = "sway"
	Hyprland Compositor = "hyprland"
)

var Compositors = []Compositor{Sway, Hyprland}

func titlePattern() string {
	return "^" + regexp.QuoteMeta(WindowTitle) + "$"
}

// Rules returns the configuration lines that float, resize and center the
// launcher window.
func Rules(compositor Compositor) (string, error) {
	switch compositor {
	case Sway:
		return fmt.Sprintf("for_window [title=%q] floating enable, resize set %d %d, move position center\n",
			titlePattern(), WindowWidth, WindowHeight), nil
	case Hyprland:
		var builder strings.Builder
		for _, rule := range []string{
			"float",
			fmt.Sprintf("size %d %d", WindowWidth, WindowHeight),
			"center",
		} {
			fmt.Fprintf(&builder, "windowrulev2 = %s, title:(%s)\n", rule, titlePattern())
		}
		return builder.String(), nil
	}
	return "", fmt.Errorf("unsupported compositor %q", string(compositor))
}
