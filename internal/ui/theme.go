package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariant wraps a theme to pin it to one variant regardless of the
// system setting.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme for mode "dark", "light", or
// "system" (anything else).
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case "dark":
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}
