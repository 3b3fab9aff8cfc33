// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Paleta de colores de webchain

// Colores primarios
var (
	// SignalTeal - elementos principales y headers
	SignalTeal = pterm.NewRGB(0, 168, 150)

	// AlertRed - errores
	AlertRed = pterm.NewRGB(215, 38, 56)

	// AmberWarn - warnings y herramientas desactualizadas
	AmberWarn = pterm.NewRGB(255, 182, 39)

	// SlateGray - texto secundario, dry-run
	SlateGray = pterm.NewRGB(110, 110, 110)

	// PaperWhite - texto principal
	PaperWhite = pterm.NewRGB(232, 232, 232)
)

// Estilos preconfigurados para diferentes contextos
var (
	// StylePrimary - headers y elementos destacados
	StylePrimary = SignalTeal.ToRGBStyle()

	// StyleSuccess - operaciones exitosas
	StyleSuccess = pterm.NewStyle(pterm.FgGreen)

	// StyleWarning - advertencias
	StyleWarning = AmberWarn.ToRGBStyle()

	// StyleError - errores
	StyleError = AlertRed.ToRGBStyle()

	// StyleSecondary - texto secundario
	StyleSecondary = SlateGray.ToRGBStyle()

	// StyleText - texto principal
	StyleText = PaperWhite.ToRGBStyle()

	// StyleMuted - líneas de dry-run y muestras
	StyleMuted = pterm.NewStyle(pterm.FgGray)
)
