package constants

// Common constants used across the recipfit codebase.

const (
	// MaxAddressLength is the longest recipient address accepted by the parser.
	// Matches the practical SMTP path limit of 254 octets.
	MaxAddressLength = 254

	// ItemSeparator joins visible recipients in the rendered summary.
	ItemSeparator = ", "

	// DefaultSuffixMarker is appended to the summary when recipients are hidden.
	DefaultSuffixMarker = ",..."

	// DefaultMinimumViableWidth is the width below which no fitting is attempted.
	// Expressed in the active measurement unit.
	DefaultMinimumViableWidth = 50

	// DefaultFont is the computed font of a root element with nothing declared.
	DefaultFont = "normal 400 13px Go"

	// DefaultFontSizePx is the root font size used to resolve relative sizes.
	DefaultFontSizePx = 13

	// FixedAdvancePx is the per-rune advance of the fixed-width approximation.
	// Same cell width as basicfont.Face7x13.
	FixedAdvancePx = 7

	// HoverShowDelayMs is how long the pointer must rest on the cell before the
	// tooltip opens.
	HoverShowDelayMs = 300

	// HoverHideDelayMs is how long the tooltip lingers after the pointer leaves.
	HoverHideDelayMs = 150

	// CellWidthStep is how many columns the [ and ] keys move the width override.
	CellWidthStep = 4

	// CellChromeWidth is the horizontal space the cell border and padding take.
	CellChromeWidth = 4
)
