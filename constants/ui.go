package constants

// Layout
const (
	// MinWidth and MinHeight are the smallest screen the tour lays out on;
	// below this a resize notice is shown instead
	MinWidth  = 60
	MinHeight = 20

	// WideLayoutWidth is the threshold above which the phone frame is drawn
	// beside the hero instead of below it
	WideLayoutWidth = 100

	// PhoneWidth and PhoneHeight are the outer phone frame dimensions in cells
	PhoneWidth  = 26
	PhoneHeight = 15

	// ModalWidth and ModalHeight bound the comparison overlay
	ModalWidth  = 52
	ModalHeight = 14

	// SectionGap is the blank rows between page sections
	SectionGap = 1
)
