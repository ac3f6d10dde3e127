package constants

// HUD Layout (logical pixels)
const (
	// PowerBarX is the left edge of the power bar
	PowerBarX = 20

	// PowerBarBottomOffset is the distance from the screen bottom to the bar top
	PowerBarBottomOffset = 40

	// PowerBarWidth is the full-power bar width
	PowerBarWidth = 300

	// PowerBarHeight is the bar height
	PowerBarHeight = 20

	// HUDTextX is the left edge of all HUD text lines
	HUDTextX = 20

	// ScoreTextY, HoleTextY and HintTextY are the HUD line positions
	ScoreTextY = 20
	HoleTextY  = 60
	HintTextY  = 100

	// HUDFontSize is the nominal text size
	HUDFontSize = 30

	// AimLineWidth is the stroke width of the aim indicator
	AimLineWidth = 5

	// HintText is shown while the ball is being dragged
	HintText = "Drag to aim"
)

// Tree Shape
const (
	// TreeCanopyRadius is the canopy circle radius around the marker
	TreeCanopyRadius = 30

	// TreeTrunkOffsetX is the trunk left edge relative to the marker
	TreeTrunkOffsetX = -10

	// TreeTrunkOffsetY is the trunk top relative to the marker
	TreeTrunkOffsetY = 30

	// TreeTrunkWidth and TreeTrunkHeight size the trunk rectangle
	TreeTrunkWidth  = 20
	TreeTrunkHeight = 50
)
