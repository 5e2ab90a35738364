package burn

// BodyRegion identifies one of the 19 Lund-Browder body regions.
type BodyRegion string

const (
	RegionHead           BodyRegion = "head"
	RegionNeck           BodyRegion = "neck"
	RegionAnteriorTrunk  BodyRegion = "anteriorTrunk"
	RegionPosteriorTrunk BodyRegion = "posteriorTrunk"
	RegionRightButtock   BodyRegion = "rightButtock"
	RegionLeftButtock    BodyRegion = "leftButtock"
	RegionGenitalia      BodyRegion = "genitalia"
	RegionRightUpperArm  BodyRegion = "rightUpperArm"
	RegionLeftUpperArm   BodyRegion = "leftUpperArm"
	RegionRightLowerArm  BodyRegion = "rightLowerArm"
	RegionLeftLowerArm   BodyRegion = "leftLowerArm"
	RegionRightHand      BodyRegion = "rightHand"
	RegionLeftHand       BodyRegion = "leftHand"
	RegionRightThigh     BodyRegion = "rightThigh"
	RegionLeftThigh      BodyRegion = "leftThigh"
	RegionRightLeg       BodyRegion = "rightLeg"
	RegionLeftLeg        BodyRegion = "leftLeg"
	RegionRightFoot      BodyRegion = "rightFoot"
	RegionLeftFoot       BodyRegion = "leftFoot"
)

// Regions lists every body region in chart order.
var Regions = []BodyRegion{
	RegionHead, RegionNeck,
	RegionAnteriorTrunk, RegionPosteriorTrunk,
	RegionRightButtock, RegionLeftButtock,
	RegionGenitalia,
	RegionRightUpperArm, RegionLeftUpperArm,
	RegionRightLowerArm, RegionLeftLowerArm,
	RegionRightHand, RegionLeftHand,
	RegionRightThigh, RegionLeftThigh,
	RegionRightLeg, RegionLeftLeg,
	RegionRightFoot, RegionLeftFoot,
}

// BurnFraction is the fraction of a region's area that is burned. Only the
// five quarter steps are accepted as input.
type BurnFraction float64

const (
	FractionNone          BurnFraction = 0
	FractionQuarter       BurnFraction = 0.25
	FractionHalf          BurnFraction = 0.5
	FractionThreeQuarters BurnFraction = 0.75
	FractionFull          BurnFraction = 1
)

// Valid reports whether f is one of the five allowed fraction values.
func (f BurnFraction) Valid() bool {
	switch f {
	case FractionNone, FractionQuarter, FractionHalf, FractionThreeQuarters, FractionFull:
		return true
	}
	return false
}

// BurnDepth classifies burn depth. It is informational only and never
// participates in surface-area arithmetic; downstream treatment guidance
// consumes it.
type BurnDepth string

const (
	DepthSuperficial        BurnDepth = "superficial"
	DepthSuperficialPartial BurnDepth = "superficial-partial"
	DepthDeepPartial        BurnDepth = "deep-partial"
	DepthFullThickness      BurnDepth = "full-thickness"
)

// Valid reports whether d is a known depth. The empty depth is valid: depth
// is optional on a selection.
func (d BurnDepth) Valid() bool {
	switch d {
	case "", DepthSuperficial, DepthSuperficialPartial, DepthDeepPartial, DepthFullThickness:
		return true
	}
	return false
}

// RegionSelection records the burned fraction of one body region. A
// selection set holds at most one entry per region; callers own
// deduplication.
type RegionSelection struct {
	Region   BodyRegion   `json:"region"`
	Fraction BurnFraction `json:"fraction"`
	Depth    BurnDepth    `json:"depth,omitempty"`
}
