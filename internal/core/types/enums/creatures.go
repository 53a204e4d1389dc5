package enums

// Element is the elemental type of a creature.
type Element uint8

const (
	ElementFire Element = iota
	ElementWater
	ElementGrass
	ElementElectric
	ElementGround
	ElementFlying
)

var elementToString = map[Element]string{
	ElementFire:     "fire",
	ElementWater:    "water",
	ElementGrass:    "grass",
	ElementElectric: "electric",
	ElementGround:   "ground",
	ElementFlying:   "flying",
}

var elementFromString = map[string]Element{
	"fire":     ElementFire,
	"water":    ElementWater,
	"grass":    ElementGrass,
	"electric": ElementElectric,
	"ground":   ElementGround,
	"flying":   ElementFlying,
}

func (e Element) String() string {
	if val, ok := elementToString[e]; ok {
		return val
	}
	return "unknown"
}

func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Element) UnmarshalText(text []byte) error {
	return unmarshalName(elementFromString, "element", text, e)
}

// GrowthRate selects the experience curve of a creature.
type GrowthRate uint8

const (
	GrowthMedium GrowthRate = iota
	GrowthSlow
	GrowthFast
)

var growthToString = map[GrowthRate]string{
	GrowthSlow:   "slow",
	GrowthMedium: "medium",
	GrowthFast:   "fast",
}

var growthFromString = map[string]GrowthRate{
	"slow":   GrowthSlow,
	"medium": GrowthMedium,
	"fast":   GrowthFast,
}

// Fast growth needs less experience per level.
var growthExponent = map[GrowthRate]float64{
	GrowthSlow:   1.25,
	GrowthMedium: 1.0,
	GrowthFast:   0.8,
}

func (g GrowthRate) String() string {
	if val, ok := growthToString[g]; ok {
		return val
	}
	return "unknown"
}

// Exponent of the level curve floor(100 * level^exp).
func (g GrowthRate) Exponent() float64 {
	if e, ok := growthExponent[g]; ok {
		return e
	}
	return 1.0
}

func (g GrowthRate) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *GrowthRate) UnmarshalText(text []byte) error {
	return unmarshalName(growthFromString, "growth rate", text, g)
}

// BallType is the capture device tier: basic < super < ultra.
type BallType uint8

const (
	BallBasic BallType = iota
	BallSuper
	BallUltra
)

var ballToString = map[BallType]string{
	BallBasic: "basic",
	BallSuper: "super",
	BallUltra: "ultra",
}

var ballFromString = map[string]BallType{
	"basic": BallBasic,
	"super": BallSuper,
	"ultra": BallUltra,
}

var ballModifier = map[BallType]float64{
	BallBasic: 1.0,
	BallSuper: 1.5,
	BallUltra: 2.0,
}

// inventory item consumed per throw, basic balls are free
var ballItem = map[BallType]string{
	BallSuper: "ball_super",
	BallUltra: "ball_ultra",
}

func (b BallType) String() string {
	if val, ok := ballToString[b]; ok {
		return val
	}
	return "unknown"
}

func (b BallType) Modifier() float64 {
	if m, ok := ballModifier[b]; ok {
		return m
	}
	return 1.0
}

// ItemID is the inventory item a throw consumes, "" when none.
func (b BallType) ItemID() string {
	return ballItem[b]
}

// ParseBallType falls back to basic.
func ParseBallType(s string) BallType {
	if val, ok := lookup(ballFromString, s); ok {
		return val
	}
	return BallBasic
}

func (b BallType) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BallType) UnmarshalText(text []byte) error {
	return unmarshalName(ballFromString, "ball type", text, b)
}
