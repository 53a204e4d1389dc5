package enums

// Rarity is the ordered item-quality tier: common < uncommon < rare < epic < legendary.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// Rarities lists every tier in ascending order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

var rarityToString = map[Rarity]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
}

var rarityFromString = map[string]Rarity{
	"common":    RarityCommon,
	"uncommon":  RarityUncommon,
	"rare":      RarityRare,
	"epic":      RarityEpic,
	"legendary": RarityLegendary,
}

var rarityMultiplier = map[Rarity]float64{
	RarityCommon:    1.0,
	RarityUncommon:  1.3,
	RarityRare:      1.6,
	RarityEpic:      2.0,
	RarityLegendary: 2.5,
}

func (r Rarity) String() string {
	if val, ok := rarityToString[r]; ok {
		return val
	}
	return "unknown"
}

// Multiplier is the value/stat scale of the tier. Unknown tiers scale by 1.
func (r Rarity) Multiplier() float64 {
	if m, ok := rarityMultiplier[r]; ok {
		return m
	}
	return 1.0
}

// ParseRarity falls back to common.
func ParseRarity(s string) Rarity {
	if val, ok := lookup(rarityFromString, s); ok {
		return val
	}
	return RarityCommon
}

func (r Rarity) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Rarity) UnmarshalText(text []byte) error {
	return unmarshalName(rarityFromString, "rarity", text, r)
}
