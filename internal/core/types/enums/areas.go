package enums

// AreaType tells open terrain from sheltered interiors.
type AreaType uint8

const (
	AreaOutdoor AreaType = iota
	AreaIndoor
)

var areaTypeToString = map[AreaType]string{
	AreaOutdoor: "outdoor",
	AreaIndoor:  "indoor",
}

var areaTypeFromString = map[string]AreaType{
	"outdoor": AreaOutdoor,
	"indoor":  AreaIndoor,
}

func (a AreaType) String() string {
	if val, ok := areaTypeToString[a]; ok {
		return val
	}
	return "unknown"
}

// Hostile areas run spawning, enemy AI and combat.
func (a AreaType) Hostile() bool {
	return a == AreaOutdoor
}

func (a AreaType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *AreaType) UnmarshalText(text []byte) error {
	return unmarshalName(areaTypeFromString, "area type", text, a)
}
