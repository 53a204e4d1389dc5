package enums

type ItemType uint8

const (
	ItemTypeMaterial ItemType = iota
	ItemTypeWeapon
	ItemTypeArmor
	ItemTypeConsumable
	ItemTypeQuest
)

var itemTypeToString = map[ItemType]string{
	ItemTypeWeapon:     "weapon",
	ItemTypeArmor:      "armor",
	ItemTypeConsumable: "consumable",
	ItemTypeMaterial:   "material",
	ItemTypeQuest:      "quest",
}

var itemTypeFromString = map[string]ItemType{
	"weapon":     ItemTypeWeapon,
	"armor":      ItemTypeArmor,
	"consumable": ItemTypeConsumable,
	"material":   ItemTypeMaterial,
	"quest":      ItemTypeQuest,
}

func (t ItemType) String() string {
	if val, ok := itemTypeToString[t]; ok {
		return val
	}
	return "unknown"
}

func (t ItemType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ItemType) UnmarshalText(text []byte) error {
	return unmarshalName(itemTypeFromString, "item type", text, t)
}
