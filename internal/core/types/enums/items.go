package enums

import "strings"

// ItemKind - категория предмета в инвентаре
type ItemKind uint8

const (
	ItemKindUnknown ItemKind = iota
	ItemKindResource
	ItemKindSword
	ItemKindGun
)

var itemKindToString = map[ItemKind]string{
	ItemKindResource: "RESOURCE",
	ItemKindSword:    "SWORD",
	ItemKindGun:      "GUN",
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsWeapon - оружие можно положить в карман.
func (k ItemKind) IsWeapon() bool {
	return k == ItemKindSword || k == ItemKindGun
}

// ResourceType - вид ресурса
type ResourceType uint8

const (
	ResourceUnknown ResourceType = iota
	ResourceStone
	ResourceWood
	ResourceGold
	ResourceAmmo
)

var resourceTypeToString = map[ResourceType]string{
	ResourceStone: "STONE",
	ResourceWood:  "WOOD",
	ResourceGold:  "GOLD",
	ResourceAmmo:  "AMMO",
}

var resourceTypeStringToType = map[string]ResourceType{
	"STONE": ResourceStone,
	"WOOD":  ResourceWood,
	"GOLD":  ResourceGold,
	"AMMO":  ResourceAmmo,
}

func (r ResourceType) String() string {
	if val, ok := resourceTypeToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseResourceType(s string) ResourceType {
	if val, ok := resourceTypeStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return ResourceUnknown
}
