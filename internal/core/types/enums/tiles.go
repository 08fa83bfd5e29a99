package enums

import "strings"

// TileType - тип поверхности клетки. Числовые значения совпадают с кодами
// в файле карты: 0 вода, 1 трава, 2 песок, 3 холм.
type TileType uint8

const (
	TileWater TileType = iota
	TileGrass
	TileSand
	TileHill
)

var tileTypeToString = map[TileType]string{
	TileWater: "WATER",
	TileGrass: "GRASS",
	TileSand:  "SAND",
	TileHill:  "HILL",
}

var tileTypeStringToType = map[string]TileType{
	"WATER": TileWater,
	"GRASS": TileGrass,
	"SAND":  TileSand,
	"HILL":  TileHill,
}

func (t TileType) String() string {
	if val, ok := tileTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTileType возвращает false для неизвестного имени.
func ParseTileType(s string) (TileType, bool) {
	val, ok := tileTypeStringToType[strings.ToUpper(s)]
	return val, ok
}

// TileTypeFromCode переводит код из файла карты в тип.
func TileTypeFromCode(code int) (TileType, bool) {
	if code < int(TileWater) || code > int(TileHill) {
		return TileWater, false
	}
	return TileType(code), true
}

// Walkable - базовая проходимость типа без учёта занятости.
func (t TileType) Walkable() bool {
	return t == TileGrass || t == TileSand
}
