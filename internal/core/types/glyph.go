package types

import (
	"fmt"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// Glyph - цветной символ для текстового рендера острова (debug-карта, DTO).
//
//	[0:8]  - ASCII символ
//	[8:32] - RGB-цвет 0xRRGGBB
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph упаковывает цвет (младшие 24 бита) и символ.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// HexColor возвращает цвет в виде "#RRGGBB".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// Symbol возвращает символ строкой (для JSON).
func (g Glyph) Symbol() string {
	return string([]byte{g.Char()})
}

func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// Палитра острова
var (
	tileGlyphs = map[enums.TileType]Glyph{
		enums.TileWater: MakeGlyph(0x1E64C8, '~'),
		enums.TileGrass: MakeGlyph(0x3C9A3C, '.'),
		enums.TileSand:  MakeGlyph(0xE0C878, ':'),
		enums.TileHill:  MakeGlyph(0x8A6E4B, '^'),
	}

	entityGlyphs = map[enums.EntityKind]Glyph{
		enums.EntityKindPlayer:     MakeGlyph(0xFFFFFF, '@'),
		enums.EntityKindMob:        MakeGlyph(0xD03030, 'm'),
		enums.EntityKindTree:       MakeGlyph(0x1F7A1F, 'T'),
		enums.EntityKindRock:       MakeGlyph(0x9A9A9A, 'R'),
		enums.EntityKindWoodBlock:  MakeGlyph(0xA0652D, '#'),
		enums.EntityKindStoneBlock: MakeGlyph(0x707070, '%'),
		enums.EntityKindBullet:     MakeGlyph(0xFFD700, '*'),
	}

	unknownGlyph = MakeGlyph(0xFF00FF, '?')
)

// TileGlyph возвращает символ поверхности.
func TileGlyph(t enums.TileType) Glyph {
	if g, ok := tileGlyphs[t]; ok {
		return g
	}
	return unknownGlyph
}

// EntityGlyph возвращает символ сущности.
func EntityGlyph(k enums.EntityKind) Glyph {
	if g, ok := entityGlyphs[k]; ok {
		return g
	}
	return unknownGlyph
}
