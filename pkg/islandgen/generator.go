package islandgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// Константы процедурной генерации
const (
	ProceduralWidth  = 40
	ProceduralHeight = 30
	// минимальный размер, при котором стартовая клетка (10,10) внутри острова
	minProceduralSize = 2*10 + 2
)

// hillMasks - маски воды вокруг травы, при которых трава становится холмом
// (берег острова). Биты: N=1, E=2, S=4, W=8, NE=16, NW=32, SE=64, SW=128.
var hillMasks = map[int]bool{
	1: true, 2: true, 4: true, 8: true,
	3: true, 9: true, 6: true, 12: true,
	16: true, 32: true, 64: true, 128: true,
}

// neighbours - порядок обхода соседей (drow, dcol): сначала четыре стороны, потом диагонали.
var neighbours = [8][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
	{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
}

// Generate окружает карту кодов водной рамкой ширины border и выводит холмы.
// Коды: 0 вода, 1 трава, 2 песок, 3 холм.
func Generate(codes [][]int, border int) ([][]enums.TileType, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, fmt.Errorf("empty map: %w", ErrMalformedMap)
	}
	if border < 0 {
		border = 0
	}

	inner := len(codes[0])
	width := inner + 2*border
	height := len(codes) + 2*border

	grid := make([][]enums.TileType, height)
	for y := range grid {
		grid[y] = make([]enums.TileType, width) // TileWater == 0
	}

	for y, row := range codes {
		if len(row) != inner {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), inner, ErrMalformedMap)
		}
		for x, code := range row {
			t, ok := enums.TileTypeFromCode(code)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown tile code %d: %w", y, x, code, ErrMalformedMap)
			}
			grid[y+border][x+border] = t
		}
	}

	deriveHills(grid, border)
	return grid, nil
}

// deriveHills превращает береговую траву в холмы по маске соседней воды.
// Соседи проверяются только в пределах рамки, расширенной на одну клетку.
func deriveHills(grid [][]enums.TileType, border int) {
	height, width := len(grid), len(grid[0])

	inRing := func(r, c int) bool {
		return r >= 0 && r < height && c >= 0 && c < width &&
			r >= border-1 && r < height-border+1 &&
			c >= border-1 && c < width-border+1
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if grid[r][c] != enums.TileGrass {
				continue
			}

			mask := 0
			for i, d := range neighbours {
				// вода по сторонам важнее диагоналей
				if i == 4 && mask != 0 {
					break
				}
				nr, nc := r+d[0], c+d[1]
				if inRing(nr, nc) && grid[nr][nc] == enums.TileWater {
					mask |= 1 << i
				}
			}

			if hillMasks[mask] {
				grid[r][c] = enums.TileHill
			}
		}
	}
}

// Procedural рисует остров-эллипс с неровным берегом: трава в центре,
// полоса песка, вокруг вода. Возвращает карту кодов без рамки.
func Procedural(rng *rand.Rand, width, height int) [][]int {
	width = max(width, minProceduralSize)
	height = max(height, minProceduralSize)

	cx, cy := float64(width-1)/2, float64(height-1)/2
	rx, ry := float64(width)/2, float64(height)/2

	codes := make([][]int, height)
	for y := 0; y < height; y++ {
		codes[y] = make([]int, width)
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			d := math.Sqrt(dx*dx+dy*dy) + (rng.Float64()-0.5)*0.1

			switch {
			case d < 0.8:
				codes[y][x] = int(enums.TileGrass)
			case d < 0.95:
				codes[y][x] = int(enums.TileSand)
			default:
				codes[y][x] = int(enums.TileWater)
			}
		}
	}

	return codes
}
