package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// grassIsland - поле травы без рамки.
func grassIsland(t *testing.T, w, h int) *domain.Island {
	t.Helper()
	grid := make([][]enums.TileType, h)
	for y := range grid {
		grid[y] = make([]enums.TileType, w)
		for x := range grid[y] {
			grid[y][x] = enums.TileGrass
		}
	}
	island, err := domain.NewIsland(grid, 0, 1)
	require.NoError(t, err)
	return island
}

func placePlayer(w *domain.Island, x, y int) *domain.Entity {
	p := islandgen.CreatePlayer(domain.CellVector(x, y))
	w.Add(p)
	w.Place(p)
	return p
}

// writeGrassMap пишет файл карты w x h из одной травы.
func writeGrassMap(t *testing.T, w, h int) string {
	t.Helper()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		row := make([]string, w)
		for x := range row {
			row[x] = "1"
		}
		fmt.Fprintln(&sb, strings.Join(row, " "))
	}

	path := filepath.Join(t.TempDir(), "island.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

// testConfig - остров 25x25 без рамки, игрок в (10,10).
func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 42
	cfg.MapPath = writeGrassMap(t, 25, 25)
	cfg.Border = 0
	cfg.PlayerStartX, cfg.PlayerStartY = 10, 10
	return cfg
}

func countKind(w *domain.Island, kinds ...enums.EntityKind) int {
	n := 0
	for _, k := range kinds {
		n += w.Count(k)
	}
	return n
}

// clearCell убирает всё, что успело вырасти на клетке.
func clearCell(w *domain.Island, x, y int) {
	if e := w.Occupant(x, y); e != nil {
		w.Vacate(e)
		w.Remove(e)
	}
}
