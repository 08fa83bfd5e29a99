package systems

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// createTestIsland - поле травы w x h без рамки.
func createTestIsland(t *testing.T, w, h int) *domain.Island {
	t.Helper()
	return islandWith(t, w, h, nil)
}

// islandWith - поле травы, в котором часть клеток заменена (вода, холмы).
func islandWith(t *testing.T, w, h int, overrides map[[2]int]enums.TileType) *domain.Island {
	t.Helper()
	grid := make([][]enums.TileType, h)
	for y := range grid {
		grid[y] = make([]enums.TileType, w)
		for x := range grid[y] {
			grid[y][x] = enums.TileGrass
			if tt, ok := overrides[[2]int{x, y}]; ok {
				grid[y][x] = tt
			}
		}
	}
	island, err := domain.NewIsland(grid, 0, 1)
	require.NoError(t, err)
	return island
}

func put(w *domain.Island, e *domain.Entity) *domain.Entity {
	w.Add(e)
	w.Place(e)
	return e
}

func putPlayer(w *domain.Island, x, y int) *domain.Entity {
	return put(w, islandgen.CreatePlayer(domain.CellVector(x, y)))
}

func putMob(w *domain.Island, x, y int, target types.EntityID) *domain.Entity {
	return put(w, islandgen.CreateMob(domain.CellVector(x, y), target))
}

func putTemplate(w *domain.Island, tmpl islandgen.EntityTemplate, x, y int) *domain.Entity {
	return put(w, tmpl.SpawnEntity(domain.CellVector(x, y)))
}

func putBullet(w *domain.Island, x, y int, o domain.Orientation) *domain.Entity {
	return put(w, islandgen.CreateBullet(domain.CellVector(x, y), o, domain.GunDamage, types.NilEntityID))
}

func cellOf(e *domain.Entity) [2]int {
	x, y := e.Cell()
	return [2]int{x, y}
}
