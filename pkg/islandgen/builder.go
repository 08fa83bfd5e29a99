package islandgen

import (
	"fmt"
	"math/rand"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// IslandBuilder предоставляет fluent API для создания острова
type IslandBuilder struct {
	codes  [][]int
	border int
	epoch  uint8
	// стартовая клетка игрока без учёта рамки
	startX, startY int
	rng            *rand.Rand
	err            error
}

// New создает новый builder. Без карты остров будет процедурным.
func New(rng *rand.Rand) *IslandBuilder {
	return &IslandBuilder{
		border: domain.MapBorder,
		epoch:  1,
		startX: domain.DefaultPlayerStartX,
		startY: domain.DefaultPlayerStartY,
		rng:    rng,
	}
}

// WithCodes задаёт карту кодов напрямую
func (b *IslandBuilder) WithCodes(codes [][]int) *IslandBuilder {
	b.codes = codes
	return b
}

// WithMapFile читает карту из файла. Ошибка всплывёт в Build.
func (b *IslandBuilder) WithMapFile(path string) *IslandBuilder {
	if path == "" {
		return b
	}
	codes, err := LoadGrid(path)
	if err != nil {
		b.err = err
		return b
	}
	b.codes = codes
	return b
}

// WithProcedural генерирует карту кодов заданного размера
func (b *IslandBuilder) WithProcedural(width, height int) *IslandBuilder {
	b.codes = Procedural(b.rng, width, height)
	return b
}

// WithBorder меняет ширину водной рамки
func (b *IslandBuilder) WithBorder(border int) *IslandBuilder {
	b.border = border
	return b
}

// WithEpoch задаёт номер сессии, который попадёт в хэндлы сущностей
func (b *IslandBuilder) WithEpoch(epoch uint8) *IslandBuilder {
	b.epoch = epoch
	return b
}

// WithPlayerStart задаёт стартовую клетку игрока (без учёта рамки)
func (b *IslandBuilder) WithPlayerStart(x, y int) *IslandBuilder {
	b.startX, b.startY = x, y
	return b
}

// Build собирает остров и возвращает стартовую позицию игрока.
func (b *IslandBuilder) Build() (*domain.Island, domain.Vector, error) {
	if b.err != nil {
		return nil, domain.Vector{}, b.err
	}
	if b.codes == nil {
		b.WithProcedural(ProceduralWidth, ProceduralHeight)
	}

	grid, err := Generate(b.codes, b.border)
	if err != nil {
		return nil, domain.Vector{}, fmt.Errorf("generate island: %w", err)
	}

	island, err := domain.NewIsland(grid, b.border, b.epoch)
	if err != nil {
		return nil, domain.Vector{}, fmt.Errorf("build island: %w", err)
	}

	start, ok := b.startPos(island)
	if !ok {
		return nil, domain.Vector{}, fmt.Errorf("no walkable cell for the player: %w", ErrMalformedMap)
	}
	return island, start, nil
}

// startPos возвращает заданную стартовую клетку или ближайшую к ней свободную проходимую.
func (b *IslandBuilder) startPos(island *domain.Island) (domain.Vector, bool) {
	x, y := b.startX+b.border, b.startY+b.border
	if island.InPlayableArea(x, y) && island.IsWalkable(x, y) {
		return domain.CellVector(x, y), true
	}

	want := domain.CellVector(x, y)
	best, found := domain.Vector{}, false
	for _, c := range island.SpawnableCells() {
		v := domain.CellVector(c[0], c[1])
		if !found || v.ManhattanTo(want) < best.ManhattanTo(want) {
			best, found = v, true
		}
	}
	return best, found
}

// --- Заселение ---

// SpawnResources ставит до n ресурсов (деревья и камни) на случайные свободные клетки.
// Возвращает число поставленных.
func SpawnResources(island *domain.Island, rng *rand.Rand, n int) int {
	placed := 0
	for i := 0; i < n; i++ {
		x, y, ok := island.RandomSpawnCell(rng)
		if !ok {
			break
		}
		e := CreateResource(rng, domain.CellVector(x, y))
		island.Add(e)
		island.Place(e)
		placed++
	}
	return placed
}

// SpawnMobs ставит до n мобов, преследующих target.
func SpawnMobs(island *domain.Island, rng *rand.Rand, n int, target types.EntityID) int {
	placed := 0
	for i := 0; i < n; i++ {
		x, y, ok := island.RandomSpawnCell(rng)
		if !ok {
			break
		}
		m := CreateMob(domain.CellVector(x, y), target)
		island.Add(m)
		island.Place(m)
		placed++
	}
	return placed
}

// SpawnAt ставит сущность из шаблона на конкретную клетку. Занятая или
// непроходимая клетка - false.
func SpawnAt(island *domain.Island, t EntityTemplate, x, y int, target types.EntityID) (*domain.Entity, bool) {
	if !island.InPlayableArea(x, y) || !island.IsWalkable(x, y) {
		return nil, false
	}
	tile, err := island.Tile(x, y)
	if err != nil || !tile.IsEmpty() {
		return nil, false
	}

	e := t.SpawnEntity(domain.CellVector(x, y))
	if e.Kind == enums.EntityKindMob {
		e.Actor.Target = target
	}
	island.Add(e)
	island.Place(e)
	return e, true
}
