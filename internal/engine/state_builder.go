package engine

import (
	"strings"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/api"
)

const (
	MsgTypeFull   = "FULL"
	MsgTypeUpdate = "UPDATE"
)

// BuildSnapshot создает снимок сессии для клиента. full добавляет карту.
// Снимок не держит ссылок на доменные объекты и безопасен для чтения из других горутин.
func BuildSnapshot(s *Session, full bool, events []domain.Event, logs []api.LogEntry) *api.ServerResponse {
	island := s.Island()

	resp := &api.ServerResponse{
		Type:       MsgTypeUpdate,
		Tick:       s.CurrentTick(),
		SessionID:  s.ID,
		MyEntityID: s.Player().ID.String(),
		Game:       buildGameView(s.Logic()),
		Grid:       &api.GridMeta{Width: island.Width(), Height: island.Height(), Border: island.Border()},
		Logs:       logs,
	}

	if full {
		resp.Type = MsgTypeFull
		resp.Map = buildMap(island)
	}

	for _, e := range island.Entities() {
		resp.Entities = append(resp.Entities, toEntityView(e))
	}

	for _, ev := range events {
		resp.Events = append(resp.Events, toEventView(ev))
	}

	return resp
}

func buildGameView(g *GameLogic) api.GameView {
	return api.GameView{
		Phase:         g.Phase().String(),
		Wave:          g.Wave(),
		PreparationMs: g.PreparationLeft().Milliseconds(),
		BannerMs:      g.BannerLeft().Milliseconds(),
	}
}

func buildMap(island *domain.Island) []api.TileView {
	tiles := make([]api.TileView, 0, island.Width()*island.Height())
	for y := 0; y < island.Height(); y++ {
		for x := 0; x < island.Width(); x++ {
			tile, err := island.Tile(x, y)
			if err != nil {
				continue
			}
			g := types.TileGlyph(tile.Type)

			tv := api.TileView{
				X: x, Y: y,
				Type:       tile.Type.String(),
				Symbol:     g.Symbol(),
				Color:      g.HexColor(),
				IsWalkable: tile.IsWalkable(),
			}
			if !tile.IsEmpty() {
				tv.Occupant = tile.Occupant().String()
			}
			tiles = append(tiles, tv)
		}
	}
	return tiles
}

// toEntityView конвертирует доменную сущность в DTO
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Type: e.Kind.String(),
		Name: e.Name,
	}
	pos := e.Pos()
	view.Pos.X = pos.X
	view.Pos.Y = pos.Y

	g := types.EntityGlyph(e.Kind)
	view.Render.Symbol = g.Symbol()
	view.Render.Color = g.HexColor()

	if o := e.Facing(); o != domain.OrientationNone {
		view.Facing = o.String()
	}
	if e.Actor != nil {
		view.State = e.Actor.State.String()
	}

	// Пули однократные, здоровье им ни к чему
	if !e.Kind.IsProjectile() {
		view.Stats = &api.StatsView{
			HP:     e.Health(),
			MaxHP:  e.MaxHealth,
			IsDead: e.IsDead(),
		}
	}

	if e.Inventory != nil {
		view.Inventory = toInventoryView(e.Inventory)
	}
	return view
}

func toInventoryView(inv *domain.Inventory) *api.InventoryView {
	view := &api.InventoryView{
		Items:   []api.ItemView{},
		IsOpen:  inv.IsOpen(),
		Pockets: make([]*api.ItemView, domain.PocketCount),
	}
	for _, it := range inv.Items() {
		view.Items = append(view.Items, toItemView(it))
	}
	for i := 0; i < domain.PocketCount; i++ {
		if it, ok, err := inv.Pocket(i); err == nil && ok {
			iv := toItemView(it)
			view.Pockets[i] = &iv
		}
	}
	return view
}

func toItemView(it domain.Item) api.ItemView {
	iv := api.ItemView{
		Kind:     it.Kind.String(),
		Quantity: it.Quantity,
		Damage:   it.Damage,
	}
	if it.Kind == enums.ItemKindResource {
		iv.Resource = it.Resource.String()
	}
	return iv
}

func toEventView(ev domain.Event) api.EventView {
	view := api.EventView{
		Type:   ev.Type.String(),
		X:      ev.Pos.X,
		Y:      ev.Pos.Y,
		Health: ev.Health,
		Phase:  ev.Phase,
		Wave:   ev.Wave,
	}
	if !ev.Entity.IsNil() {
		view.Entity = ev.Entity.String()
		view.Kind = ev.Kind.String()
	}
	if ev.Facing != domain.OrientationNone {
		view.Facing = ev.Facing.String()
	}
	return view
}

// RenderASCII рисует остров символами глифов: обитатель поверх поверхности.
func RenderASCII(island *domain.Island) string {
	var sb strings.Builder
	sb.Grow((island.Width() + 1) * island.Height())

	for y := 0; y < island.Height(); y++ {
		for x := 0; x < island.Width(); x++ {
			tile, err := island.Tile(x, y)
			if err != nil {
				sb.WriteByte(' ')
				continue
			}
			g := types.TileGlyph(tile.Type)
			if e := island.Occupant(x, y); e != nil {
				g = types.EntityGlyph(e.Kind)
			}
			sb.WriteByte(g.Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
