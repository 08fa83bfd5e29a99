package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
)

func command(action domain.ActionType, payload any) domain.InternalCommand {
	cmd := domain.InternalCommand{Action: action}
	if payload != nil {
		raw, _ := json.Marshal(payload)
		cmd.Payload = raw
	}
	return cmd
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, uint8(1), s.Epoch())
	assert.Equal(t, 25, s.Island().Width())

	p := s.Player()
	assert.Equal(t, domain.CellVector(10, 10), p.Pos())
	assert.Equal(t, p, s.Island().Occupant(10, 10))
	assert.True(t, p.ID.BelongsTo(s.Epoch()))

	assert.Equal(t, enums.PhasePreparing, s.Logic().Phase())
	assert.Equal(t, ResourceCount(0), countKind(s.Island(), enums.EntityKindTree, enums.EntityKindRock))
}

func TestNewSession_BadMap(t *testing.T) {
	cfg := testConfig(t)
	cfg.MapPath = "/nonexistent/island.txt"

	_, err := NewSession(cfg)
	assert.Error(t, err)
}

func TestNewSession_Procedural(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 3

	s, err := NewSession(cfg)
	require.NoError(t, err)
	assert.Equal(t, islandgen.ProceduralWidth+2*domain.MapBorder, s.Island().Width())
	assert.Equal(t, islandgen.ProceduralHeight+2*domain.MapBorder, s.Island().Height())

	x, y := s.Player().Cell()
	assert.True(t, s.Island().InPlayableArea(x, y))
}

func TestSession_Deterministic(t *testing.T) {
	cfg := testConfig(t)
	a, err := NewSession(cfg)
	require.NoError(t, err)
	b, err := NewSession(cfg)
	require.NoError(t, err)

	assert.Equal(t, RenderASCII(a.Island()), RenderASCII(b.Island()))
}

func TestSession_BuildWood(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)
	clearCell(s.Island(), 10, 11)

	p := s.Player()
	require.Equal(t, domain.South, p.Actor.Orientation)

	_, err = s.Execute(command(domain.ActionBuildWood, nil))
	require.NoError(t, err)

	block := s.Island().Occupant(10, 11)
	require.NotNil(t, block)
	assert.Equal(t, enums.EntityKindWoodBlock, block.Kind)
	assert.Equal(t, domain.StartWood-1, p.Inventory.Count(enums.ResourceWood))
	assert.False(t, s.Island().IsWalkable(10, 11))
}

func TestSession_BuildWithoutWood(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)
	clearCell(s.Island(), 10, 11)
	s.Player().Inventory.Remove(domain.Resource(enums.ResourceWood, domain.StartWood))
	s.TakeLogs()

	res, err := s.Execute(command(domain.ActionBuildWood, nil))
	require.NoError(t, err)
	assert.Equal(t, "ERROR", res.MsgType)
	assert.Nil(t, s.Island().Occupant(10, 11))
	assert.Len(t, s.TakeLogs(), 1)
}

func TestSession_Move(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)
	clearCell(s.Island(), 11, 10)
	p := s.Player()

	_, err = s.Execute(command(domain.ActionMove, api.DirectionPayload{Dx: 1}))
	require.NoError(t, err)
	assert.Equal(t, domain.East, p.Actor.Orientation)
	assert.Equal(t, domain.CellVector(10, 10), p.Pos())

	_, err = s.Execute(command(domain.ActionMove, api.DirectionPayload{Dx: 1}))
	require.NoError(t, err)
	assert.Equal(t, domain.CellVector(11, 10), p.Pos())

	_, err = s.Execute(command(domain.ActionMove, api.DirectionPayload{Dx: 1, Dy: 1}))
	assert.Error(t, err, "diagonal is rejected by validation")

	_, err = s.Execute(command(domain.ActionMove, nil))
	assert.Error(t, err, "payload is required")
}

func TestSession_ShootWithoutAmmo(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)
	p := s.Player()
	p.Inventory.Remove(domain.Resource(enums.ResourceAmmo, domain.StartAmmo))
	before := s.Island().Len()

	res, err := s.Execute(command(domain.ActionShoot, nil))
	require.NoError(t, err)
	assert.Equal(t, "ERROR", res.MsgType)
	assert.Equal(t, before, s.Island().Len(), "no bullet is spawned")
	assert.Equal(t, 0, p.Inventory.Count(enums.ResourceAmmo))
}

func TestSession_ToggleInventory(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)

	_, err = s.Execute(command(domain.ActionToggleInventory, nil))
	require.NoError(t, err)
	assert.True(t, s.Player().Inventory.IsOpen())

	events := s.DrainEvents()
	var changed bool
	for _, ev := range events {
		if ev.Type == domain.EventInventoryChanged {
			changed = true
		}
	}
	assert.True(t, changed)
}

func TestSession_MobApproaches(t *testing.T) {
	cfg := testConfig(t)
	cfg.PlayerStartX, cfg.PlayerStartY = 5, 10
	s, err := NewSession(cfg)
	require.NoError(t, err)
	island := s.Island()

	// Убираем ресурсы, чтобы путь был прямым
	for _, e := range island.Entities() {
		if e.Kind.IsElement() {
			island.Vacate(e)
			island.Remove(e)
		}
	}
	p := s.Player()
	require.Equal(t, domain.CellVector(5, 10), p.Pos())

	mob, ok := islandgen.SpawnAt(island, islandgen.MobTemplate, 5, 5, p.ID)
	require.True(t, ok)

	dist := mob.Pos().ManhattanTo(p.Pos())
	for i := 0; i < 20 && dist > 1; i++ {
		s.Tick(domain.MobMoveInterval)
		next := mob.Pos().ManhattanTo(p.Pos())
		assert.Less(t, next, dist, "distance strictly decreases")
		dist = next
	}
	assert.Equal(t, 1.0, dist)
}

func TestSession_GameOverRefusesActions(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)
	s.Island().SetHealth(s.Player(), 0)
	s.Tick(domain.MobMoveInterval)
	require.True(t, s.Logic().IsGameOver())

	res, err := s.Execute(command(domain.ActionMelee, nil))
	require.NoError(t, err)
	assert.Equal(t, "ERROR", res.MsgType)

	res, err = s.Execute(command(domain.ActionInit, nil))
	require.NoError(t, err)
	assert.True(t, res.Resync)
}

func TestSession_Restart(t *testing.T) {
	s, err := NewSession(testConfig(t))
	require.NoError(t, err)
	oldIsland, oldPlayer := s.Island(), s.Player()
	s.Island().SetHealth(oldPlayer, 0)
	s.Tick(domain.MobMoveInterval)

	res, err := s.Execute(command(domain.ActionRestart, nil))
	require.NoError(t, err)
	assert.True(t, res.Resync)

	assert.NotSame(t, oldIsland, s.Island())
	assert.NotSame(t, oldPlayer, s.Player())
	assert.Equal(t, uint8(2), s.Epoch())
	assert.Equal(t, enums.PhasePreparing, s.Logic().Phase())
	assert.Equal(t, 0, s.Logic().Wave())
	assert.Equal(t, domain.PlayerMaxHealth, s.Player().Health())
	assert.False(t, oldPlayer.ID.BelongsTo(s.Epoch()), "old handles are stale")
}

func TestSession_AdminCommands(t *testing.T) {
	t.Run("disabled without debug", func(t *testing.T) {
		s, err := NewSession(testConfig(t))
		require.NoError(t, err)

		_, err = s.Execute(command(domain.ActionAdminHeal, nil))
		assert.Error(t, err)
	})

	t.Run("enabled with debug", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Debug = true
		s, err := NewSession(cfg)
		require.NoError(t, err)
		p := s.Player()

		s.Island().SetHealth(p, 5)
		_, err = s.Execute(command(domain.ActionAdminHeal, nil))
		require.NoError(t, err)
		assert.Equal(t, domain.PlayerMaxHealth, p.Health())

		_, err = s.Execute(command(domain.ActionAdminGive, api.ResourcePayload{Resource: "gold", Count: 3}))
		require.NoError(t, err)
		assert.Equal(t, 3, p.Inventory.Count(enums.ResourceGold))

		_, err = s.Execute(command(domain.ActionAdminGive, api.ResourcePayload{Resource: "diamonds", Count: 3}))
		assert.Error(t, err)

		clearCell(s.Island(), 12, 12)
		_, err = s.Execute(command(domain.ActionAdminSpawn, api.SpawnPayload{Template: "mob", X: 12, Y: 12}))
		require.NoError(t, err)
		m := s.Island().Occupant(12, 12)
		require.NotNil(t, m)
		assert.Equal(t, enums.EntityKindMob, m.Kind)
		assert.Equal(t, p.ID, m.Actor.Target)

		_, err = s.Execute(command(domain.ActionAdminSkipPrep, nil))
		require.NoError(t, err)
		s.Tick(domain.MobMoveInterval)
		assert.Equal(t, enums.PhaseWave, s.Logic().Phase())
	})
}
