package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
)

// fixedSource - источник с произвольным видом и уроном.
type fixedSource domain.Interaction

func (s fixedSource) Interaction(cell bool) domain.Interaction {
	in := domain.Interaction(s)
	in.Cell = cell
	return in
}

func TestAcceptInteraction_Policies(t *testing.T) {
	sources := []domain.DamageSource{
		domain.SourcePlayerMelee,
		domain.SourceSwordHit,
		domain.SourceProjectileHit,
		domain.SourceMobHit,
	}

	tests := []struct {
		name    string
		tmpl    islandgen.EntityTemplate
		damaged map[domain.DamageSource]bool
	}{
		{"tree", islandgen.TreeTemplate, map[domain.DamageSource]bool{domain.SourceSwordHit: true}},
		{"rock", islandgen.RockTemplate, map[domain.DamageSource]bool{domain.SourceSwordHit: true}},
		{"wood block", islandgen.WoodBlockTemplate, map[domain.DamageSource]bool{domain.SourceSwordHit: true}},
		{"mob", islandgen.MobTemplate, map[domain.DamageSource]bool{
			domain.SourcePlayerMelee:   true,
			domain.SourceSwordHit:      true,
			domain.SourceProjectileHit: true,
		}},
		{"player", islandgen.PlayerTemplate, map[domain.DamageSource]bool{domain.SourceMobHit: true}},
	}

	for _, tt := range tests {
		for _, src := range sources {
			t.Run(tt.name+"/"+src.String(), func(t *testing.T) {
				w := createTestIsland(t, 3, 3)
				e := putTemplate(w, tt.tmpl, 1, 1)
				before := e.Health()

				applied := InteractWith(w, fixedSource{Source: src, Damage: 10}, EntityTarget(e), true)

				if tt.damaged[src] {
					assert.True(t, applied)
					assert.Equal(t, before-10, e.Health())
				} else {
					assert.False(t, applied)
					assert.Equal(t, before, e.Health())
				}
			})
		}
	}
}

func TestAcceptInteraction_Bullet(t *testing.T) {
	w := createTestIsland(t, 3, 3)

	b := putBullet(w, 1, 1, domain.East)
	assert.False(t, InteractWith(w, fixedSource{Source: domain.SourceMobHit}, EntityTarget(b), true),
		"zero damage does not destroy a bullet")
	assert.False(t, b.IsDead())

	assert.True(t, InteractWith(w, fixedSource{Source: domain.SourceMobHit, Damage: 1}, EntityTarget(b), true))
	assert.True(t, b.IsDead())
}

func TestAcceptInteraction_DeadTargetIgnored(t *testing.T) {
	w := createTestIsland(t, 3, 3)
	m := putMob(w, 1, 1, types.NilEntityID)
	w.SetHealth(m, 0)

	assert.False(t, InteractWith(w, fixedSource{Source: domain.SourceSwordHit, Damage: 50}, EntityTarget(m), true))
	assert.Equal(t, 0, m.Health())
}

func TestAcceptInteraction_PlayerDeathClearsTile(t *testing.T) {
	w := createTestIsland(t, 3, 3)
	p := putPlayer(w, 1, 1)
	w.SetHealth(p, 10)
	mob := putMob(w, 1, 0, p.ID)

	assert.True(t, InteractWith(w, SourceOf(mob), EntityTarget(p), true))
	assert.Equal(t, 0, p.Health())
	assert.True(t, w.IsWalkable(1, 1))
	assert.Nil(t, w.Occupant(1, 1))
}

func TestTileTarget_Build(t *testing.T) {
	t.Run("wood block on empty grass", func(t *testing.T) {
		w := createTestIsland(t, 20, 20)
		p := putPlayer(w, 10, 10)
		w.Turn(p, domain.South)

		assert.True(t, PlayerBuild(w, p, enums.ResourceWood))

		block := w.Occupant(10, 11)
		if assert.NotNil(t, block) {
			assert.Equal(t, enums.EntityKindWoodBlock, block.Kind)
			assert.Equal(t, domain.WoodBlockHealth, block.Health())
		}
		assert.False(t, w.IsWalkable(10, 11))
		assert.Equal(t, domain.StartWood-1, p.Inventory.Count(enums.ResourceWood))
		assert.Equal(t, domain.StartStone, p.Inventory.Count(enums.ResourceStone))
	})

	t.Run("stone block", func(t *testing.T) {
		w := createTestIsland(t, 5, 5)
		p := putPlayer(w, 2, 2)

		assert.True(t, PlayerBuild(w, p, enums.ResourceStone))
		assert.Equal(t, enums.EntityKindStoneBlock, w.Occupant(2, 3).Kind)
		assert.Equal(t, domain.StartStone-1, p.Inventory.Count(enums.ResourceStone))
	})

	t.Run("water is refused", func(t *testing.T) {
		w := islandWith(t, 5, 5, map[[2]int]enums.TileType{{2, 3}: enums.TileWater})
		p := putPlayer(w, 2, 2)

		assert.False(t, PlayerBuild(w, p, enums.ResourceWood))
		assert.Equal(t, domain.StartWood, p.Inventory.Count(enums.ResourceWood))
	})

	t.Run("occupied tile is refused", func(t *testing.T) {
		w := createTestIsland(t, 5, 5)
		p := putPlayer(w, 2, 2)
		putTemplate(w, islandgen.TreeTemplate, 2, 3)

		assert.False(t, PlayerBuild(w, p, enums.ResourceWood))
		assert.Equal(t, domain.StartWood, p.Inventory.Count(enums.ResourceWood))
	})

	t.Run("no resources", func(t *testing.T) {
		w := createTestIsland(t, 5, 5)
		p := putPlayer(w, 2, 2)
		p.Inventory.Remove(domain.Resource(enums.ResourceStone, domain.StartStone))

		assert.False(t, PlayerBuild(w, p, enums.ResourceStone))
		assert.Nil(t, w.Occupant(2, 3))
	})

	t.Run("out of bounds", func(t *testing.T) {
		w := createTestIsland(t, 5, 5)
		p := putPlayer(w, 2, 4)

		assert.False(t, PlayerBuild(w, p, enums.ResourceWood))
	})

	t.Run("only the player builds", func(t *testing.T) {
		w := createTestIsland(t, 5, 5)
		m := putMob(w, 2, 2, types.NilEntityID)

		assert.False(t, InteractWith(w, SourceOf(m), TileTarget(2, 3), true))
		assert.Nil(t, w.Occupant(2, 3))
	})
}
