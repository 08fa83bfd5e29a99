package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

func TestInventory_AddMergesResources(t *testing.T) {
	inv := NewInventory()
	inv.Add(Resource(enums.ResourceWood, 5))
	inv.Add(Resource(enums.ResourceStone, 2))
	inv.Add(Resource(enums.ResourceWood, 3))
	inv.Add(Resource(enums.ResourceGold, 0))

	assert.Equal(t, 8, inv.Count(enums.ResourceWood))
	assert.Equal(t, 2, inv.Count(enums.ResourceStone))
	assert.Equal(t, 0, inv.Count(enums.ResourceGold))
	assert.Len(t, inv.Items(), 2)
}

func TestInventory_WeaponsAreSingletons(t *testing.T) {
	inv := NewInventory()
	inv.Add(Sword(SwordDamage))
	inv.Add(Sword(99))
	inv.Add(Item{Kind: enums.ItemKindGun, Quantity: 7, Damage: GunDamage})

	items := inv.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, SwordDamage, items[0].Damage)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestInventory_RemoveDropsEmptyStack(t *testing.T) {
	inv := NewInventory()
	inv.Add(Resource(enums.ResourceAmmo, 2))

	assert.True(t, inv.Remove(Resource(enums.ResourceAmmo, 1)))
	assert.Equal(t, 1, inv.Count(enums.ResourceAmmo))

	assert.True(t, inv.Remove(Resource(enums.ResourceAmmo, 1)))
	assert.False(t, inv.Has(Resource(enums.ResourceAmmo, 0)))
	assert.Empty(t, inv.Items())

	assert.False(t, inv.Remove(Resource(enums.ResourceWood, 1)))
}

func TestInventory_Pockets(t *testing.T) {
	inv := NewInventory()
	inv.Add(Sword(SwordDamage))
	inv.Add(Resource(enums.ResourceWood, 1))

	require.NoError(t, inv.SetPocket(0, Sword(0)))

	item, ok, err := inv.Pocket(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, enums.ItemKindSword, item.Kind)

	_, ok, err = inv.Pocket(1)
	require.NoError(t, err)
	assert.False(t, ok)

	tests := []struct {
		name  string
		index int
		item  Item
		want  error
	}{
		{"negative index", -1, Sword(0), ErrInvalidPocket},
		{"index past end", PocketCount, Sword(0), ErrInvalidPocket},
		{"resource is not usable", 1, Resource(enums.ResourceWood, 1), ErrNotUsable},
		{"gun not owned", 1, Gun(0), ErrNotInInventory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := inv.SetPocket(tt.index, tt.item)
			assert.ErrorIs(t, err, tt.want)
			_, ok, _ := inv.Pocket(1)
			assert.False(t, ok, "rejected call must not mutate pockets")
		})
	}

	_, _, err = inv.Pocket(5)
	assert.ErrorIs(t, err, ErrInvalidPocket)
}

func TestInventory_PocketClearedWithStack(t *testing.T) {
	inv := NewInventory()
	inv.Add(Gun(GunDamage))
	require.NoError(t, inv.SetPocket(1, Gun(0)))

	inv.Remove(Gun(0))

	_, ok, _ := inv.Pocket(1)
	assert.False(t, ok)
	_, ok = inv.PocketOf(enums.ItemKindGun)
	assert.False(t, ok)
}

func TestInventory_NotifiesOwnerIsland(t *testing.T) {
	w := newGrassIsland(t, 3, 3)
	player := NewEntity(enums.EntityKindPlayer, "player", CellVector(1, 1), PlayerMaxHealth)
	player.Inventory = NewInventory()
	w.Add(player)
	w.DrainEvents()

	player.Inventory.Add(Resource(enums.ResourceWood, 1))
	player.Inventory.Toggle()

	events := w.DrainEvents()
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, EventInventoryChanged, e.Type)
		assert.Equal(t, player.ID, e.Entity)
	}
	assert.True(t, player.Inventory.IsOpen())
}

func TestItem_SameAs(t *testing.T) {
	assert.True(t, Resource(enums.ResourceWood, 1).SameAs(Resource(enums.ResourceWood, 9)))
	assert.False(t, Resource(enums.ResourceWood, 1).SameAs(Resource(enums.ResourceStone, 1)))
	assert.True(t, Sword(1).SameAs(Sword(2)))
	assert.False(t, Sword(1).SameAs(Gun(1)))
	assert.Equal(t, "WOOD x3", Resource(enums.ResourceWood, 3).String())
}
