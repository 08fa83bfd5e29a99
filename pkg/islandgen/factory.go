package islandgen

import (
	"fmt"
	"math/rand"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// CreatePlayer создаёт игрока со стартовым снаряжением:
// патроны, дерево, камень, меч в первом кармане и пистолет во втором.
func CreatePlayer(pos domain.Vector) *domain.Entity {
	p := PlayerTemplate.SpawnEntity(pos)

	p.Player = &domain.PlayerComponent{
		Shoot: domain.NewCooldown(domain.PlayerShootCooldown),
		Slash: domain.NewCooldown(domain.PlayerAttackDuration),
	}

	sword := domain.Sword(domain.SwordDamage)
	gun := domain.Gun(domain.GunDamage)

	p.Inventory = domain.NewInventory()
	p.Inventory.Add(domain.Resource(enums.ResourceAmmo, domain.StartAmmo))
	p.Inventory.Add(domain.Resource(enums.ResourceWood, domain.StartWood))
	p.Inventory.Add(domain.Resource(enums.ResourceStone, domain.StartStone))
	p.Inventory.Add(sword)
	p.Inventory.Add(gun)

	mustPocket(p.Inventory, 0, sword)
	mustPocket(p.Inventory, 1, gun)

	return p
}

// оружие только что положено в инвентарь, ошибка здесь - баг
func mustPocket(inv *domain.Inventory, index int, item domain.Item) {
	if err := inv.SetPocket(index, item); err != nil {
		panic(fmt.Sprintf("starting gear: %v", err))
	}
}

// CreateMob создаёт моба, преследующего target.
func CreateMob(pos domain.Vector, target types.EntityID) *domain.Entity {
	m := MobTemplate.SpawnEntity(pos)
	m.Actor.Target = target
	return m
}

// CreateBullet создаёт пулю, летящую в направлении o.
func CreateBullet(pos domain.Vector, o domain.Orientation, damage int, owner types.EntityID) *domain.Entity {
	b := BulletTemplate.SpawnEntity(pos)
	b.Projectile.Orientation = o
	b.Projectile.Damage = damage
	b.Projectile.Owner = owner
	return b
}

// CreateBlock создаёт строительный блок: дерево даёт деревянный, всё остальное - каменный.
func CreateBlock(rt enums.ResourceType, pos domain.Vector) *domain.Entity {
	if rt == enums.ResourceWood {
		return WoodBlockTemplate.SpawnEntity(pos)
	}
	return StoneBlockTemplate.SpawnEntity(pos)
}

// CreateResource создаёт дерево с вероятностью TreeSpawnChance, иначе камень.
func CreateResource(rng *rand.Rand, pos domain.Vector) *domain.Entity {
	if rng.Float64() < domain.TreeSpawnChance {
		return TreeTemplate.SpawnEntity(pos)
	}
	return RockTemplate.SpawnEntity(pos)
}
