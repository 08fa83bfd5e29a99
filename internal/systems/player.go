package systems

import (
	"time"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// PlayerMove - намерение идти в направлении o. Первое нажатие в новую сторону
// только поворачивает, следующее - делает шаг. Ждёт кулдаун шага.
// Возвращает true, если намерение принято (поворот или попытка шага).
func PlayerMove(w *domain.Island, p *domain.Entity, o domain.Orientation) bool {
	a := p.Actor
	if a == nil || p.IsDead() || o == domain.OrientationNone {
		return false
	}
	if !a.Move.Ready() {
		return false
	}

	if a.Orientation != o {
		w.Turn(p, o)
		return true
	}

	Move(w, p, o)
	a.Wait()
	if p.Player != nil {
		p.Player.Walking = true
	}
	return true
}

// PlayerMelee - удар мечом из кармана, без меча - кулаком.
// Запускает анимацию удара и откладывает следующий шаг.
func PlayerMelee(w *domain.Island, p *domain.Entity) bool {
	if p.Actor == nil || p.IsDead() {
		return false
	}

	var hit bool
	if sword, ok := pocketOf(p, enums.ItemKindSword); ok {
		hit = UseSword(w, p, sword)
	} else {
		hit = punch(w, p)
	}

	if p.Player != nil {
		p.Player.Slash.Reset()
	}
	p.Actor.Wait()
	return hit
}

// punch бьёт обитателя клетки впереди голыми руками.
func punch(w *domain.Island, p *domain.Entity) bool {
	tx, ty := p.Ahead().Cell()
	target := w.Occupant(tx, ty)
	if target == nil {
		return false
	}
	return InteractWith(w, SourceOf(p), EntityTarget(target), true)
}

// PlayerShoot стреляет из пистолета в кармане, если кулдаун выстрела истёк.
// Кулдаун заводится и при пустом магазине.
func PlayerShoot(w *domain.Island, p *domain.Entity, placer BulletPlacer) bool {
	pc := p.Player
	if pc == nil || p.IsDead() || !pc.Shoot.Ready() {
		return false
	}

	gun, ok := pocketOf(p, enums.ItemKindGun)
	if !ok {
		return false
	}

	fired := UseGun(w, p, gun, placer)
	pc.Shoot.Reset()
	return fired
}

// PlayerBuild строит блок на клетке перед игроком: WOOD - деревянный,
// иначе каменный.
func PlayerBuild(w *domain.Island, p *domain.Entity, rt enums.ResourceType) bool {
	if p.Actor == nil || p.IsDead() {
		return false
	}

	tx, ty := p.Ahead().Cell()
	built := InteractWith(w, SourceOf(p), TileTarget(tx, ty), rt == enums.ResourceWood)
	p.Actor.Wait()
	return built
}

// UpdatePlayer - таймеры игрока и его анимационное состояние.
func UpdatePlayer(w *domain.Island, p *domain.Entity, dt time.Duration) {
	a, pc := p.Actor, p.Player
	if a == nil || pc == nil || p.IsDead() {
		return
	}

	a.Move.Tick(dt)
	pc.Shoot.Tick(dt)
	pc.Slash.Tick(dt)
	if pc.Slash.Remaining < 0 {
		pc.Slash.Remaining = 0
	}

	switch {
	case !pc.Slash.Ready():
		a.State = enums.ActorStateSlash
	case pc.Walking:
		a.State = enums.ActorStateWalk
	default:
		a.State = enums.ActorStateIdle
	}
	pc.Walking = false
}

func pocketOf(p *domain.Entity, kind enums.ItemKind) (domain.Item, bool) {
	if p.Inventory == nil {
		return domain.Item{}, false
	}
	return p.Inventory.PocketOf(kind)
}
