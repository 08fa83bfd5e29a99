package systems

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// UpdateMob - один тик моба. Пока цель мертва (или исчезла), моб стоит на месте
// и его таймер не идёт. Когда таймер истёк:
//   - цель рядом по строке или столбцу: повернуться к ней, а если уже смотрит - ударить;
//   - иначе шаг по кратчайшему пути к клетке рядом с целью;
//   - пути нет - шаг в случайную проходимую сторону.
func UpdateMob(w *domain.Island, mob *domain.Entity, dt time.Duration, rng *rand.Rand) {
	a := mob.Actor
	if a == nil || mob.IsDead() {
		return
	}

	target := w.Entity(a.Target)
	if target == nil || target.IsDead() {
		return
	}

	a.Move.Tick(dt)
	if !a.Move.Ready() {
		return
	}
	defer a.Wait()

	mx, my := mob.Cell()
	tx, ty := target.Cell()

	if face, ok := faceToward(tx-mx, ty-my); ok {
		if a.Orientation != face {
			Move(w, mob, face)
			return
		}
		// бьём того, кто стоит на клетке цели, если это игрок
		if occ := w.Occupant(tx, ty); occ != nil && occ.Kind == enums.EntityKindPlayer {
			InteractWith(w, SourceOf(mob), EntityTarget(occ), true)
		}
		return
	}

	if step, ok := PathStep(w, mx, my, tx, ty); ok {
		Move(w, mob, step)
		return
	}

	if step, ok := RandomStep(w, mx, my, rng); ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"mob":       mob.ID.String(),
			"step":      step.String(),
		}).Debug("No path to target, wandering.")
		Move(w, mob, step)
	}
}

// faceToward - направление на соседнюю по строке или столбцу клетку.
func faceToward(dx, dy int) (domain.Orientation, bool) {
	return domain.OrientationFromVector(domain.Vec(float64(dx), float64(dy)))
}

// PathStep ищет в ширину кратчайший путь по проходимым клеткам от (sx,sy)
// до любой клетки, соседней с (tx,ty) по строке или столбцу, и возвращает
// направление первого шага. Соседи обходятся в порядке North, East, South, West,
// клетка помечается при постановке в очередь.
func PathStep(w *domain.Island, sx, sy, tx, ty int) (domain.Orientation, bool) {
	if !w.InBounds(sx, sy) {
		return domain.OrientationNone, false
	}

	width := w.Width()
	idx := func(x, y int) int { return y*width + x }

	// parent[i] - индекс клетки, из которой пришли; -1 - не посещена
	parent := make([]int, width*w.Height())
	for i := range parent {
		parent[i] = -1
	}

	start := idx(sx, sy)
	parent[start] = start
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cx, cy := cur%width, cur/width

		if cur != start && isAdjacent(cx, cy, tx, ty) {
			// откручиваем путь до первого шага
			for parent[cur] != start {
				cur = parent[cur]
			}
			return faceToward(cur%width-sx, cur/width-sy)
		}

		for _, o := range domain.Orientations {
			dx, dy := o.Delta()
			nx, ny := cx+dx, cy+dy
			if !w.IsWalkable(nx, ny) {
				continue
			}
			n := idx(nx, ny)
			if parent[n] != -1 {
				continue
			}
			parent[n] = cur
			queue = append(queue, n)
		}
	}

	return domain.OrientationNone, false
}

// RandomStep выбирает равновероятно одну из проходимых соседних клеток.
func RandomStep(w *domain.Island, x, y int, rng *rand.Rand) (domain.Orientation, bool) {
	options := make([]domain.Orientation, 0, len(domain.Orientations))
	for _, o := range domain.Orientations {
		dx, dy := o.Delta()
		if w.IsWalkable(x+dx, y+dy) {
			options = append(options, o)
		}
	}

	if len(options) == 0 {
		return domain.OrientationNone, false
	}
	return options[rng.Intn(len(options))], true
}

func isAdjacent(ax, ay, bx, by int) bool {
	dx, dy := ax-bx, ay-by
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}
