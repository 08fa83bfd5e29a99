package domain

import "math/rand"

// spawnAttempts - сколько случайных проб делается до перехода на полный перебор.
const spawnAttempts = 64

// RandomSpawnCell выбирает случайную пустую проходимую клетку внутри рамки.
// Сначала ограниченное число равномерных проб, затем равномерный выбор
// из списка всех подходящих клеток. false - подходящих клеток нет.
func (w *Island) RandomSpawnCell(rng *rand.Rand) (int, int, bool) {
	minX, minY := w.border, w.border
	spanX, spanY := w.width-2*w.border, w.height-2*w.border
	if spanX <= 0 || spanY <= 0 {
		return 0, 0, false
	}

	for i := 0; i < spawnAttempts; i++ {
		x := minX + rng.Intn(spanX)
		y := minY + rng.Intn(spanY)
		if w.spawnable(x, y) {
			return x, y, true
		}
	}

	candidates := w.SpawnableCells()
	if len(candidates) == 0 {
		return 0, 0, false
	}
	c := candidates[rng.Intn(len(candidates))]
	return c[0], c[1], true
}

// SpawnableCells - все пустые проходимые клетки внутри рамки, построчно.
func (w *Island) SpawnableCells() [][2]int {
	out := make([][2]int, 0, 64)
	for y := w.border; y < w.height-w.border; y++ {
		for x := w.border; x < w.width-w.border; x++ {
			if w.spawnable(x, y) {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func (w *Island) spawnable(x, y int) bool {
	t := w.tileAt(x, y)
	return t.IsWalkable() && t.IsEmpty()
}
