package domain

import "math"

// Vector - неизменяемая точка/смещение в единицах клеток.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// CellVector - вектор левого верхнего угла клетки (x, y).
func CellVector(x, y int) Vector {
	return Vector{X: float64(x), Y: float64(y)}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Cell возвращает координаты клетки, в которой лежит точка.
func (v Vector) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// ManhattanTo - манхэттенское расстояние в клетках.
func (v Vector) ManhattanTo(o Vector) float64 {
	return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y)
}

// IsOrthogonallyAdjacent - соседние клетки в одной строке или столбце (без диагоналей).
func (v Vector) IsOrthogonallyAdjacent(o Vector) bool {
	ax, ay := v.Cell()
	bx, by := o.Cell()
	dx, dy := ax-bx, ay-by
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Orientation - одно из четырёх направлений.
type Orientation uint8

const (
	OrientationNone Orientation = iota
	North
	East
	South
	West
)

// Orientations - фиксированный порядок перебора соседей (BFS, случайный шаг).
var Orientations = [4]Orientation{North, East, South, West}

var orientationVectors = map[Orientation]Vector{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var orientationToString = map[Orientation]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// Vector возвращает единичный вектор направления. Для OrientationNone - нулевой.
func (o Orientation) Vector() Vector {
	return orientationVectors[o]
}

// Delta - то же смещение в целых клетках.
func (o Orientation) Delta() (int, int) {
	v := orientationVectors[o]
	return int(v.X), int(v.Y)
}

func (o Orientation) String() string {
	if s, ok := orientationToString[o]; ok {
		return s
	}
	return "NONE"
}

// Opposite возвращает противоположное направление.
func (o Orientation) Opposite() Orientation {
	switch o {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return OrientationNone
}

// OrientationFromVector переводит единичный осевой вектор в направление.
// Диагональные, нулевые и неединичные векторы дают (OrientationNone, false).
func OrientationFromVector(v Vector) (Orientation, bool) {
	for _, o := range Orientations {
		if orientationVectors[o] == v {
			return o, true
		}
	}
	return OrientationNone, false
}

// MarshalText - направление в JSON пишется строкой ("NORTH").
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	*o = OrientationNone
	for k, v := range orientationToString {
		if v == string(text) {
			*o = k
		}
	}
	return nil
}
