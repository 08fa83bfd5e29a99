package types

import (
	"fmt"
	"strconv"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// EntityID - 64-битный хэндл сущности в арене острова.
//
// Тайлы и ссылки между сущностями хранят только EntityID, а не указатели:
// владельцем сущностей является остров. Устаревший хэндл (сущность удалена,
// слот переиспользован) безопасно не разрешается.
//
// Формат битов (от старших к младшим):
//
//	[ Epoch (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Epoch - номер сессии острова (сброс игры увеличивает эпоху)
//   - Kind - вид сущности (enums.EntityKind)
//   - Generation - версия слота арены
//   - Index - индекс слота в арене
type EntityID uint64

// NilEntityID - отсутствие сущности (пустой тайл, нет цели).
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 16
	bitsKind  = 8
	bitsEpoch = 8

	shiftGen   = bitsIndex
	shiftKind  = bitsIndex + bitsGen
	shiftEpoch = bitsIndex + bitsGen + bitsKind

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
	maskEpoch = (1 << bitsEpoch) - 1
)

// PackEntityID собирает хэндл из составных частей.
// Диапазоны не проверяются: лишние биты отрезаются масками.
func PackEntityID(epoch uint8, kind enums.EntityKind, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(epoch) << shiftEpoch) |
			(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота в арене.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид сущности, закодированный в хэндле.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// Epoch возвращает номер сессии, в которой выдан хэндл.
func (id EntityID) Epoch() uint8 {
	return uint8((id >> shiftEpoch) & maskEpoch)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// BelongsTo проверяет, выдан ли хэндл островом с данной эпохой.
func (id EntityID) BelongsTo(epoch uint8) bool {
	return !id.IsNil() && id.Epoch() == epoch
}

// String - для логов и отладки.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf("%s#%d.%d@%d", id.Kind(), id.Index(), id.Generation(), id.Epoch())
}

// MarshalJSON пишет хэндл строкой: JavaScript-клиент теряет точность на uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("entity id %q: %w", s, err)
	}

	*id = EntityID(v)
	return nil
}
