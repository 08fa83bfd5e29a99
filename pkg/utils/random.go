package utils

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// NewSessionID создаёт идентификатор игровой сессии (и ключ подписчика).
func NewSessionID() string {
	return uuid.NewString()
}

// DeriveSeed выводит независимый сид из мастер-сида и метки
// ("session", "wave" и т.п.) и порядкового номера.
// Одинаковые аргументы всегда дают одинаковый сид.
func DeriveSeed(master int64, label string, n int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(master))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(label)
	return int64(d.Sum64() & 0x7FFFFFFFFFFFFFFF)
}

// NewRand - детерминированный генератор для производного сида.
func NewRand(master int64, label string, n int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(master, label, n)))
}
