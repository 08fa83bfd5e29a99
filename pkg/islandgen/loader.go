package islandgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedMap - файл карты не является прямоугольной таблицей известных кодов.
var ErrMalformedMap = errors.New("malformed map")

// ParseGrid читает таблицу целых кодов, разделённых пробелами, по строке на ряд.
// Пустые строки пропускаются.
func ParseGrid(r io.Reader) ([][]int, error) {
	var rows [][]int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a tile code: %w", line, f, ErrMalformedMap)
			}
			row[i] = v
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", line, len(row), len(rows[0]), ErrMalformedMap)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrMalformedMap)
	}
	return rows, nil
}

// LoadGrid читает карту из файла.
func LoadGrid(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return rows, nil
}
