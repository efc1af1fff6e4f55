// Package builder provides internal helper functions and types
// for configuring junction naming in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a junction name from its zero-based index.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// JunctionIDFn returns "J<idx>", the naming used for unnamed junctions in
// network files: 0→"J0", 12→"J12".
// Never panics.
func JunctionIDFn(idx int) string {
	return "J" + strconv.Itoa(idx)
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix+idx, e.g. PrefixIDFn("Stop ")(3) = "Stop 3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
