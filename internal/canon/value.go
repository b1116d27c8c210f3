package canon

import (
	"slices"
	"strconv"
	"unicode/utf16"
)

// Value is a canonical JSON value.
type Value interface {
	canonValue()
}

// String is a JSON string.
type String string

// Int is a JSON integer.
type Int int64

// Array is a JSON array.
type Array []Value

// Object is a JSON object. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (String) canonValue() {}
func (Int) canonValue()    {}
func (Array) canonValue()  {}
func (Object) canonValue() {}

// Real encodes v as its shortest round-trip decimal string.
func Real(v float64) String {
	return String(strconv.FormatFloat(v, 'g', -1, 64))
}

// Fixed2 encodes v with two decimals, the precision used in reports.
func Fixed2(v float64) String {
	return String(strconv.FormatFloat(v, 'f', 2, 64))
}

// Strings converts a string slice into an Array of String.
func Strings(ss []string) Array {
	arr := make(Array, len(ss))
	for i, s := range ss {
		arr[i] = String(s)
	}
	return arr
}

// SortedKeys returns the keys of obj ordered by UTF-16 code units.
// This differs from byte order for characters outside the BMP.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
