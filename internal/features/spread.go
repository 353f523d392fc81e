package features

import (
	"maps"
	"slices"
)

// Concat は複数のスライスを1つにまとめた新しいスライスを返します。
func Concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Copy は s の浅いコピーを返します。
func Copy[T any](s []T) []T {
	return slices.Clone(s)
}

// Merge は後ろの map ほど優先して合成した新しい map を返します。引数は変更しません。
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// Omit は key を除いた残りの map と、key の値を返します。
func Omit[K comparable, V any](m map[K]V, key K) (V, map[K]V) {
	rest := maps.Clone(m)
	if rest == nil {
		rest = make(map[K]V)
	}
	v := rest[key]
	delete(rest, key)
	return v, rest
}

// HeadTail は先頭の要素と残りを返します。空の場合はゼロ値と nil を返します。
func HeadTail[T any](s []T) (T, []T) {
	var zero T
	if len(s) == 0 {
		return zero, nil
	}
	return s[0], Copy(s[1:])
}

// Sum は可変長引数の合計を返します。
func Sum(numbers ...int) int {
	return Reduce(numbers, func(total, n int) int { return total + n }, 0)
}

// FamilyFeast は3つの献立をまとめます。
func FamilyFeast() []string {
	myFood := []string{"burger", "chips"}
	childrenFood := []string{"skittles", "ice cream"}
	babyFood := []string{"milk"}
	return Concat(myFood, childrenFood, babyFood)
}
