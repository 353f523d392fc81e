package features

import (
	"slices"
	"strings"
)

func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		out = append(out, f(v))
	}
	return out
}

func Filter[T any](s []T, pred func(T) bool) []T {
	var out []T
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func Reduce[T, A any](s []T, f func(A, T) A, initial A) A {
	acc := initial
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Some は pred を満たす要素が1つでもあれば true を返します。
func Some[T any](s []T, pred func(T) bool) bool {
	return slices.ContainsFunc(s, pred)
}

// Every はすべての要素が pred を満たせば true を返します。空なら true です。
func Every[T any](s []T, pred func(T) bool) bool {
	return !slices.ContainsFunc(s, func(v T) bool { return !pred(v) })
}

// Prices は高階関数の練習用の価格です。
func Prices() []float64 {
	return []float64{10, 23, 15, 40, 8}
}

// DiscountedExpensiveTotal は 20 より高い商品に 10% 割引を適用した合計を返します。
func DiscountedExpensiveTotal(prices []float64) float64 {
	expensive := Filter(prices, func(p float64) bool { return p > 20 })
	discounted := Map(expensive, func(p float64) float64 { return p * 0.9 })
	return Reduce(discounted, func(total, p float64) float64 { return total + p }, 0)
}

// MessyPeople は家事に "mess" を含む人を順番どおりに返します。
func MessyPeople(chores []Chore) []Chore {
	return Filter(chores, func(c Chore) bool { return strings.Contains(c.Task, "mess") })
}
