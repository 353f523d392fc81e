// features は internal/features の各例を実行して結果を表示します。
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go-learning-log/internal/features"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	section := func(title string) { fmt.Fprintf(out, "\n== %s ==\n", title) }

	section("Closures")
	counter := features.NewCounter()
	fmt.Fprintln(out, counter(), counter(), counter())
	fmt.Fprintln(out, features.NewGreeter("Hello")("Alice"))
	fmt.Fprintln(out, features.NewGreeter("Bonjour")("Bob"))
	account := features.NewBankAccount(100)
	fmt.Fprintln(out, account.GetBalance())
	fmt.Fprintln(out, account.Deposit(50))
	fmt.Fprintln(out, account.Withdraw(30))
	fmt.Fprintln(out, account.Withdraw(200))
	babySleeps := features.NewSleepTracker()
	fmt.Fprintln(out, babySleeps(2))
	fmt.Fprintln(out, babySleeps(3))
	fmt.Fprintln(out, features.NapMessage(2))

	section("Destructuring")
	chores := features.FamilyChores()
	fmt.Fprintf(out, "Dad needs to %s and child1 wants to %s\n",
		features.ChoreOf(chores, "dad", ""), features.ChoreOf(chores, "child1", ""))
	primary, _, tertiary := features.Colors()
	fmt.Fprintln(out, primary, tertiary)
	person := features.Person{Name: "Alex", Age: 28, Job: "Developer"}
	fmt.Fprintln(out, features.DisplayUser(person))
	fmt.Fprintln(out, features.FullName(features.User{ID: 42, Details: features.UserDetails{FirstName: "Jane", LastName: "Doe"}}))
	fmt.Fprintln(out, features.Lookup(map[string]string{"name": person.Name}, "salary", "Not specified"))

	section("Spread and rest")
	fmt.Fprintln(out, "Tonights family feast includes:", strings.Join(features.FamilyFeast(), ", "))
	fmt.Fprintln(out, features.Merge(map[string]int{"x": 1, "y": 2}, map[string]int{"z": 3}))
	x, rest := features.Omit(map[string]int{"x": 1, "y": 2, "z": 3}, "x")
	fmt.Fprintln(out, x, rest)
	first, remaining := features.HeadTail([]int{1, 2, 3, 4, 5})
	fmt.Fprintln(out, first, remaining)
	fmt.Fprintln(out, features.Sum(1, 2, 3, 4))

	section("Templates")
	_, formatted := features.Introduce("Sarah", 29)
	fmt.Fprintln(out, formatted)
	fmt.Fprintln(out, features.MultiLine)
	adult, err := features.DescribeAge("Sarah", 29)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, adult)
	fmt.Fprintln(out, features.Highlight([]string{"My name is ", " and I am ", " years old."}, "Sarah", 29))

	section("Higher order functions")
	prices := features.Prices()
	fmt.Fprintln(out, features.Map(prices, func(p float64) float64 { return p * 1.2 }))
	fmt.Fprintln(out, features.Filter(prices, func(p float64) bool { return p > 20 }))
	fmt.Fprintln(out, features.Reduce(prices, func(sum, p float64) float64 { return sum + p }, 0))
	fmt.Fprintln(out, features.Some(prices, func(p float64) bool { return p < 10 }))
	fmt.Fprintln(out, features.Every(prices, func(p float64) bool { return p < 50 }))
	fmt.Fprintf(out, "%.1f\n", features.DiscountedExpensiveTotal(prices))
	fmt.Fprintln(out, "All chores:", features.Map(chores, func(c features.Chore) string { return c.Task }))
	fmt.Fprintln(out, "Messy individuals:", features.MessyPeople(chores))

	section("Inventory")
	stock := []struct {
		name  string
		count int
	}{{"nappies", 0}, {"wipes", 120}, {"nappy sacks", 2}, {"coffee", 5}}
	for _, s := range stock {
		item, err := features.ParseInventoryItem(s.name)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, features.StockMessage(item, s.count))
	}
	return nil
}
