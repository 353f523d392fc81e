// Package features は言語機能 (クロージャ、分割代入、スプレッド、テンプレート、高階関数) の練習用コードです。
// 各関数は結果を返すだけで、出力は cmd/features が行います。
package features

import "fmt"

// NewCounter は呼ぶたびに 1, 2, 3... を返す関数を作成します。
func NewCounter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

// NewGreeter は greeting を覚えた挨拶関数を作成します。
func NewGreeter(greeting string) func(name string) string {
	return func(name string) string {
		return fmt.Sprintf("%s, %s!", greeting, name)
	}
}

// BankAccount は残高を外から直接触れないクロージャの組です。
type BankAccount struct {
	Deposit    func(amount int) string
	Withdraw   func(amount int) string
	GetBalance func() string
}

// NewBankAccount は initialBalance から始まる口座を作成します。
func NewBankAccount(initialBalance int) BankAccount {
	balance := initialBalance

	return BankAccount{
		Deposit: func(amount int) string {
			balance += amount
			return fmt.Sprintf("Deposited %d. New balance: %d", amount, balance)
		},
		Withdraw: func(amount int) string {
			if amount > balance {
				return "Insufficient funds"
			}
			balance -= amount
			return fmt.Sprintf("Withdrew %d. New balance: %d", amount, balance)
		},
		GetBalance: func() string {
			return fmt.Sprintf("Current balance: %d", balance)
		},
	}
}

// NewSleepTracker は昼寝の合計時間を積み上げる関数を作成します。
func NewSleepTracker() func(hours int) string {
	totalSleep := 0
	return func(hours int) string {
		totalSleep += hours
		return fmt.Sprintf("😴 Baby slept for %d hours. Baby has slept a total of %d hours", hours, totalSleep)
	}
}

// NapMessage は単一式の関数 (アロー関数相当) の例です。
func NapMessage(hours int) string {
	return fmt.Sprintf("😴 Baby napped for %d hour(s)", hours)
}
