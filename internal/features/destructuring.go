package features

import "fmt"

// Chore は家族の誰かと、その人の家事です。
type Chore struct {
	Person string
	Task   string
}

// FamilyChores は挿入順を保った家事一覧を返します。
func FamilyChores() []Chore {
	return []Chore{
		{"dad", "tidy the living rooom"},
		{"mum", "change the baby"},
		{"child1", "mess the house"},
		{"child2", "make more mess"},
		{"baby", "poop"},
	}
}

// ChoreOf は person の家事を返します。見つからなければ def を返します (デフォルト値付きの取り出し)。
func ChoreOf(chores []Chore, person, def string) string {
	for _, c := range chores {
		if c.Person == person {
			return c.Task
		}
	}
	return def
}

// Colors は3つの値を同時に返します。呼び出し側は不要な値を _ で捨てられます。
func Colors() (first, second, third string) {
	return "red", "green", "blue"
}

type Person struct {
	Name string
	Age  int
	Job  string
}

type UserDetails struct {
	FirstName string
	LastName  string
}

type User struct {
	ID      int
	Details UserDetails
}

// DisplayUser は引数の構造体から必要なフィールドだけを使います。
func DisplayUser(p Person) string {
	return fmt.Sprintf("Name: %s, Age: %d", p.Name, p.Age)
}

// FullName はネストしたフィールドを取り出します。
func FullName(u User) string {
	details := u.Details
	return details.FirstName + " " + details.LastName
}

// Lookup は m から key の値を取り出し、なければ def を返します。
func Lookup[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
