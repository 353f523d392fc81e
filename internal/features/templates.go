package features

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"text/template"
)

// Introduce は文字列連結と fmt の両方で同じ文を作ります。
func Introduce(name string, age int) (concatenated, formatted string) {
	concatenated = "My name is " + name + " and I am " + fmt.Sprint(age) + " years old."
	formatted = fmt.Sprintf("My name is %s and I am %d years old.", name, age)
	return concatenated, formatted
}

// MultiLine は raw string リテラルで書いた複数行の文字列です。
const MultiLine = `This is line one.
This is line two.
This is line three.`

var adultTmpl = template.Must(template.New("adult").Parse(
	`{{.Name}} is {{if ge .Age 18}}an adult at {{.Age}}{{else}}not an adult{{end}}.`,
))

// DescribeAge は条件分岐を含むテンプレートを実行します。
func DescribeAge(name string, age int) (string, error) {
	var b strings.Builder
	err := adultTmpl.Execute(&b, struct {
		Name string
		Age  int
	}{name, age})
	if err != nil {
		return "", fmt.Errorf("could not render template: %w", err)
	}
	return b.String(), nil
}

// Highlight はタグ付きテンプレートの例です。
// parts[i] の後ろに values[i] を <strong> で囲んで挿入します。ゼロ値の値は挿入しません。
func Highlight(parts []string, values ...any) string {
	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i < len(values) && truthy(values[i]) {
			fmt.Fprintf(&b, "<strong>%v</strong>", values[i])
		}
	}
	return b.String()
}

// truthy はゼロ値と NaN を偽として扱います。
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		if math.IsNaN(rv.Float()) {
			return false
		}
	}
	return !rv.IsZero()
}
