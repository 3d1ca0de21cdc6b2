package person

import (
	"fmt"
	"io"
)

// Person は名前・年齢・身長を持つレコード
type Person struct {
	Name   string
	Age    int
	Height float64
}

// PrintPerson はPersonの各フィールドを1行ずつ書き出す
// 値渡しなので呼び出し元のPersonには影響しない
func PrintPerson(w io.Writer, p Person) {
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Age: %d\n", p.Age)
	fmt.Fprintf(w, "Height: %.2f\n", p.Height)
}

// UpdateAge はポインタ経由でAgeを上書きする
// 値の検証は行わない（負の年齢もそのまま受け付ける）
func UpdateAge(p *Person, newAge int) {
	p.Age = newAge
}

// RunDemo は初期状態の表示、年齢の更新、更新後の表示を順に行う
func RunDemo(w io.Writer) {
	person1 := Person{
		Name:   "John Doe",
		Age:    30,
		Height: 1.75,
	}

	fmt.Fprintln(w, "Initial details:")
	PrintPerson(w, person1)

	UpdateAge(&person1, 31)

	fmt.Fprintln(w, "\nAfter updating age:")
	PrintPerson(w, person1)
}
