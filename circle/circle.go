package circle

import (
	"fmt"
	"io"
)

// 円周率は近似値のリテラルで固定する（math.Piとは出力が一致しない）
const pi = 3.14159

// Point は整数座標の点
type Point struct {
	X int
	Y int
}

// Circle は中心と半径を持つ円
type Circle struct {
	center Point
	radius float64
}

// NewCircle は中心座標と半径からCircleを生成する
// 半径の検証は行わない
func NewCircle(x, y int, r float64) Circle {
	return Circle{
		center: Point{X: x, Y: y},
		radius: r,
	}
}

// Center は中心座標を返す
func (c Circle) Center() Point {
	return c.center
}

// Radius は半径を返す
func (c Circle) Radius() float64 {
	return c.radius
}

// Area は面積を都度計算して返す
// 半径を二乗するため、負の半径でも正の面積になる
func (c Circle) Area() float64 {
	return pi * c.radius * c.radius
}

// PrintCircleInfo は面積を1行で書き出す
func PrintCircleInfo(w io.Writer, c Circle) {
	fmt.Fprintln(w, "Circle area:", c.Area())
}

// RunDemo は原点中心・半径5の円の面積を表示する
func RunDemo(w io.Writer) {
	myCircle := NewCircle(0, 0, 5)
	PrintCircleInfo(w, myCircle)
}
