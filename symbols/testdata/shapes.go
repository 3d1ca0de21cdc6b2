package shapes

type Shape interface {
	Area() float64
}

type Rectangle struct {
	Width  float64
	Height float64
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

func NewRectangle(w, h float64) Rectangle {
	return Rectangle{Width: w, Height: h}
}
