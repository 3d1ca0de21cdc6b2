package shapes

type Rectangle struct {
	Width  float64
	Height float64
}

func NewRectangle(w, h float64) Rectangle {
	return Rectangle{Width: w, Height: h}
}
