package circle

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCircle(t *testing.T) {
	c := NewCircle(3, -4, 2.5)
	if diff := cmp.Diff(Point{X: 3, Y: -4}, c.Center()); diff != "" {
		t.Errorf("Center() mismatch (-want +got):\n%s", diff)
	}
	if got := c.Radius(); got != 2.5 {
		t.Errorf("Radius() = %v, want 2.5", got)
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		want   float64
	}{
		{
			name:   "radius 5",
			radius: 5,
			want:   78.53975,
		},
		{
			name:   "radius 0",
			radius: 0,
			want:   0,
		},
		{
			name:   "negative radius squares to positive area",
			radius: -5,
			want:   78.53975,
		},
		{
			name:   "radius 1 yields the literal constant",
			radius: 1,
			want:   3.14159,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCircle(0, 0, tt.radius).Area()
			if got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAreaDoesNotUseMathPi(t *testing.T) {
	got := NewCircle(0, 0, 1).Area()
	if got == math.Pi {
		t.Errorf("Area() = math.Pi, want the 3.14159 approximation")
	}
}

func TestPrintCircleInfo(t *testing.T) {
	tests := []struct {
		name   string
		circle Circle
		want   string
	}{
		{
			name:   "radius 5",
			circle: NewCircle(0, 0, 5),
			want:   "Circle area: 78.53975\n",
		},
		{
			name:   "radius 0",
			circle: NewCircle(1, 1, 0),
			want:   "Circle area: 0\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintCircleInfo(&buf, tt.circle)
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("PrintCircleInfo() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	RunDemo(&buf)
	if diff := cmp.Diff("Circle area: 78.53975\n", buf.String()); diff != "" {
		t.Errorf("RunDemo() mismatch (-want +got):\n%s", diff)
	}
}
