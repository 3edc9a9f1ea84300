package common

// Window layout in logical pixels.
const (
	BaseWidth  = 1040
	BaseHeight = 700
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
