// Package fixp implements Q4.28 fixed-point arithmetic: a signed 32-bit
// integer with 4 integer bits and 28 fractional bits.
//
// The kernel does no overflow checking. Operands and results must stay
// within roughly ±8.0; keeping them there is the caller's contract, which
// the mandelbrot inner loop guarantees by escaping at |z|² > 4.
package fixp

// Val is a Q4.28 fixed-point value.
type Val int32

const Shift = 28

const (
	One  Val = 1 << Shift
	Four Val = 4 << Shift
)

// Mul multiplies through a 64-bit intermediate and truncates the fractional
// remainder (arithmetic shift, not rounding).
func Mul(a, b Val) Val {
	return Val(int64(a) * int64(b) >> Shift)
}

func Add(a, b Val) Val { return a + b }

func Sub(a, b Val) Val { return a - b }

// FromFloat converts a real value, truncating toward zero. Init-time
// constants only; never used in the per-pixel path.
func FromFloat(f float64) Val {
	return Val(f * float64(One))
}
