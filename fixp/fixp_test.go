package fixp

import "testing"

func TestMulIdentity(t *testing.T) {
	if got := Mul(One, One); got != One {
		t.Fatalf("1*1 = %d, want %d", got, One)
	}
	if got := Mul(One, -One); got != -One {
		t.Fatalf("1*-1 = %d, want %d", got, -One)
	}
}

func TestMulFractions(t *testing.T) {
	half := One >> 1
	quarter := One >> 2
	if got := Mul(half, half); got != quarter {
		t.Fatalf("0.5*0.5 = %d, want %d", got, quarter)
	}

	three := FromFloat(3.0)
	if got := Mul(FromFloat(1.5), FromFloat(2.0)); got != three {
		t.Fatalf("1.5*2 = %d, want %d", got, three)
	}
}

func TestMulTruncates(t *testing.T) {
	// The smallest positive value squared underflows to zero rather than
	// rounding up.
	eps := Val(1)
	if got := Mul(eps, eps); got != 0 {
		t.Fatalf("eps*eps = %d, want 0", got)
	}
}

func TestAddSub(t *testing.T) {
	a := FromFloat(2.25)
	b := FromFloat(0.75)
	if got := Add(a, b); got != FromFloat(3.0) {
		t.Fatalf("2.25+0.75 = %d", got)
	}
	if got := Sub(a, b); got != FromFloat(1.5) {
		t.Fatalf("2.25-0.75 = %d", got)
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(0.25); got != One>>2 {
		t.Fatalf("FromFloat(0.25) = %d, want %d", got, One>>2)
	}
	if got := FromFloat(-1.0); got != -One {
		t.Fatalf("FromFloat(-1) = %d, want %d", got, -One)
	}
	if got := FromFloat(4.0); got != Four {
		t.Fatalf("FromFloat(4) = %d, want %d", got, Four)
	}
}
