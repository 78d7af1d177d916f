// SPDX-License-Identifier: MIT

package dual

// Dim fixes the number N of independent variables of a dual type.
//
// Implementations are empty value types whose Len returns a positive
// constant; the dimension is then part of the type, and combining duals of
// different dimensions does not compile:
//
//	type n12 struct{}
//
//	func (n12) Len() int { return 12 }
//
//	x := dual.New[float64, n12](1).Active(11)
type Dim interface {
	Len() int
}

// Predeclared dimensions.
type (
	N1 struct{}
	N2 struct{}
	N3 struct{}
	N4 struct{}
	N5 struct{}
	N6 struct{}
	N7 struct{}
	N8 struct{}
)

func (N1) Len() int { return 1 }
func (N2) Len() int { return 2 }
func (N3) Len() int { return 3 }
func (N4) Len() int { return 4 }
func (N5) Len() int { return 5 }
func (N6) Len() int { return 6 }
func (N7) Len() int { return 7 }
func (N8) Len() int { return 8 }

// dimOf returns N for D, panicking with ErrBadDimension when Len() <= 0.
func dimOf[D Dim]() int {
	var d D
	n := d.Len()
	if n <= 0 {
		preconditionf("Dim", n, ErrBadDimension)
	}

	return n
}
