package fixedvec

import "github.com/hupe1980/fixedvec/internal/kernel"

// Number is the set of element types a Vector can hold.
type Number = kernel.Number

// Dim fixes the dimension of a Vector at the type level.
// Implementations are zero-size types whose Len returns a constant.
type Dim interface {
	Len() int
}

// Predefined dimensions.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D8  struct{}
	D16 struct{}
)

func (D1) Len() int  { return 1 }
func (D2) Len() int  { return 2 }
func (D3) Len() int  { return 3 }
func (D4) Len() int  { return 4 }
func (D8) Len() int  { return 8 }
func (D16) Len() int { return 16 }

// dimOf returns N for the dimension type D.
func dimOf[D Dim]() int {
	var d D
	return d.Len()
}
