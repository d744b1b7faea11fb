package sidh

import (
	"errors"
	"fmt"
)

// ErrInvalidStrategy is returned when a strategy array entry is out of
// the valid range (0, height) for the stack element it would split, or
// when the array's length does not match e3-1.
var ErrInvalidStrategy = errors.New("sidh: invalid strategy array")

// ThreePowerChainWithStrategy walks a 3^e3-isogeny chain from curve
// (AplusAminus encoding) with kernel generator g of order 3^e3, applying
// the resulting isogeny to the three carry points along the way. strategy
// must have length e3-1 and encodes a depth-first traversal of the binary
// isogeny tree: each internal step says "triple k times, then recurse
// left before right".
//
// On success it returns the codomain curve and the images of the three
// carries. On a strategy violation or stack exhaustion it returns an
// error and no partial codomain.
func (f *Field) ThreePowerChainWithStrategy(curve CurveAplusAminus, g Point, carries [3]Point, e3 int, strategy []int) (CurveAplusAminus, [3]Point, error) {
	if len(strategy) != e3-1 {
		return CurveAplusAminus{}, carries, fmt.Errorf("%w: length %d, want %d", ErrInvalidStrategy, len(strategy), e3-1)
	}

	st := newStack(e3 + 2)
	if err := st.push(stackElem{height: e3, point: g}); err != nil {
		return CurveAplusAminus{}, carries, err
	}

	result := curve
	out := carries
	i := 0

	for !st.isEmpty() {
		elem, err := st.pop()
		if err != nil {
			return CurveAplusAminus{}, carries, err
		}

		switch {
		case elem.height == 1:
			iso, codomain := f.NewIsogeny3(elem.point)
			result = codomain
			for idx := range st.items {
				st.items[idx].point = iso.Evaluate(f, st.items[idx].point)
				st.items[idx].height--
			}
			for k := range out {
				out[k] = iso.Evaluate(f, out[k])
			}

		case i < len(strategy) && strategy[i] > 0 && strategy[i] < elem.height:
			k := strategy[i]
			i++
			if err := st.push(elem); err != nil {
				return CurveAplusAminus{}, carries, err
			}
			tripled := f.XTPLe(elem.point, result, k)
			if err := st.push(stackElem{height: elem.height - k, point: tripled}); err != nil {
				return CurveAplusAminus{}, carries, err
			}

		default:
			return CurveAplusAminus{}, carries, ErrInvalidStrategy
		}
	}

	return result, out, nil
}
