package power

import (
	"fmt"
	"math"

	"evident/domain/core"
)

const (
	rootXTol    = 2e-12
	rootRTol    = 8.881784197001252e-16
	rootMaxIter = 200
)

// brentRoot finds a zero of f in [a, b] by Brent's method. f(a) and f(b)
// must have opposite signs (or one of them be zero).
func brentRoot(f func(float64) float64, a, b float64) (float64, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, fmt.Errorf("%w: no sign change in [%g, %g]", core.ErrNoSolution, a, b)
	}

	c, fc := a, fa
	d := b - a
	e := d
	for iter := 0; iter < rootMaxIter; iter++ {
		if math.Signbit(fb) == math.Signbit(fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*rootRTol*math.Abs(b) + 0.5*rootXTol
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				// secant
				p = 2 * m * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				qa := fa / fc
				r := fb / fc
				p = s * (2*m*qa*(qa-r) - (b-a)*(r-1))
				q = (qa - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		} else {
			d = m
			e = m
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
	}
	return 0, fmt.Errorf("%w: root search did not converge", core.ErrNoSolution)
}
