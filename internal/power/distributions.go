package power

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// nctErrMax and nctMaxTerms bound the AS 243 twin series
	nctErrMax   = 1e-12
	nctMaxTerms = 2000

	// ncfRelTolerance stops the noncentral F Poisson mixture once the next
	// term is below this fraction of the running sum (cdflib cumfnc rule).
	ncfRelTolerance = 1e-4
	ncfTiny         = 1e-20
	ncfCentral      = 1e-10
	ncfMaxTerms     = 100000

	sqrt2OverPi = 0.79788456080286535588 // sqrt(2/pi)
	lnSqrtPi    = 0.57236494292470008707 // ln(sqrt(pi))
)

// tQuantile returns the p-quantile of Student's t with df degrees of freedom
func tQuantile(p, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// fQuantile returns the p-quantile of the central F(d1, d2) distribution
func fQuantile(p, d1, d2 float64) float64 {
	x := mathext.InvRegIncBeta(d1/2, d2/2, p)
	if x >= 1 {
		return math.Inf(1)
	}
	return d2 * x / (d1 * (1 - x))
}

// NoncentralTCDF returns P(T <= t) for the noncentral t distribution with
// df degrees of freedom and noncentrality delta (Lenth, AS 243).
func NoncentralTCDF(t, df, delta float64) float64 {
	tt, del := t, delta
	negdel := false
	if t < 0 {
		negdel = true
		tt, del = -t, -delta
	}

	tnc := 0.0
	x := tt * tt / (tt*tt + df)
	if x > 0 {
		lambda := del * del
		p := 0.5 * math.Exp(-0.5*lambda)
		q := sqrt2OverPi * p * del
		s := 0.5 - p
		a := 0.5
		b := 0.5 * df
		rxb := math.Pow(1-x, b)
		lgb, _ := math.Lgamma(b)
		lgab, _ := math.Lgamma(a + b)
		albeta := lnSqrtPi + lgb - lgab
		xodd := mathext.RegIncBeta(a, b, x)
		godd := 2 * rxb * math.Exp(a*math.Log(x)-albeta)
		xeven := 1 - rxb
		geven := b * x * rxb
		tnc = p*xodd + q*xeven

		for en := 1.0; en <= nctMaxTerms; {
			a++
			xodd -= godd
			xeven -= geven
			godd *= x * (a + b - 1) / a
			geven *= x * (a + b - 0.5) / (a + 0.5)
			p *= lambda / (2 * en)
			q *= lambda / (2*en + 1)
			s -= p
			en++
			tnc += p*xodd + q*xeven
			if 2*s*(xodd-godd) <= nctErrMax {
				break
			}
		}
	}

	tnc += distuv.UnitNormal.CDF(-del)
	if negdel {
		tnc = 1 - tnc
	}
	return clampProbability(tnc)
}

// NoncentralFCDF returns P(F <= f) for the noncentral F distribution with
// d1, d2 degrees of freedom and noncentrality lambda. The Poisson mixture
// is summed outward from its mode.
func NoncentralFCDF(f, d1, d2, lambda float64) float64 {
	if f <= 0 {
		return 0
	}
	if math.IsInf(f, 1) {
		return 1
	}

	prod := d1 * f
	dsum := d2 + prod
	xx := prod / dsum
	yy := d2 / dsum
	b := d2 / 2

	if lambda < ncfCentral {
		return mathext.RegIncBeta(d1/2, b, xx)
	}

	xnonc := lambda / 2
	icent := math.Floor(xnonc)
	if icent == 0 {
		icent = 1
	}
	centwt := distuv.Poisson{Lambda: xnonc}.Prob(icent)

	adn := d1/2 + icent
	betdn := mathext.RegIncBeta(adn, b, xx)
	aup := adn
	betup := betdn
	sum := centwt * betdn

	small := func(term float64) bool {
		return sum < ncfTiny || term < ncfRelTolerance*sum
	}

	// Backward from the mode
	xmult := centwt
	i := icent
	lg1, _ := math.Lgamma(adn + b)
	lg2, _ := math.Lgamma(adn + 1)
	lgb, _ := math.Lgamma(b)
	dnterm := math.Exp(lg1 - lg2 - lgb + adn*math.Log(xx) + b*math.Log(yy))
	for !small(xmult*betdn) && i > 0 {
		xmult *= i / xnonc
		i--
		adn--
		dnterm = (adn + 1) / ((adn + b) * xx) * dnterm
		betdn += dnterm
		sum += xmult * betdn
	}

	// Forward from the mode
	i = icent + 1
	xmult = centwt
	lgaup, _ := math.Lgamma(aup)
	var upterm float64
	if aup-1+b == 0 {
		upterm = math.Exp(-lgaup - lgb + (aup-1)*math.Log(xx) + b*math.Log(yy))
	} else {
		lgs, _ := math.Lgamma(aup - 1 + b)
		upterm = math.Exp(lgs - lgaup - lgb + (aup-1)*math.Log(xx) + b*math.Log(yy))
	}
	for n := 0; n < ncfMaxTerms; n++ {
		xmult *= xnonc / i
		i++
		aup++
		upterm = (aup + b - 2) * xx / (aup - 1) * upterm
		betup -= upterm
		sum += xmult * betup
		if small(xmult * betup) {
			break
		}
	}

	return clampProbability(sum)
}

// NoncentralFSurvival returns P(F > f)
func NoncentralFSurvival(f, d1, d2, lambda float64) float64 {
	return clampProbability(0.5 + (0.5 - NoncentralFCDF(f, d1, d2, lambda)))
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
