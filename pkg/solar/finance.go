package solar

import (
	"fmt"
	"math"
)

const (
	irrTolerance = 0.0001
	irrMaxRate   = 100.0
	// irrMaxIterations bounds bisection; 100 halvings of [0, 100] is far below
	// float64 resolution.
	irrMaxIterations = 100
)

func discount(rate float64, year int) float64 {
	return 1 / math.Pow(1+rate/100, float64(year))
}

// LCOE returns the levelized cost of energy: the system cost plus discounted
// operating costs over the discounted lifetime production. Year 0 is not
// discounted.
func LCOE(systemCost, annualProduction, operatingCosts float64, lifetime int, discountRate float64) (float64, error) {
	totalCosts := systemCost
	var totalProduction float64
	for year := 0; year < lifetime; year++ {
		f := discount(discountRate, year)
		totalCosts += operatingCosts * f
		totalProduction += annualProduction * f
	}
	if totalProduction <= 0 {
		return 0, fmt.Errorf("%w: lifetime production must be positive", ErrInvalidInput)
	}
	return totalCosts / totalProduction, nil
}

// NPV returns the net present value of paying systemCost up front and then
// receiving annualSavings-operatingCosts at the end of each year.
func NPV(systemCost, annualSavings, operatingCosts float64, lifetime int, discountRate float64) float64 {
	npv := -systemCost
	netCashFlow := annualSavings - operatingCosts
	for year := 1; year <= lifetime; year++ {
		npv += netCashFlow * discount(discountRate, year)
	}
	return npv
}

// IRR returns the internal rate of return in percent, searched by bisection
// over [0, 100]. NPV is monotonic in the rate for an up-front cost followed by
// constant flows, so a sign change over the bracket brackets the only root.
// ErrNoSolution is returned when there is no sign change.
func IRR(systemCost, annualSavings, operatingCosts float64, lifetime int) (float64, error) {
	npv := func(rate float64) float64 {
		return NPV(systemCost, annualSavings, operatingCosts, lifetime, rate)
	}

	lo, hi := 0.0, irrMaxRate
	fLo, fHi := npv(lo), npv(hi)
	switch {
	case math.Abs(fLo) <= irrTolerance:
		return lo, nil
	case math.Abs(fHi) <= irrTolerance:
		return hi, nil
	case math.Signbit(fLo) == math.Signbit(fHi):
		return 0, ErrNoSolution
	}

	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := npv(mid)
		if math.Abs(fMid) <= irrTolerance {
			return mid, nil
		}
		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
