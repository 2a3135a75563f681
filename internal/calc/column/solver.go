package column

import "math"

// ImperfectionTerm is a*c/r^2 for initial crookedness a and extreme-fibre distance c.
func ImperfectionTerm(initialCrookedness, halfDimension, radiusOfGyration float64) float64 {
	return (initialCrookedness * halfDimension) / (radiusOfGyration * radiusOfGyration)
}

// QuadraticCoefficients returns C1 and C2 of P^2 + C1 P + C2 = 0 for the
// allowable load P.
func QuadraticCoefficients(yieldStrength, area, criticalLoad, imperfection, designFactor float64) (c1, c2 float64) {
	c1 = (-1.0 / designFactor) * ((yieldStrength * area) + (1.0+imperfection)*criticalLoad)
	c2 = (yieldStrength * area * criticalLoad) / (designFactor * designFactor)
	return c1, c2
}

// SmallerRoot solves x^2 + c1 x + c2 = 0 for the smaller root. A negative
// discriminant is clamped to zero, so the result is real for finite
// coefficients. A NaN or infinite coefficient yields NaN.
func SmallerRoot(c1, c2 float64) float64 {
	if !isFinite(c1) || !isFinite(c2) {
		return math.NaN()
	}
	disc := c1*c1 - 4.0*c2
	if math.IsInf(disc, 0) {
		return scaledSmallerRoot(c1, c2)
	}
	if disc < 0 {
		disc = 0
	}
	return (-c1 - math.Sqrt(disc)) / 2.0
}

// scaledSmallerRoot handles coefficients whose discriminant overflows by
// factoring |c1| out of it and taking the second root as c2/q.
func scaledSmallerRoot(c1, c2 float64) float64 {
	s := math.Abs(c1)
	if s == 0 {
		return math.NaN()
	}
	scaled := 1.0 - 4.0*(c2/s)/s
	if scaled < 0 {
		scaled = 0
	}
	q := -(c1 + math.Copysign(s*math.Sqrt(scaled), c1)) / 2.0
	if q == 0 {
		return 0
	}
	return math.Min(q, c2/q)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
