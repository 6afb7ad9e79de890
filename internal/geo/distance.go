package geo

import (
	"math"

	"placefinder-api/internal/models"
)

// WGS-84 ellipsoid
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	semiMinorAxis = semiMajorAxis * (1 - flattening)

	meanEarthRadius = 6371008.8

	maxIterations = 200
	convergence   = 1e-12
)

// Distance returns the geodesic distance in meters between two coordinates on
// the WGS-84 ellipsoid, using Vincenty's inverse formula.
//
// The result is NaN when either coordinate has a non-finite component.
func Distance(from, to models.Coordinate) float64 {
	if !finite(from) || !finite(to) {
		return math.NaN()
	}
	if from == to {
		return 0
	}
	// Order the endpoints so that Distance(a, b) and Distance(b, a) run the same arithmetic.
	if less(to, from) {
		from, to = to, from
	}

	l := toRad(to.Longitude - from.Longitude)
	u1 := math.Atan((1 - flattening) * math.Tan(toRad(from.Latitude)))
	u2 := math.Atan((1 - flattening) * math.Tan(toRad(to.Latitude)))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma := math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			return 0
		}
		cosSigma := sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma := math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha := 1 - sinAlpha*sinAlpha

		// equatorial line: cosSqAlpha is zero
		cos2SigmaM := 0.0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = l + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < convergence {
			uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
			a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := b * sinSigma * (cos2SigmaM + b/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
			return semiMinorAxis * a * (sigma - deltaSigma)
		}
	}

	// Vincenty does not converge for nearly antipodal points.
	return greatCircle(from, to)
}

// greatCircle is the haversine distance on a sphere of the mean earth radius.
func greatCircle(from, to models.Coordinate) float64 {
	dLat := toRad(to.Latitude - from.Latitude)
	dLon := toRad(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Latitude))*math.Cos(toRad(to.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return meanEarthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func finite(c models.Coordinate) bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

func less(a, b models.Coordinate) bool {
	if a.Latitude != b.Latitude {
		return a.Latitude < b.Latitude
	}
	return a.Longitude < b.Longitude
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
