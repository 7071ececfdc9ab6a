// Package chart builds natal charts from sidereal longitudes.
//
// A Chart is assembled from the ascendant longitude and a map of body
// longitudes. Every body is normalized into a sign and a degree within the
// sign, placed in a whole-sign house counted from the ascendant's sign, and
// classified by dignity against the Tables. When both the Sun and the Moon
// are present the chart also carries TimeFacts (tithi, nakshatra, karana,
// nithya yoga) derived from their separation.
//
// Preconditions: longitudes are degrees on the sidereal (Lahiri) zodiac and
// are finite numbers. Out-of-range values are reduced modulo 360. A body
// that is missing, unknown, or not finite is left out of the chart rather
// than reported as an error.
package chart
