// Package ephemeris is the boundary to the celestial position service.
//
// The chart engine never computes planetary positions itself. A Provider
// answers two questions for a Moment: the sidereal (Lahiri) longitude of a
// body, and the ascendant with twelve house cusps for a place on Earth.
// RemoteProvider asks an HTTP service; StaticProvider replays a fixed
// snapshot for offline use and tests.
//
// All longitudes are in degrees. Moments carry a Julian Day in Universal
// Time, computed locally from the civil birth time. Ketu is never requested
// from a service; it is always derived as Rahu + 180°.
package ephemeris
