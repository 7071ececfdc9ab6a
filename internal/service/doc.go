// Package service contains the application use cases. KundliService turns a
// birth input into a complete chart: it asks an ephemeris.Provider for the
// ascendant and body longitudes, assembles the chart, runs the combination
// and affliction catalogues and derives the panchang details.
//
// The service depends on domain packages and on the Provider interface, never
// on a concrete transport, so the API, the CLI and tests can each supply
// their own provider.
package service
