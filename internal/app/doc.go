// Package app wires configuration, logging, the ephemeris provider, the rule
// evaluator and the kundli service into a runnable HTTP application. Both
// cmd/server and the serve subcommand of cmd/kundli start it.
package app
