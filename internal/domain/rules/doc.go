// Package rules classifies a chart against catalogues of named combinations.
//
// A Rule pairs a Descriptor (name, category, level, text) with a matcher
// built from the combinators in match.go. Rules that read the tithi or
// nakshatra are registered with TimedRule and never fire on a chart without
// time facts. Two catalogues are provided: Yogas for favourable combinations
// and Doshas for afflictions. An Evaluator runs a catalogue against a chart,
// isolating any rule that fails and keeping findings in registration order.
package rules
