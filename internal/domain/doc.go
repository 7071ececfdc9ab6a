// Package domain contains the core entities, value objects, and errors of the
// kundli service. It is independent of any specific infrastructure or delivery
// mechanism: the chart engine lives in domain/chart, the rule catalogues in
// domain/rules and the calendar-derived details in domain/panchang.
package domain
