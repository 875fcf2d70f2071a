// Package types contains the shared data model of tripcost: travel requests
// and responses, the vibe enumeration, cost breakdowns, and the structured
// error type used across the planner.
//
// The types package is the lowest-level package with no internal
// dependencies, so every other package may import it without cycles.
package types
