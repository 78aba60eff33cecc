// Package pipeline fans a batch of queries out over a bounded worker pool,
// runs validation, alignment and coordinate mapping per query, and fans the
// results back in preserving input order.
//
// Each query is independent: workers share only the read-only reference data
// and a stateless alignment engine, and one query's failure never cancels or
// corrupts another's.
package pipeline
