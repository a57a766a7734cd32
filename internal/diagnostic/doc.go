// Package diagnostic provides structured findings for category checks.
//
// Findings are reports rather than failures: a category that breaks a unit
// law still builds, and the law checker records the breach here with a code
// and the arrows involved.
package diagnostic
