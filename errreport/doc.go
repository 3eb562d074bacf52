// Package errreport provides the multi-line, variadic diagnostic carrier
// thrown across the lookup-table core. A Report accumulates message lines
// with a heterogeneous Add that accepts strings, numbers, and booleans, and
// renders them one per line. Procedure wraps a Report with the procedure
// name that raised it, mirroring the original PROCEDURE_ERROR flavor.
package errreport
