// Package preflight provides readiness checks for the filesystem paths and
// listen address meetreport depends on.
//
// These checks run in two contexts:
//   - "meetreport serve" calls RunAll before binding and refuses to start
//     when a check fails.
//   - "meetreport config validate" prints every result so a broken setup is
//     visible before the first report is compiled.
package preflight
