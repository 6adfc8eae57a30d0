// Package labstat holds the pieces shared by the lab data reduction packages:
// the typed errors returned by the arithmetic and estimation code, and a few
// file helpers used by the binaries.
//
// The actual work lives in the subpackages: units (unit algebra), describe
// (numeric reductions), series (measurement series arithmetic), growth
// (growth rate and doubling time), platecount (colony count concentration),
// inference (chi-square and friends), plot, labcsv and config.
package labstat
