// Package inference holds the hypothesis tests and probability laws used to
// interpret lab counts: chi-square goodness of fit and contingency tests
// with their critical values, Fisher's exact test, the Poisson and binomial
// laws, confidence intervals and the coefficient of determination of a
// polynomial fit.
package inference
