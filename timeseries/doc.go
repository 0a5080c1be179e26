// Package timeseries provides the series containers and CSV loading used to
// feed raw numeric sequences into the causality estimators.
package timeseries
