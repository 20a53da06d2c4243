// Package stats collects per-algorithm measurements over many random
// scenarios and summarizes or exports them.
//
// A Collector holds one series per algorithm, in the order the series were
// first recorded. Each sample is the Result of one run: weight, dequeued
// candidates, crossing tests and whether the run failed. Summary aggregates a
// series with gonum/stat; WriteCSV writes every sample in a spreadsheet-ready
// layout with one column group per measurement.
package stats
