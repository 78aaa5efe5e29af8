// Package main is the entry point for gatecal, a numerical study of how
// calibration errors and depolarizing noise degrade single-qubit gate
// fidelity.
//
// The application separates a pure numerical core (gate model, fidelity
// evaluator, sweep engine) from the presentation and persistence layers:
// the core returns structured result tables, and rendering or storing
// them is an explicit, optional final step.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
