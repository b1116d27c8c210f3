// Package testutil holds deterministic helpers shared by the scenario runner
// and package tests: a logical step counter for trace events, and float-tolerant
// comparison of shape collections.
package testutil
