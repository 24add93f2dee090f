// Package harness replays textual Nine Men's Morris actions through the
// engine.
//
// Two input forms are supported:
//
//   - action files: one action per line in the engine grammar ("W P 0",
//     "B M 0 1", "W R 5"); blank lines and lines starting with '#' are
//     skipped. LoadActions and Replay handle these.
//   - YAML scenarios: a named list of play/undo steps, each with an optional
//     expected error, followed by expectations on the final state. Run
//     executes a scenario and returns a trace; RunWithGolden compares that
//     trace with testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
