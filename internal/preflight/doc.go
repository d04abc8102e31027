// Package preflight provides readiness checks for the external binaries and
// filesystem paths revolver depends on.
//
// These checks run in two contexts:
//   - The batch orchestrator calls CheckTranscoder before encoding anything.
//     A missing transcoder aborts the batch with ErrMissingTranscoder.
//   - The CLI "revolver check" command uses RunAll to display the full report.
package preflight
