// Package main hosts the revolver CLI entrypoint and command graph.
//
// The Cobra command tree covers the whole proxy workflow: batch-encoding a
// folder of clips into proxies and intermediates, swapping an edit session
// between proxy and full-resolution media, resolving a single counterpart,
// and checking that the transcoder is usable. Configuration loading and
// logger construction live in commandContext so subcommands only translate
// flags into calls on the internal packages.
package main
