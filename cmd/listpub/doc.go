// Package main hosts the listpub CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the full publication lifecycle:
// ad-hoc rendering and summary preview of raw payloads, artefact storage
// and listing, publication of stored artefacts through the management
// facade, and gated retrieval of the resulting files. It centralizes
// configuration resolution and structured logging setup so subcommands
// can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands or
// flags here.
package main
