// Package icn implements a decoder for individual sprites of ICN files.
//
// An ICN sprite is a stream of byte opcodes describing one row at a time:
// runs of opaque pixels, transparent gaps and runs of transform codes (such
// as shadows). Width, height and anchor offset are stored in the directory
// of the ICN file and are passed in by the caller; this package only turns
// the opcode stream into a layered sprite.
//
// Decoding is best effort. Malformed streams produce a partially decoded
// sprite instead of an error.
package icn
