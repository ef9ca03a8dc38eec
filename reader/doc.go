// Package reader obtains raw RTF document bytes from files and streams.
//
// It deliberately stays dumb: its only job is to hand the core lexer a
// complete text buffer and to report read failures separately from lexing
// and parsing failures, so callers can always tell which phase went wrong.
//
// Use [Open] for a file on disk, [New] for an io.Reader, or [FromBytes]
// for a buffer already in memory. A leading UTF-8 byte order mark is
// stripped in all cases.
package reader
