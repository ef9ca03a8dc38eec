// Package core provides low-level RTF parsing primitives: the lexer, the
// token model, and the parser that interprets tokens into a document model.
//
// # Pipeline
//
// Parsing is a strict two-stage pipeline. [Scan] (or a [Lexer] driven
// token by token) turns raw RTF text into an ordered sequence of [Token]
// values: group delimiters, control words with optional signed parameters,
// control symbols, and decoded text runs. [Parser.Parse] then interprets
// that sequence into a model.Document. Data flows one way; neither stage
// reaches back into the other.
//
// # Group state
//
// RTF formatting cascades through nested {...} groups. The parser keeps an
// explicit stack of frames: opening a group pushes a copy of the current
// frame, so children inherit formatting by value, and closing a group
// discards the top frame, restoring the parent's snapshot exactly. Groups
// whose first control word names a destination (\fonttbl, \colortbl,
// \stylesheet, \info, \pict) redirect their content into the header tables
// or discard it instead of contributing body text.
//
// # Errors
//
// Both stages fail fast: the first error aborts the stage and nothing
// partial is returned. Failures are reported as *[LexError] or
// *[ParseError] wrapping one of the package's sentinel errors, so callers
// can tell the failing phase apart with errors.As and the kind with
// errors.Is. Unknown control words are deliberately not errors; they are
// skipped, which is how RTF readers stay forward compatible.
package core
