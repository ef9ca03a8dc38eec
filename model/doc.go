// Package model defines the document model produced by parsing an RTF file.
//
// All types here are passive values: the parser builds them, and once a
// [Document] has been returned the library never touches it again.
//
// # Structure
//
// A [Document] pairs a [Header] with an ordered body of [StyledBlock]
// values. The header carries the document-level tables RTF declares up
// front:
//
//   - [CharacterSet] - the base character set (\ansi, \mac, \pc, \pca)
//   - [FontTable] - font index to [Font] entries from \fonttbl
//   - [ColorTable] - ordered RGB triples from \colortbl
//   - [StyleSheet] - style index to [Style] entries from \stylesheet
//
// Each StyledBlock is a maximal run of text over which both the character
// style ([Painter]) and the paragraph layout ([Paragraph]) are constant.
// Splitting or merging of adjacent equal-styled blocks never changes the
// document's text, only its granularity.
//
// # Units
//
// Font sizes are in half-points, following the \fs control word. All
// paragraph measurements (indents, spacing, tab width) are in twips,
// twentieths of a point, as in the RTF source.
package model
