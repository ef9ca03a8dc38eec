// Package htmlconv converts a parsed RTF document model into an HTML
// fragment.
//
// The conversion is purely structural: paragraphs become <p> elements,
// painter flags become the matching inline elements (<b>, <i>, <u>, <s>,
// <sub>, <sup>), and alignment becomes a text-align style. Nothing about
// visual geometry is computed. Text is escaped by the renderer, so
// documents containing markup characters are safe to convert.
package htmlconv
