// Package pipeline implements the text-to-HTML article transform.
//
// The stages run strictly in order for every article:
//   - Splitting the raw input into delimited article chunks
//   - Parsing a chunk into title, description and body
//   - Repairing mis-decoded characters (policy dependent)
//   - Deriving the slug used for the file name and canonical URL
//   - Formatting the body as paragraph markup
//   - Splicing title, description, canonical link, flag link and body
//     into the model template
//   - Normalizing attribute quoting in the final document
//
// Splicing is region based: each marker region of the model template has its
// own matcher, and nothing outside the matched span is touched. No HTML
// parser is involved: bytes outside the regions are copied from the model
// unchanged.
package pipeline
