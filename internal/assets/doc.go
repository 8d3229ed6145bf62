// Package assets provides the built-in model page and sample input.
//
// The model page is a trimmed copy of an article page of the site, with
// every marker region the splicer rewrites: <title>, meta description,
// canonical link, the flag links and the ARTICOL START / ARTICOL FINAL
// body region. It lets the convert command run without a model file on
// disk and seeds new projects through the init command.
//
// # Directory Structure
//
//	models/
//	└── {name}.html      # model pages (e.g., articol.html)
//	samples/
//	└── {name}.txt       # sample articles inputs
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
package assets
