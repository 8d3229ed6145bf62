// Package txt2html turns a text file of delimited articles into one HTML
// page per article, spliced into a shared model page.
//
// # Quick Start
//
// Split the input, then render every article against the model:
//
//	svc, err := txt2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, chunk := range txt2html.Split(input) {
//	    article, err := txt2html.ParseArticle(chunk, i+1)
//	    if err != nil {
//	        log.Print(err)
//	        continue
//	    }
//	    result, err := svc.Render(model, article)
//	    if err != nil {
//	        log.Print(err)
//	        continue
//	    }
//	    os.WriteFile(result.FileName, []byte(result.HTML), 0644)
//	}
//
// # Input Format
//
// Articles are separated by lines starting with three hyphens. Text before
// the first separator is ignored. Inside an article, the first line is the
// title, the second line is ignored, the third line is the description and
// the remaining lines are the body, one paragraph per non-blank line:
//
//	notes that are not published
//	---
//	Test Article
//
//	A test
//	Line one
//	Line two
//	--- next
//	...
//
// # Conversion Pipeline
//
//  1. Character handling according to the diacritics policy
//  2. Slug derivation from the title (file name and canonical URL)
//  3. Body formatting as <p> elements, classes picked by line prefix
//  4. Splicing title, description, canonical link, flag link and body
//     into the model page
//  5. Attribute quote normalization
//
// # Diacritics Policy
//
// PolicyStripToASCII repairs UTF-8 text that was mis-decoded as
// Windows-1252 and then removes Romanian diacritics everywhere.
// PolicyRepairAndKeep keeps the text as written and only transliterates
// the <title> and meta description to ASCII.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := txt2html.New(
//	    txt2html.WithPolicy(txt2html.PolicyRepairAndKeep),
//	    txt2html.WithSite(txt2html.Site{
//	        Domain:    "example.com",
//	        Brand:     "Example",
//	        FlagImage: "img/flag_ro.jpg",
//	    }),
//	)
package txt2html
