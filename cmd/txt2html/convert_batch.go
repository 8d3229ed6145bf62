package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	txt2html "github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/fileutil"
	"github.com/alnah/go-txt2html/internal/hints"
)

// Renderer is the interface for the rendering service.
type Renderer interface {
	Render(model string, article txt2html.Article) (*txt2html.Result, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*txt2html.Service)(nil)

// batchParams groups parameters shared across the articles of a batch.
type batchParams struct {
	model     string
	outputDir string
	dryRun    bool
	quiet     bool
	verbose   bool
}

// ArticleResult holds the outcome of a single article.
type ArticleResult struct {
	Index      int
	OutputPath string
	Warnings   []txt2html.Warning
	Overwrites int // index of an earlier article written to the same path, 0 if none
	Err        error
	Duration   time.Duration
}

// convertBatch renders and writes every article in input order, reporting
// each one as soon as it is done. A failing article is recorded and
// skipped; the batch continues. Cancelling ctx fails the remaining
// articles without rendering them.
func convertBatch(ctx context.Context, renderer Renderer, chunks []string, params *batchParams, env *Environment) []ArticleResult {
	results := make([]ArticleResult, 0, len(chunks))
	written := make(map[string]int, len(chunks)) // output path -> article index

	for i, chunk := range chunks {
		index := i + 1

		if err := ctx.Err(); err != nil {
			result := ArticleResult{
				Index: index,
				Err:   fmt.Errorf("article %d: %w", index, err),
			}
			printResult(result, params, env)
			results = append(results, result)
			continue
		}

		if params.verbose {
			fmt.Fprintf(env.Stdout, "Processing article %d of %d\n", index, len(chunks))
		}

		result := convertArticle(renderer, chunk, index, params, env)
		if result.Err == nil {
			result.Overwrites = written[result.OutputPath]
			written[result.OutputPath] = index
		}
		printResult(result, params, env)
		results = append(results, result)
	}

	return results
}

// convertArticle processes a single article and returns the result.
func convertArticle(renderer Renderer, chunk string, index int, params *batchParams, env *Environment) ArticleResult {
	start := env.Now()
	result := ArticleResult{Index: index}

	article, err := txt2html.ParseArticle(chunk, index)
	if err != nil {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	page, err := renderer.Render(params.model, article)
	if err != nil {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	result.OutputPath = filepath.Join(params.outputDir, page.FileName)
	result.Warnings = page.Warnings

	if !params.dryRun {
		if err := fileutil.WriteFileAtomic(result.OutputPath, []byte(page.HTML), filePermissions); err != nil {
			result.Err = fmt.Errorf("article %d: %w: %v", index, ErrWriteHTML, err)
			result.Duration = env.Now().Sub(start)
			return result
		}
	}

	result.Duration = env.Now().Sub(start)
	return result
}

// ResultSummary holds the count of succeeded and failed articles.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed articles.
func countResults(results []ArticleResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResult reports one article. Errors are always printed; warnings and
// progress are hidden in quiet mode.
func printResult(r ArticleResult, params *batchParams, env *Environment) {
	if r.Err != nil {
		fmt.Fprintf(env.Stderr, "FAILED %v\n", r.Err)
		return
	}
	if params.quiet {
		return
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(env.Stderr, "warning: article %d: %s%s\n", r.Index, w.Message, hints.ForMissingMarker(w.Region))
	}
	if r.Overwrites > 0 {
		fmt.Fprintf(env.Stderr, "warning: article %d overwrites %s from article %d%s\n",
			r.Index, r.OutputPath, r.Overwrites, hints.ForSlugCollision())
	}

	verb := "Created"
	if params.dryRun {
		verb = "Would create"
	}
	if params.verbose {
		fmt.Fprintf(env.Stdout, "%s %s (%v)\n", verb, r.OutputPath, r.Duration.Round(time.Millisecond))
	} else {
		fmt.Fprintf(env.Stdout, "%s %s\n", verb, r.OutputPath)
	}
}

// printSummary prints the succeeded/failed totals of a batch of more than
// one article, unless quiet, and returns the number of failures.
func printSummary(results []ArticleResult, quiet bool, env *Environment) int {
	summary := countResults(results)
	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
	return summary.Failed
}
