package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the website identity flags.
type siteFlags struct {
	domain    string
	brand     string
	flagImage string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	site   siteFlags
	model  string
	output string
	policy string
	dryRun bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	quiet bool
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and timing")
}

// addSiteFlags adds website identity flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.domain, "domain", "", "site domain used in canonical and flag links")
	fs.StringVar(&f.brand, "brand", "", "brand suffix of the <title> element")
	fs.StringVar(&f.flagImage, "flag-image", "", "flag image whose link points at the page")
}

// newConvertFlagSet registers every convert flag on a new FlagSet.
// Shared by parseConvertFlags and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.model, "model", "m", "", "model HTML page path or built-in model name")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.policy, "policy", "", "diacritics policy: strip-to-ascii (repair then strip), repair-and-keep (keep text, alias keep-diacritics)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "render pages without writing them")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	return fs
}

// newInitFlagSet registers every init flag on a new FlagSet.
func newInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: expected one articles file, got %d arguments", ErrUsage, fs.NArg())
	}

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newInitFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printInitUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: expected one directory, got %d arguments", ErrUsage, fs.NArg())
	}

	return f, fs.Args(), nil
}

// wrapFlagError marks flag parsing failures as usage errors.
// flag.ErrHelp is returned as is so callers can exit successfully.
func wrapFlagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
