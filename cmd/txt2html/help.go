package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert an articles file to HTML pages")
	fmt.Fprintln(w, "  init        Write a starter model, sample articles and config")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'txt2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2html convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every article of a text file into an HTML page built from a model page.")
	fmt.Fprintln(w, "Articles start after a line beginning with ---; their first line is the title,")
	fmt.Fprintln(w, "the third the description, the rest the body. Each page is written as <slug>.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Articles file (optional if config has inputFile)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -m, --model <path|name>   Model HTML page, or built-in model name (default: articol)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --dry-run             Render pages without writing them")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text:")
	fmt.Fprintln(w, "      --policy <s>          Diacritics policy:")
	fmt.Fprintln(w, "                              strip-to-ascii   repair mojibake, strip Romanian diacritics (default)")
	fmt.Fprintln(w, "                              repair-and-keep  keep text as written (no mojibake repair), ASCII head")
	fmt.Fprintln(w, "                                               fields, UTF-8 charset; alias: keep-diacritics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --domain <s>          Domain of canonical and flag links")
	fmt.Fprintln(w, "      --brand <s>           Brand suffix of the <title> element")
	fmt.Fprintln(w, "      --flag-image <path>   Flag image whose link points at the page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show progress and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TXT2HTML_CONFIG, TXT2HTML_MODEL, TXT2HTML_INPUT, TXT2HTML_OUTPUT_DIR,")
	fmt.Fprintln(w, "  TXT2HTML_POLICY, TXT2HTML_DOMAIN (flags take precedence)")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2html init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write index.html (model page), articles.txt (sample articles) and")
	fmt.Fprintln(w, "txt2html.yaml (config) into dir (default: current directory).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite existing files")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: txt2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: txt2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
