package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Desc     string   // help text
	IsBool   bool     // takes no value
	Values   []string // for enum flags
	FileGlob string   // for file flags, e.g. "*.yaml"
	IsDir    bool     // directory completion
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // glob for file arguments, empty if none
	TakesDir    bool   // accepts a directory argument
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"policy": {Values: []string{"strip-to-ascii", "repair-and-keep"}},
	"config": {FileGlob: "*.yaml"},
	"model":  {FileGlob: "*.html"},
	"output": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:   f.Name,
			Short:  f.Shorthand,
			Desc:   f.Usage,
			IsBool: f.Value.Type() == "bool",
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			fd.Values = meta.Values
			fd.FileGlob = meta.FileGlob
			fd.IsDir = meta.IsDir
		}
		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert an articles file to HTML pages",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			FilePattern: "*.txt",
		},
		{
			Name:     "init",
			Desc:     "Write a starter model, sample articles and config",
			Flags:    extractFlagsFromFlagSet(newInitFlagSet(&initFlags{})),
			TakesDir: true,
		},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		generateBash(w, getCommands())
	case ShellZsh:
		generateZsh(w, getCommands())
	case ShellFish:
		generateFish(w, getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	return nil
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2html completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(txt2html completion bash)\"        # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   txt2html completion zsh > \"${fpath[1]}/_txt2html\"")
	fmt.Fprintln(w, "  Fish:  txt2html completion fish > ~/.config/fish/completions/txt2html.fish")
}

// commandNames returns the names of cmds joined by sep.
func commandNames(cmds []commandDef, sep string) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, sep)
}

// generateBash writes a bash completion function.
func generateBash(w io.Writer, cmds []commandDef) {
	fmt.Fprintln(w, "# bash completion for txt2html")
	fmt.Fprintln(w, "_txt2html() {")
	fmt.Fprintln(w, "    local cur prev cmd")
	fmt.Fprintln(w, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
	fmt.Fprintln(w, "    cmd=\"${COMP_WORDS[1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if [[ ${COMP_CWORD} -eq 1 ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", commandNames(cmds, " "))
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case \"${cmd}\" in")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintln(w, "        case \"${prev}\" in")
		for _, f := range c.Flags {
			if f.IsBool {
				continue
			}
			fmt.Fprintf(w, "        %s)\n", bashFlagPattern(f))
			switch {
			case len(f.Values) > 0:
				fmt.Fprintf(w, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(f.Values, " "))
			case f.IsDir:
				fmt.Fprintln(w, "            COMPREPLY=($(compgen -d -- \"${cur}\"))")
			default:
				fmt.Fprintln(w, "            COMPREPLY=($(compgen -f -- \"${cur}\"))")
			}
			fmt.Fprintln(w, "            return ;;")
		}
		fmt.Fprintln(w, "        esac")
		fmt.Fprintln(w, "        if [[ ${cur} == -* ]]; then")
		fmt.Fprintf(w, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", bashFlagWords(c.Flags))
		fmt.Fprintln(w, "            return")
		fmt.Fprintln(w, "        fi")
		if c.TakesDir {
			fmt.Fprintln(w, "        COMPREPLY=($(compgen -d -- \"${cur}\"))")
		} else {
			fmt.Fprintln(w, "        COMPREPLY=($(compgen -f -- \"${cur}\"))")
		}
		fmt.Fprintln(w, "        ;;")
	}
	fmt.Fprintln(w, "    completion)")
	fmt.Fprintln(w, "        COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"${cur}\"))")
	fmt.Fprintln(w, "        ;;")
	fmt.Fprintln(w, "    help)")
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", commandNames(cmds, " "))
	fmt.Fprintln(w, "        ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -F _txt2html txt2html")
}

// bashFlagPattern returns the case pattern matching a flag's spellings.
func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

// bashFlagWords returns every spelling of flags, space separated.
func bashFlagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// generateZsh writes a zsh completion function.
func generateZsh(w io.Writer, cmds []commandDef) {
	fmt.Fprintln(w, "#compdef txt2html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_txt2html() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range cmds {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "        _describe 'command' commands")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case \"${words[2]}\" in")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintln(w, "        _arguments \\")
		for _, f := range c.Flags {
			fmt.Fprintf(w, "            %s \\\n", zshFlagSpec(f))
		}
		switch {
		case c.FilePattern != "":
			fmt.Fprintf(w, "            '*:file:_files -g \"%s\"'\n", c.FilePattern)
		case c.TakesDir:
			fmt.Fprintln(w, "            '*:directory:_files -/'")
		default:
			fmt.Fprintln(w, "            '*:file:_files'")
		}
		fmt.Fprintln(w, "        ;;")
	}
	fmt.Fprintln(w, "    completion)")
	fmt.Fprintln(w, "        _values 'shell' bash zsh fish")
	fmt.Fprintln(w, "        ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_txt2html \"$@\"")
}

// zshFlagSpec returns the _arguments spec of a flag.
func zshFlagSpec(f flagDef) string {
	names := "--" + f.Long
	if f.Short != "" {
		names = "{-" + f.Short + ",--" + f.Long + "}"
	}
	spec := "'[" + zshEscape(f.Desc) + "]"
	switch {
	case f.IsBool:
	case len(f.Values) > 0:
		spec += ":value:(" + strings.Join(f.Values, " ") + ")"
	case f.IsDir:
		spec += ":directory:_files -/"
	case f.FileGlob != "":
		spec += ":file:_files -g \"" + f.FileGlob + "\""
	default:
		spec += ":value:"
	}
	spec += "'"
	if f.Short != "" {
		return names + spec
	}
	return "'" + names + spec[1:]
}

// zshEscape escapes characters with meaning inside zsh specs.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// generateFish writes fish completion commands.
func generateFish(w io.Writer, cmds []commandDef) {
	fmt.Fprintln(w, "# fish completion for txt2html")
	all := commandNames(cmds, " ")
	for _, c := range cmds {
		fmt.Fprintf(w, "complete -c txt2html -f -n \"not __fish_seen_subcommand_from %s\" -a %s -d %q\n", all, c.Name, c.Desc)
	}
	for _, c := range cmds {
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c txt2html -n \"__fish_seen_subcommand_from %s\" -l %s", c.Name, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			if !f.IsBool {
				line += " -r"
			}
			if len(f.Values) > 0 {
				line += " -f -a " + fmt.Sprintf("%q", strings.Join(f.Values, " "))
			}
			line += " -d " + fmt.Sprintf("%q", f.Desc)
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w, "complete -c txt2html -f -n \"__fish_seen_subcommand_from completion\" -a \"bash zsh fish\"")
}
