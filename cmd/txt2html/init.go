package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-txt2html/internal/assets"
	"github.com/alnah/go-txt2html/internal/config"
	"github.com/alnah/go-txt2html/internal/fileutil"
	"github.com/alnah/go-txt2html/internal/hints"
)

// ErrFileExists is returned by init when a target file already exists.
var ErrFileExists = errors.New("file already exists")

// Names of the files written by init.
const (
	initModelFile  = "index.html"
	initInputFile  = "articles.txt"
	initConfigName = "txt2html"
	initOutputDir  = "output"
)

// initConfigHeader is written as a comment above the generated config.
const initConfigHeader = `txt2html configuration.
Paths are relative to the directory txt2html runs in.
diacriticsPolicy: strip-to-ascii | repair-and-keep`

// scaffoldFile is one file written by init.
type scaffoldFile struct {
	name    string
	content []byte
}

// runInitCmd parses init flags and writes a starter project.
func runInitCmd(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	dir := "."
	if len(positional) > 0 {
		dir = positional[0]
	}
	return runInit(dir, flags, env)
}

// runInit writes the built-in model page, the sample articles and a config
// file into dir. Existing files are kept unless force is set.
func runInit(dir string, flags *initFlags, env *Environment) error {
	files, err := scaffoldFiles(env.AssetLoader)
	if err != nil {
		return err
	}

	if !flags.force {
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if fileutil.FileExists(path) {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, path)
			}
		}
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := fileutil.WriteFileAtomic(path, f.content, filePermissions); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", path)
		}
	}

	if !flags.quiet {
		fmt.Fprintln(env.Stdout)
		fmt.Fprintf(env.Stdout, "Next: cd %s && txt2html convert --config %s\n", dir, initConfigName)
	}
	return nil
}

// scaffoldFiles builds the contents of the starter project.
func scaffoldFiles(loader assets.AssetLoader) ([]scaffoldFile, error) {
	model, err := loader.LoadModel(assets.DefaultModelName)
	if err != nil {
		return nil, fmt.Errorf("loading built-in model: %w", err)
	}
	sample, err := loader.LoadSample(assets.DefaultSampleName)
	if err != nil {
		return nil, fmt.Errorf("loading sample articles: %w", err)
	}

	cfg := config.DefaultConfig()
	cfg.ModelFile = initModelFile
	cfg.InputFile = initInputFile
	cfg.OutputDir = initOutputDir

	cfgData, err := cfg.Encode(initConfigHeader)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return []scaffoldFile{
		{name: initModelFile, content: []byte(model)},
		{name: initInputFile, content: []byte(sample)},
		{name: initConfigName + ".yaml", content: cfgData},
	}, nil
}
