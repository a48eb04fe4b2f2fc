package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/webviewui/internal/config"
	"bennypowers.dev/webviewui/internal/extract"
	"bennypowers.dev/webviewui/internal/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("extract-webview-ui", flag.ContinueOnError)
	root := fs.String("root", "", "Project root (default: parent of the directory holding this executable)")
	configPath := fs.String("config", "", "Config file (default: <root>/"+config.FileName+" or package.json "+config.PackageJSONKey+")")
	verbose := fs.Bool("v", false, "Log offsets and segment counts")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *verbose {
		log.SetLevel(log.LevelDebug)
	}

	projectRoot := *root
	if projectRoot == "" {
		var err error
		projectRoot, err = executableRoot()
		if err != nil {
			log.Error("Failed to locate project root: %v", err)
			return 1
		}
	}

	cfg, err := config.Load(projectRoot, *configPath)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	sourcePath, outputDir := cfg.Paths(projectRoot)
	result, err := extract.New(extract.Options{
		SourcePath:   sourcePath,
		OutputDir:    outputDir,
		Signature:    cfg.Signature(),
		Delimiter:    cfg.RawDelimiter(),
		Title:        cfg.Title,
		ConfigOrigin: cfg.Origin,
	}).Run()
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	extract.LogReport(result)
	return 0
}

// executableRoot returns the parent of the directory holding the running binary,
// so a binary installed as <root>/scripts/extract-webview-ui finds <root>
func executableRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", exe, err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
