package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/webviewui/internal/source"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the project root
const FileName = "webview-extract.yaml"

// PackageJSONKey is the package.json field holding the same settings
const PackageJSONKey = "webviewExtract"

// Config controls where the extractor reads and writes, and what it looks for
type Config struct {
	// Source is the C++ file holding the embedded document, relative to the project root
	Source string `yaml:"source" json:"source"`

	// OutputDir receives the extracted files, relative to the project root
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// ReturnType, ClassName and FunctionName make up the function signature
	ReturnType   string `yaml:"returnType" json:"returnType"`
	ClassName    string `yaml:"className" json:"className"`
	FunctionName string `yaml:"functionName" json:"functionName"`

	// RawPrefix and Delimiter make up the raw string tokens, e.g. LR"HTML( and )HTML"
	RawPrefix string `yaml:"rawPrefix" json:"rawPrefix"`
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Title names the product in the header comment of styles.css and app.js
	Title string `yaml:"title" json:"title"`

	// Origin names where the overrides were read from, empty for built-in defaults
	Origin string `yaml:"-" json:"-"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Source:       filepath.Join("src", "webview", "WebViewWindow.cpp"),
		OutputDir:    filepath.Join("src", "webview", "ui"),
		ReturnType:   "std::wstring",
		ClassName:    "WebViewWindow",
		FunctionName: "GetEmbeddedHTML",
		RawPrefix:    "LR",
		Delimiter:    "HTML",
		Title:        "Mouse2VR WebView",
	}
}

// Signature returns the function signature to locate
func (c Config) Signature() source.Signature {
	return source.Signature{
		ReturnType: c.ReturnType,
		Class:      c.ClassName,
		Name:       c.FunctionName,
	}
}

// RawDelimiter returns the raw string delimiter of the segments
func (c Config) RawDelimiter() source.Delimiter {
	return source.Delimiter{Prefix: c.RawPrefix, Tag: c.Delimiter}
}

// Paths resolves the source file and output directory against root.
// Absolute values are used as given.
func (c Config) Paths(root string) (sourcePath, outputDir string) {
	return resolve(root, c.Source), resolve(root, c.OutputDir)
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// merge copies every non-empty field of o over c
func (c *Config) merge(o Config) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&c.Source, o.Source},
		{&c.OutputDir, o.OutputDir},
		{&c.ReturnType, o.ReturnType},
		{&c.ClassName, o.ClassName},
		{&c.FunctionName, o.FunctionName},
		{&c.RawPrefix, o.RawPrefix},
		{&c.Delimiter, o.Delimiter},
		{&c.Title, o.Title},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

// Load builds the configuration for root. An explicit path must exist and is
// read as YAML. Otherwise root/webview-extract.yaml is used when present, then
// the webviewExtract object of root/package.json. Missing settings keep their defaults.
func Load(root, explicitPath string) (Config, error) {
	cfg := Default()

	if explicitPath != "" {
		override, err := readYAML(explicitPath)
		if err != nil {
			return cfg, err
		}
		cfg.merge(override)
		cfg.Origin = explicitPath
		return cfg, nil
	}

	yamlPath := filepath.Join(root, FileName)
	if _, err := os.Stat(yamlPath); err == nil {
		override, err := readYAML(yamlPath)
		if err != nil {
			return cfg, err
		}
		cfg.merge(override)
		cfg.Origin = yamlPath
		return cfg, nil
	}

	override, err := readPackageJSON(root)
	if err != nil {
		return cfg, err
	}
	if override != nil {
		cfg.merge(*override)
		cfg.Origin = filepath.Join(root, "package.json") + " (" + PackageJSONKey + ")"
	}
	return cfg, nil
}

func readYAML(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: config path chosen by the user running the tool
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// readPackageJSON returns the webviewExtract settings from root/package.json,
// or nil when the file or the field doesn't exist
func readPackageJSON(root string) (*Config, error) {
	packageJSONPath := filepath.Join(root, "package.json")

	if _, err := os.Stat(packageJSONPath); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(packageJSONPath) //nolint:gosec // G304: project package.json - local trusted environment
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	// Parse as JSONC (allows comments)
	data = jsonc.ToJSON(data)

	var pkgJSON map[string]json.RawMessage
	if err := json.Unmarshal(data, &pkgJSON); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	raw, ok := pkgJSON[PackageJSONKey]
	if !ok {
		return nil, nil
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%s in package.json must be an object: %w", PackageJSONKey, err)
	}
	return &cfg, nil
}
