package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/logging"
)

var (
	cfgPath string

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run parses args and executes the selected sub-command.
func Run(args []string) error {
	cfgPath = extractConfigPath(args)

	opts := &Options{}
	var first string
	for _, a := range args {
		if !strings.HasPrefix(a, "-") && a != cfgPath {
			first = a
			break
		}
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.Default)
	_, err := parser.ParseArgs(args)

	return err
}

// extractConfigPath searches the raw argument list for the -f/--config option
// so sub-commands can load the config before go-flags has finished parsing.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}

	return ""
}

func loadConfig() (subvault.Config, error) {
	if cfgPath == "" {
		return subvault.DefaultConfig(), nil
	}

	return subvault.LoadConfig(cfgPath)
}

func newLogger(cfg subvault.Config) subvault.Logger {
	return logging.NewSlogWriter(stderr, cfg.Logging.Level, cfg.Logging.JSON)
}

// buildVault creates a vault holding the registrations selected by src.
func buildVault(cfg subvault.Config, src TreeSource) (*subvault.Vault[string], error) {
	var opts []subvault.Option
	if src.Tree != "" {
		root, err := loadTree(src.Tree)
		if err != nil {
			return nil, err
		}
		opts = append(opts, subvault.WithInitialTree(root))
	}

	v, err := subvault.New[string](&cfg, opts...)
	if err != nil {
		return nil, err
	}

	for _, reg := range src.Subs {
		topic, handle, ok := strings.Cut(reg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid registration %q: want TOPIC=HANDLE", reg)
		}
		v.Add(topic, handle)
	}

	return v, nil
}

func loadTree(path string) (*subvault.Node[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree %s: %w", path, err)
	}

	root := subvault.NewNode[string]()
	if err := yaml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to parse tree %s: %w", path, err)
	}

	return root, nil
}
