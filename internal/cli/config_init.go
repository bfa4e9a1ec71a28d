package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/cbamcalc/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (a directory tree holding .cbamcalc/, or --project-dir) it
// writes the project overlay; otherwise, or with --global, the global file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Initialize configuration file with default values",
		Annotations: map[string]string{annotationLenientConfig: "true"},
		Example: `  # Create the global configuration
  cbamcalc config init --global

  # Create configuration, overwriting existing
  cbamcalc config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := initTargetPath(cmd, global)
			if err != nil {
				return err
			}
			return writeDefaultConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "force global configuration init even inside a project")

	return cmd
}

// initTargetPath picks the file config init writes.
func initTargetPath(cmd *cobra.Command, global bool) (string, error) {
	wd, _ := os.Getwd()
	lookupEnv, err := config.WithDotEnv(envFromContext(cmd.Context()), filepath.Join(wd, ".env"))
	if err != nil {
		return "", err
	}
	if !global {
		flagDir, _ := cmd.Flags().GetString(flagProjectDir)
		if dir := config.ResolveProjectDir(cmd.Context(), flagDir, wd, lookupEnv); dir != "" {
			return filepath.Join(dir, "config.yaml"), nil
		}
	}
	if p, _ := cmd.Flags().GetString(flagConfig); p != "" {
		return p, nil
	}
	return config.GetConfigPath(lookupEnv)
}

func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return usageError(errors.New("configuration file already exists, use --force to overwrite"))
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.New().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after files, environment and flags are applied.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			w := cmd.OutOrStdout()
			switch output {
			case "yaml", "":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return err
				}
				return enc.Close()
			case config.OutputFormatJSON:
				return writeJSON(w, cfg)
			default:
				return usageError(fmt.Errorf("unsupported format %q: use yaml or json", output))
			}
		},
	}
	cmd.Flags().StringVar(&output, "output", "yaml", "Output format (yaml, json)")
	return cmd
}
