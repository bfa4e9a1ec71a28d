package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/cbamcalc/internal/logging"
)

// projectDirName is the per-project settings directory.
const projectDirName = ".cbamcalc"

// EnvProjectDir overrides project directory discovery.
const EnvProjectDir = "CBAMCALC_PROJECT_DIR"

// ResolveProjectDir finds the project-local .cbamcalc directory. It checks, in
// order: flagValue, $CBAMCALC_PROJECT_DIR (via lookupEnv), then walks up from
// startDir looking for a .cbamcalc directory. It returns "" when none is found
// and never creates anything.
func ResolveProjectDir(
	ctx context.Context, flagValue, startDir string, lookupEnv func(string) (string, bool),
) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir, _ := lookupEnv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}
	if startDir == "" {
		return ""
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	home, _ := os.UserHomeDir()
	for {
		candidate := filepath.Join(dir, projectDirName)
		// The home directory's .cbamcalc is the global config, not a project.
		if dir != home {
			if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// toAbsProjectDir makes dir absolute and appends .cbamcalc unless already present.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}
	if filepath.Base(abs) == projectDirName {
		return abs
	}
	return filepath.Join(abs, projectDirName)
}
