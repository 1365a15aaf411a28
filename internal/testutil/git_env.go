// Package testutil holds helpers shared by rrun tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PrepareGitEnv makes git repository discovery in tests depend only on the test's own directories:
// variables that override repo paths are cleared, and discovery never climbs above the temp dir.
func PrepareGitEnv() error {
	envVars := []string{
		"GIT_DIR",
		"GIT_WORK_TREE",
		"GIT_COMMON_DIR",
		"GIT_INDEX_FILE",
		"GIT_OBJECT_DIRECTORY",
		"GIT_ALTERNATE_OBJECT_DIRECTORIES",
	}
	for _, name := range envVars {
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("unset %s: %w", name, err)
		}
	}

	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}
	if err := os.Setenv("GIT_CEILING_DIRECTORIES", tmp); err != nil {
		return fmt.Errorf("set GIT_CEILING_DIRECTORIES: %w", err)
	}
	return nil
}
