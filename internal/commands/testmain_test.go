package commands

import (
	"fmt"
	"os"
	"testing"

	"github.com/NielsdaWheelz/rrun/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := testutil.PrepareGitEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}
