package exec

import (
	"bytes"
	"context"
	"testing"
)

func TestTracingRunner(t *testing.T) {
	var buf bytes.Buffer
	inner := &fakeRunner{responses: []fakeResponse{{Result: CmdResult{ExitCode: 4}}}}
	tr := NewTracingRunner(inner, &buf)

	result, err := tr.Run(context.Background(), "cargo", []string{"run", "--", "hello world"}, RunOpts{Dir: "/repo"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.ExitCode != 4 {
		t.Errorf("ExitCode = %d, want 4 (result must pass through)", result.ExitCode)
	}
	if len(inner.calls) != 1 {
		t.Fatalf("expected 1 inner call, got %d", len(inner.calls))
	}

	want := "+ cargo run -- 'hello world'  (in /repo)\n"
	if buf.String() != want {
		t.Errorf("trace = %q, want %q", buf.String(), want)
	}

	p, err := tr.LookPath("git")
	if err != nil || p != "/usr/bin/git" {
		t.Errorf("LookPath() = %q, %v", p, err)
	}
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want string
	}{
		{"no args", "cargo", nil, "cargo"},
		{"plain args", "rustc", []string{"-o", "/tmp/foo-1a2b3c4d.rrun", "foo.rs"}, "rustc -o /tmp/foo-1a2b3c4d.rrun foo.rs"},
		{"space", "prog", []string{"a b"}, "prog 'a b'"},
		{"empty arg", "prog", []string{""}, "prog ''"},
		{"single quote", "prog", []string{"it's"}, `prog it\'s`},
		{"shell metachar", "prog", []string{"$HOME"}, `prog \$HOME`},
		{"leading tilde", "prog", []string{"~/x"}, `prog \~/x`},
		{"name with space", "/opt/my tools/rustc", []string{"foo.rs"}, "'/opt/my tools/rustc' foo.rs"},
		{"flag with value", "cargo", []string{"--bin=demo"}, "cargo --bin=demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCommand(tt.cmd, tt.args); got != tt.want {
				t.Errorf("FormatCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}
