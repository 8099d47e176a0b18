package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/addaleax/remarkup"
)

// runCommand executes the CLI with the given arguments and returns stdout.
func runCommand(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()

	app, err := New("1.2.3", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out, errOut bytes.Buffer
	rootCmd := app.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if stdin != "" {
		rootCmd.SetIn(strings.NewReader(stdin))
	}

	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeFragment writes a fragment file into a fresh temp dir.
func writeFragment(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestUnmarkCommand_File(t *testing.T) {
	path := writeFragment(t, "page.html", `<p id="lead" class="x">Hello</p>`)

	out, err := runCommand(t, []string{"unmark", path}, "")
	if err != nil {
		t.Fatalf("unmark failed: %v", err)
	}
	want := `<p id="lead">Hello</p>` + "\n"
	if out != want {
		t.Errorf("unmark output = %q, want %q", out, want)
	}
}

func TestUnmarkCommand_Stdin(t *testing.T) {
	out, err := runCommand(t, []string{"unmark"}, `<em translate-id="t1" style="color:red">x</em>`)
	if err != nil {
		t.Fatalf("unmark failed: %v", err)
	}
	want := `<em translate-id="t1">x</em>` + "\n"
	if out != want {
		t.Errorf("unmark output = %q, want %q", out, want)
	}
}

func TestUnmarkCommand_WriteFile(t *testing.T) {
	path := writeFragment(t, "page.html", `<p class="x">Hello</p>`)
	outPath := filepath.Join(t.TempDir(), "plain.html")

	stdout, err := runCommand(t, []string{"unmark", path, "--write", outPath}, "")
	if err != nil {
		t.Fatalf("unmark failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("unmark wrote %q to stdout despite --write", stdout)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	// File writes carry the exact markup, no trailing newline
	if got, want := string(data), `<p>Hello</p>`; got != want {
		t.Errorf("written file = %q, want %q", got, want)
	}
}

func TestUnmarkCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, []string{"unmark", filepath.Join(t.TempDir(), "nope.html")}, "")
	if err == nil {
		t.Fatal("unmark succeeded with missing input file")
	}
}

func TestUnmarkCommand_Profile(t *testing.T) {
	profile := writeFragment(t, "rules.yaml", "preserve_patterns:\n  - \"prefix:data-\"\n")
	page := writeFragment(t, "page.html", `<p data-x="1" class="x">Hello</p>`)

	out, err := runCommand(t, []string{"unmark", "--profile", profile, page}, "")
	if err != nil {
		t.Fatalf("unmark failed: %v", err)
	}
	want := `<p data-x="1">Hello</p>` + "\n"
	if out != want {
		t.Errorf("unmark output = %q, want %q", out, want)
	}
}

func TestRemarkCommand(t *testing.T) {
	original := writeFragment(t, "original.html",
		`<span>A</span><em id="x">B</em>`)
	edited := writeFragment(t, "edited.html",
		`<em>B2</em><span>A2</span>`)

	out, err := runCommand(t, []string{"remark", original, edited}, "")
	if err != nil {
		t.Fatalf("remark failed: %v", err)
	}
	want := `<em id="x">B2</em><span>A2</span>` + "\n"
	if out != want {
		t.Errorf("remark output = %q, want %q", out, want)
	}
}

func TestRemarkCommand_ArgCount(t *testing.T) {
	path := writeFragment(t, "only.html", `<p>a</p>`)

	if _, err := runCommand(t, []string{"remark", path}, ""); err == nil {
		t.Error("remark accepted a single argument, expected arg validation error")
	}
}

func TestInspectCommand_JSON(t *testing.T) {
	original := writeFragment(t, "original.html",
		`<span>A</span><em id="x">B</em>`)
	edited := writeFragment(t, "edited.html",
		`<em>B2</em><span>A2</span>`)

	out, err := runCommand(t, []string{"inspect", "-q", "-o", "json", original, edited}, "")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var alignments []remarkup.Alignment
	if err := json.Unmarshal([]byte(out), &alignments); err != nil {
		t.Fatalf("inspect emitted invalid JSON: %v\n%s", err, out)
	}

	want := []remarkup.Alignment{
		{OriginalIndex: 0, OriginalTag: "span", EditedIndex: 1, EditedTag: "span", Cost: 1},
		{OriginalIndex: 1, OriginalTag: "em", EditedIndex: 0, EditedTag: "em", Cost: 2},
	}
	if len(alignments) != len(want) {
		t.Fatalf("inspect returned %d pairs, want %d", len(alignments), len(want))
	}
	for i, al := range alignments {
		if al != want[i] {
			t.Errorf("alignment[%d] = %+v, want %+v", i, al, want[i])
		}
	}
}

func TestInspectCommand_Table(t *testing.T) {
	original := writeFragment(t, "original.html", `<p id="a">x</p>`)
	edited := writeFragment(t, "edited.html", `<p>x</p>`)

	out, err := runCommand(t, []string{"inspect", "-q", "-o", "table", original, edited}, "")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	upper := strings.ToUpper(out)
	for _, want := range []string{"ORIGINAL", "EDITED", "COST", "P"} {
		if !strings.Contains(upper, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "remarkup 1.2.3\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestVersionCommand_Verbose(t *testing.T) {
	out, err := runCommand(t, []string{"version", "-v"}, "")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	for _, want := range []string{"remarkup 1.2.3", "abc123", "2024-01-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose version output missing %q:\n%s", want, out)
		}
	}
}
