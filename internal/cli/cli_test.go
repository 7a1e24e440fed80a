package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("utm %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

func TestImportExportLinksRoundTrip(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	src := filepath.Join(t.TempDir(), "rows.tsv")
	body := "Base URL\tSource\tMedium\tCampaign\tTerm\tContent\n" +
		"https://example.com\tnewsletter\temail\tspring\t\t\n" +
		"https://example.org\ttw\tsocial\tspring\t\tcta\n"
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runCLI(t, "--data", dataDir, "import", src)
	if !strings.Contains(out, "imported 2 row(s)") {
		t.Fatalf("import output: %q", out)
	}

	links := runCLI(t, "--data", dataDir, "links")
	if !strings.Contains(links, "utm_source=newsletter") || !strings.Contains(links, "utm_content=cta") {
		t.Fatalf("links output: %q", links)
	}

	tsv := runCLI(t, "--data", dataDir, "export")
	if !strings.HasPrefix(tsv, "Base URL\tSource") {
		t.Fatalf("export missing header: %q", tsv)
	}
	if !strings.Contains(tsv, "https://example.org\ttw\tsocial") {
		t.Fatalf("export missing row: %q", tsv)
	}

	csvOut := runCLI(t, "--data", dataDir, "export", "--format", "csv")
	if !strings.Contains(csvOut, "https://example.com,newsletter,email,spring,,") {
		t.Fatalf("csv export: %q", csvOut)
	}
}

func TestImportAppendKeepsExistingRows(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	dir := t.TempDir()

	first := filepath.Join(dir, "a.tsv")
	if err := os.WriteFile(first, []byte("https://a.example\ts1\tm\tc\t\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(dir, "b.tsv")
	if err := os.WriteFile(second, []byte("https://b.example\ts2\tm\tc\t\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	runCLI(t, "--data", dataDir, "import", first)
	runCLI(t, "--data", dataDir, "import", "--append", second)

	out := runCLI(t, "--data", dataDir, "links")
	if !strings.Contains(out, "a.example") || !strings.Contains(out, "b.example") {
		t.Fatalf("append lost rows: %q", out)
	}

	// Without --append the grid is replaced.
	runCLI(t, "--data", dataDir, "import", second)
	out = runCLI(t, "--data", dataDir, "links")
	if strings.Contains(out, "a.example") {
		t.Fatalf("replace kept old rows: %q", out)
	}
}

func TestResetClearsGrid(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	src := filepath.Join(t.TempDir(), "rows.tsv")
	if err := os.WriteFile(src, []byte("https://a.example\ts\tm\tc\t\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runCLI(t, "--data", dataDir, "import", src)
	runCLI(t, "--data", dataDir, "reset")

	out := runCLI(t, "--data", dataDir, "links")
	if strings.TrimSpace(out) != "" {
		t.Fatalf("links after reset: %q", out)
	}
}
