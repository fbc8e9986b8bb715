// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"kmpmatch/internal/app"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEndToEndFile(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "genome.fa", ">chr1\nACGTACGT\n>chr2\nTTACGTT\n")
	pats := write(t, dir, "patterns.fa", ">p0\nACGT\n>p1\nTT\n")
	outPath := filepath.Join(dir, "out.txt")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--genome", fa,
		"--patterns", pats,
		"--output", outPath,
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "p0\tchr1\t0\n" +
		"p0\tchr1\t4\n" +
		"p1\tchr2\t0\n" +
		"p0\tchr2\t2\n" +
		"p1\tchr2\t5\n"
	if string(data) != want {
		t.Fatalf("output:\n%s\nwant:\n%s", data, want)
	}
}

func TestEndToEndStdout(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "g.fa", ">s\nAAAA\n")
	pats := write(t, dir, "p.fa", ">p\nAA\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--genome", fa,
		"--patterns", pats,
		"--output", "-",
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errBuf.String())
	}
	want := "p\ts\t0\np\ts\t1\np\ts\t2\n"
	if out.String() != want {
		t.Fatalf("stdout:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "g.fa", ">a\nACGTACGTACGTAACC\n>b\nGGTTACGTACGT\n")
	pats := write(t, dir, "p.fa", ">p0\nACGT\n>p1\nA\n>p2\nGG\n>p3\nCGTA\n>p4\nTT\n")

	run := func(workers int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--genome", fa,
			"--patterns", pats,
			"--output", "-",
			"--workers", fmt.Sprint(workers),
			"--quiet",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("workers=%d exit %d err %s", workers, code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	for _, w := range []int{2, 4, 8} {
		if got := run(w); got != serial {
			t.Fatalf("workers=%d output differs from serial\nserial:\n%s\nparallel:\n%s", w, serial, got)
		}
	}
}

func TestEmptyPatternFails(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "g.fa", ">s\nACGT\n")
	pats := write(t, dir, "p.fa", ">ok\nAC\n>empty\n>ok2\nGT\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--genome", fa,
		"--patterns", pats,
		"--output", "-",
		"--quiet",
	}, &out, &errBuf)
	if code == 0 {
		t.Fatalf("expected failure, stdout=%q", out.String())
	}
	if errBuf.Len() == 0 {
		t.Fatal("expected error message on stderr")
	}
}

func TestNoMatchesExitCode(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "g.fa", ">s\nAAAA\n")
	pats := write(t, dir, "p.fa", ">p\nGGG\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--genome", fa,
		"--patterns", pats,
		"--output", "-",
		"--quiet",
	}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit %d, want 1 for zero matches", code)
	}

	code = app.Run([]string{
		"--genome", fa,
		"--patterns", pats,
		"--output", "-",
		"--no-match-exit-code", "0",
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, want 0 with --no-match-exit-code 0", code)
	}
}

func TestUsageErrorExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--patterns", "p.fa"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2 for missing --genome", code)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "g.fa", ">s\nACGT\n")
	pats := write(t, dir, "p.fa", ">p\nCG\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--genome", fa,
		"--patterns", pats,
		"--output", "-",
		"--format", "json",
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	if !bytes.Contains(out.Bytes(), []byte(`"pattern_id": "p"`)) {
		t.Fatalf("json output missing match: %s", out.String())
	}
}
