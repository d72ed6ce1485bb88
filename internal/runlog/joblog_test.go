package runlog

import (
	"errors"
	"testing"
)

const testJobLog = "Test template xilinx\t📦 Build yocto image\t2024-02-10T00:03:45.5797561Z ##[group]Run just --yes build-ci-image\n" +
	"Test template xilinx\t📦 Build yocto image\t2024-02-10T00:03:45.5799911Z \x1b[36;1mjust --yes build-ci-image\x1b[0m\n" +
	"Test template xilinx\t📦 Build yocto image\t2024-02-10T00:03:45.5843410Z shell: /usr/bin/bash -e {0}\n"

const testJobLogStripped = "##[group]Run just --yes build-ci-image\n" +
	"\x1b[36;1mjust --yes build-ci-image\x1b[0m\n" +
	"shell: /usr/bin/bash -e {0}\n"

func TestParse(t *testing.T) {
	got, err := Parse(testJobLog)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Job != "Test template xilinx" {
		t.Errorf("Job = %q, want %q", got.Job, "Test template xilinx")
	}
	if got.Step != "📦 Build yocto image" {
		t.Errorf("Step = %q, want %q", got.Step, "📦 Build yocto image")
	}
	if got.Date != "2024-02-10" {
		t.Errorf("Date = %q, want %q", got.Date, "2024-02-10")
	}
	if got.Lines != testJobLogStripped {
		t.Errorf("Lines = %q, want %q", got.Lines, testJobLogStripped)
	}
}

func TestParse_MalformedFirstLine(t *testing.T) {
	_, err := Parse("no prefix on this line\nsecond line")
	if !errors.Is(err, ErrMalformedPrefix) {
		t.Errorf("expected ErrMalformedPrefix, got %v", err)
	}
}

func TestParse_TimestampWithoutFraction(t *testing.T) {
	raw := "job\tstep\t2024-02-10T00:03:45Z log line\n"
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Lines != "log line\n" {
		t.Errorf("Lines = %q, want %q", got.Lines, "log line\n")
	}
}

func TestStripPrefixes_Idempotent(t *testing.T) {
	once := StripPrefixes(testJobLog)
	twice := StripPrefixes(once)
	if once != twice {
		t.Errorf("second strip changed the log:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestStripPrefixes_MixedLines(t *testing.T) {
	raw := "job\tstep\t2024-02-10T00:03:45.5797561Z prefixed line\nbare line"
	got := StripPrefixes(raw)
	want := "prefixed line\nbare line\n"
	if got != want {
		t.Errorf("StripPrefixes() = %q, want %q", got, want)
	}
}
