package gh

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestRunURL(t *testing.T) {
	got := RunURL("https://github.com/luftkode/distro-template", "7858139663")
	want := "https://github.com/luftkode/distro-template/actions/runs/7858139663"
	if got != want {
		t.Errorf("RunURL() = %q, want %q", got, want)
	}
}

func TestJobURL(t *testing.T) {
	run := "https://github.com/luftkode/distro-template/actions/runs/7858139663"
	got := JobURL(run, "21442749267")
	want := run + "/job/21442749267"
	if got != want {
		t.Errorf("JobURL() = %q, want %q", got, want)
	}
}

func TestCheckVersionOutput(t *testing.T) {
	ok := "gh version 2.43.1 (2024-01-31)\nhttps://github.com/cli/cli/releases/tag/v2.43.1"
	if err := checkVersionOutput(ok); err != nil {
		t.Errorf("expected 2.43.1 to pass, got %v", err)
	}

	newer := "gh version 2.63.0 (2024-11-13)"
	if err := checkVersionOutput(newer); err != nil {
		t.Errorf("expected 2.63.0 to pass, got %v", err)
	}

	old := "gh version 2.4.0 (2021-11-21)\nhttps://github.com/cli/cli/releases/tag/v2.4.0"
	if err := checkVersionOutput(old); !errors.Is(err, ErrVersionTooOld) {
		t.Errorf("expected ErrVersionTooOld for 2.4.0, got %v", err)
	}

	if err := checkVersionOutput("not gh output at all"); err == nil {
		t.Error("expected an error for unparseable version output")
	}
}

func TestParseIssueBodies(t *testing.T) {
	data := `[{"body":"first body"},{"body":"second body"}]`
	bodies, err := parseIssueBodies([]byte(data))
	if err != nil {
		t.Fatalf("parseIssueBodies() error: %v", err)
	}
	if len(bodies) != 2 || bodies[0] != "first body" || bodies[1] != "second body" {
		t.Errorf("parseIssueBodies() = %v", bodies)
	}

	if _, err := parseIssueBodies([]byte("not json")); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestParseLabelNames(t *testing.T) {
	data := `[{"name":"bug"},{"name":"ci-failure"}]`
	names, err := parseLabelNames([]byte(data))
	if err != nil {
		t.Fatalf("parseLabelNames() error: %v", err)
	}
	if len(names) != 2 || names[0] != "bug" || names[1] != "ci-failure" {
		t.Errorf("parseLabelNames() = %v", names)
	}
}

func TestFake_CannedAndSynthetic(t *testing.T) {
	fake := NewFake("https://github.com/org/repo", slog.New(slog.NewTextHandler(io.Discard, nil)))
	fake.RunSummaries = map[string]string{"1": "canned summary"}

	got, err := fake.RunSummary(context.Background(), "", "1")
	if err != nil || got != "canned summary" {
		t.Errorf("RunSummary() = %q, %v", got, err)
	}

	got, err = fake.RunSummary(context.Background(), "", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "run_id=2") {
		t.Errorf("synthetic summary = %q", got)
	}
}

func TestFake_CreateIssueEnsuresLabels(t *testing.T) {
	fake := NewFake("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	fake.Labels = []string{"existing"}

	err := fake.CreateIssue(context.Background(), "", "title", "body", []string{"existing", "fresh"})
	if err != nil {
		t.Fatalf("CreateIssue() error: %v", err)
	}
	if len(fake.CreatedLabels) != 1 || fake.CreatedLabels[0] != "fresh" {
		t.Errorf("CreatedLabels = %v, want only the missing label", fake.CreatedLabels)
	}
	if len(fake.CreatedIssues) != 1 {
		t.Fatalf("CreatedIssues = %v", fake.CreatedIssues)
	}
	if fake.CreatedIssues[0].Title != "title" {
		t.Errorf("recorded title = %q", fake.CreatedIssues[0].Title)
	}
}
