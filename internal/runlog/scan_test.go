package runlog

import (
	"strings"
	"testing"
)

// Output of `gh run --repo=github.com/luftkode/distro-template view 7858139663`.
const testRunSummary = `
X master Use template and build image · 7858139663
Triggered via schedule about 10 hours ago

JOBS
✓ enable-ssh-agent in 5s (ID 21442747661)
✓ Test template raspberry in 19m20s (ID 21442749166)
X Test template xilinx in 5m41s (ID 21442749267)
  ✓ Set up job
  ✓ Log in to the Container registry
  ✓ Cleanup build folder before start
  ✓ Run actions/checkout@v4
  ✓ Setup Rust and Just
  ✓ 🗻 Make a templated project
  ✓ ⚙️ Run new project setup steps
  ✓ ⚒️ Build docker image
  X 📦 Build yocto image
  - 📩 Deploy image artifacts
  ✓ Docker down
  ✓ Cleanup build folder after done
  ✓ Create issue on failure
  ✓ Post Run actions/checkout@v4
  ✓ Post Log in to the Container registry
  ✓ Complete job

ANNOTATIONS
X Process completed with exit code 2.
Test template xilinx: .github#3839


To see what failed, try: gh run view 7858139663 --log-failed
View this run on GitHub: https://github.com/luftkode/distro-template/actions/runs/7858139663
`

func TestScanFailedJobs(t *testing.T) {
	ids, err := ScanFailedJobs(testRunSummary)
	if err != nil {
		t.Fatalf("ScanFailedJobs() error: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("ScanFailedJobs() = %v, want exactly one ID", ids)
	}
	if ids[0] != "21442749267" {
		t.Errorf("ScanFailedJobs()[0] = %q, want %q", ids[0], "21442749267")
	}
}

func TestScanFailedJobs_MultipleLines(t *testing.T) {
	summary := strings.Join([]string{
		"✓ Test template raspberry in 19m20s (ID 21442749166)",
		"X Test template xilinx in 5m41s (ID 21442749267)",
		"X Test template other in 5m1s (ID 01449267)",
	}, "\n")

	ids, err := ScanFailedJobs(summary)
	if err != nil {
		t.Fatalf("ScanFailedJobs() error: %v", err)
	}
	want := []string{"21442749267", "01449267"}
	if len(ids) != len(want) {
		t.Fatalf("ScanFailedJobs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ScanFailedJobs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestScanFailedJobs_Idempotent(t *testing.T) {
	first, err := ScanFailedJobs(testRunSummary)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ScanFailedJobs(testRunSummary)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(first, ",") != strings.Join(second, ",") {
		t.Errorf("results differ across runs: %v vs %v", first, second)
	}
}

func TestScanFailedJobs_NoFailures(t *testing.T) {
	ids, err := ScanFailedJobs("✓ all-green in 5s (ID 21442747661)")
	if err != nil {
		t.Fatalf("ScanFailedJobs() error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ScanFailedJobs() = %v, want none", ids)
	}
}
