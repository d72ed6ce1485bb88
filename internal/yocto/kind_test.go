package yocto

import "testing"

func TestClassifyLogfile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FailureKind
		known bool
	}{
		{"fetch", "log.do_fetch.21616", KindDoFetch, true},
		{"build", "log.do_build.1", KindDoBuild, true},
		{"configure", "log.do_configure.99", KindDoConfigure, true},
		{"deploy", "log.do_deploy.4", KindDoDeploy, true},
		{"full path", "/app/yocto/build/tmp/work/x86_64-linux/sqlite3-native/3.43.2/temp/log.do_fetch.21616", KindDoFetch, true},
		{"unknown task", "log.some_custom_task.21616", KindMisc, false},
		{"empty", "", KindMisc, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ClassifyLogfile(tt.input)
			if got != tt.want || known != tt.known {
				t.Errorf("ClassifyLogfile(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, known, tt.want, tt.known)
			}
		})
	}
}

// A stem containing several task tokens must classify the same way on
// every run: resolution order is the declaration order of the kinds.
func TestClassifyLogfile_ResolutionOrder(t *testing.T) {
	got, known := ClassifyLogfile("log.do_compile_ptest_base.1")
	if !known {
		t.Fatal("expected a known kind")
	}
	if got != KindDoCompile {
		t.Errorf("ClassifyLogfile() = %v, want %v", got, KindDoCompile)
	}
}

func TestLabel(t *testing.T) {
	if KindDoFetch.Label() != "do_fetch" {
		t.Errorf("Label() = %q", KindDoFetch.Label())
	}
	if KindMisc.Label() != "misc" {
		t.Errorf("Label() = %q", KindMisc.Label())
	}
}
