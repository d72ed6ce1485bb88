package yocto

import (
	"path/filepath"
	"strings"
)

// FailureKind identifies the bitbake task whose logfile recorded a failure.
// The kind doubles as the issue label for the failure.
type FailureKind string

// The standard bitbake tasks, see
// https://docs.yoctoproject.org/ref-manual/tasks.html.
const (
	KindDoBuild              FailureKind = "do_build"
	KindDoCompile            FailureKind = "do_compile"
	KindDoCompilePtestBase   FailureKind = "do_compile_ptest_base"
	KindDoConfigure          FailureKind = "do_configure"
	KindDoConfigurePtestBase FailureKind = "do_configure_ptest_base"
	KindDoDeploy             FailureKind = "do_deploy"
	KindDoFetch              FailureKind = "do_fetch"

	// KindMisc is the fallback when the task cannot be determined.
	KindMisc FailureKind = "misc"
)

// classifyOrder fixes the resolution order of the substring match below.
// do_compile is checked before do_compile_ptest_base, so a stem containing
// the longer token classifies as do_compile on every run.
var classifyOrder = []FailureKind{
	KindDoBuild,
	KindDoCompile,
	KindDoCompilePtestBase,
	KindDoConfigure,
	KindDoConfigurePtestBase,
	KindDoDeploy,
	KindDoFetch,
}

// Label returns the issue label for the kind.
func (k FailureKind) Label() string { return string(k) }

// ClassifyLogfile determines the failure kind from a bitbake logfile name
// such as log.do_fetch.21616, matching known task names against the file
// stem. An unknown task returns KindMisc and false so callers can warn.
func ClassifyLogfile(name string) (FailureKind, bool) {
	stem := logfileStem(name)
	for _, k := range classifyOrder {
		if strings.Contains(stem, string(k)) {
			return k, true
		}
	}
	return KindMisc, false
}

// logfileStem returns the base name without its final extension, so
// /path/to/log.do_fetch.21616 becomes log.do_fetch.
func logfileStem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
