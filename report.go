// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

// Reporter receives tagged diagnostic reasons for construction failures
// (spec.md §4.5, §9): NewInbox and NewNode emit a short uppercase tag
// (e.g. "INBOX_INCORRECT_SIZE") and a human-readable detail on every
// failure path, in addition to returning an error. Modeling the sink as
// an injected interface avoids process-wide state: the package default
// is a no-op unless a build carries the xchgdebug tag (see
// report_debug.go / report_nodebug.go) or a caller installs its own via
// SetReporter.
type Reporter interface {
	Report(reason, detail string)
}

// SetReporter installs r as the package-wide diagnostic sink for
// construction failures, overriding the compile-time default. Passing
// nil restores that default.
//
// Not safe to call concurrently with NewInbox/NewNode; call once during
// program initialization.
func SetReporter(r Reporter) {
	if r == nil {
		activeReporter = defaultReporter()
		return
	}
	activeReporter = r
}

var activeReporter Reporter = defaultReporter()

type noopReporter struct{}

func (noopReporter) Report(string, string) {}

// report emits a tagged construction-failure reason through the active
// Reporter.
func report(reason, detail string) {
	activeReporter.Report(reason, detail)
}
