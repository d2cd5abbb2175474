// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build xchgdebug

package xchg

import (
	"fmt"
	"os"
)

// defaultReporter returns the package's compile-time-selected diagnostic
// sink. Built with the xchgdebug tag, construction-failure reasons are
// printed to standard output (spec.md §6: "A compile-time flag enables a
// debug sink that prints tagged construction failure reasons to standard
// output.").
func defaultReporter() Reporter {
	return stdoutReporter{}
}

type stdoutReporter struct{}

func (stdoutReporter) Report(reason, detail string) {
	fmt.Fprintf(os.Stdout, "xchg: %s: %s\n", reason, detail)
}
