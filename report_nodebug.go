// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !xchgdebug

package xchg

// defaultReporter returns the package's compile-time-selected diagnostic
// sink. Without the xchgdebug build tag, construction-failure reasons are
// silently discarded unless a caller installs its own Reporter via
// SetReporter.
func defaultReporter() Reporter {
	return noopReporter{}
}
