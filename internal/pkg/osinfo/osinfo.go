// Package osinfo describes the machine the host runs on.
package osinfo

import (
	"runtime"
	"sync"
)

var (
	once    sync.Once
	version string
)

// Version returns "<platform>-<arch>-<release>", e.g. "linux-amd64-6.1.0-13-amd64".
// The release part is empty when the kernel cannot be queried.
func Version() string {
	once.Do(func() {
		version = runtime.GOOS + "-" + runtime.GOARCH + "-" + release()
	})
	return version
}
