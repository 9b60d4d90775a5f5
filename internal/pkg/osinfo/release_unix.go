//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package osinfo

import "golang.org/x/sys/unix"

func release() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}
