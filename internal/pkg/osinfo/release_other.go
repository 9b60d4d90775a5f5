//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || windows)

package osinfo

func release() string {
	return ""
}
