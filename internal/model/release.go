package model

import "strings"

const (
	ReleaseStageBeta   = "beta"
	ReleaseStageDev    = "dev"
	ReleaseStageStable = "stable"
)

// ReleaseStage derives the release channel of the host from its version string.
func ReleaseStage(version string) string {
	switch {
	case strings.Contains(version, "beta"):
		return ReleaseStageBeta
	case strings.Contains(version, "dev"):
		return ReleaseStageDev
	default:
		return ReleaseStageStable
	}
}
