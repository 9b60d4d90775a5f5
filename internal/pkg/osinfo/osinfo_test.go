package osinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.True(t, strings.HasPrefix(v, runtime.GOOS+"-"+runtime.GOARCH+"-"), "unexpected os version %q", v)
	assert.Equal(t, v, Version())
}
