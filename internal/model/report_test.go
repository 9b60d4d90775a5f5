package model

import (
	stderrors "errors"
	"io/fs"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassOf(t *testing.T) {
	_, pathErr := os.Open("/definitely/not/here")
	require.Error(t, pathErr)

	assert.Equal(t, "Error", ClassOf(errors.New("")))
	assert.Equal(t, "Error", ClassOf(stderrors.New("plain")))
	assert.Equal(t, "Error", ClassOf(nil))
	assert.Equal(t, "fs.PathError", ClassOf(pathErr))
	assert.Equal(t, "fs.PathError", ClassOf(errors.Wrap(pathErr, "failed to open")))
	assert.Equal(t, "Error", ClassOf(fs.ErrNotExist))
}

func TestNewErrorReport(t *testing.T) {
	r := NewErrorReport(errors.New("boom"))
	assert.Equal(t, "Error", r.ErrorClass)
	assert.Equal(t, "boom", r.Message)
	require.NotEmpty(t, r.Trace)
	assert.Equal(t, "TestNewErrorReport", r.Trace[0].Function)

	// without a recorded stack the caller of NewErrorReport is captured
	r = NewErrorReport(stderrors.New("plain"))
	require.NotEmpty(t, r.Trace)
	assert.Equal(t, "TestNewErrorReport", r.Trace[0].Function)
	assert.Equal(t, r.Trace, r.Frames())

	r.Stack = "Error: plain\n    at foo (/tmp/foo.js:1:2)"
	require.Len(t, r.Frames(), 1)
	assert.Equal(t, "foo", r.Frames()[0].Function)
}

func TestDetachPrivateData(t *testing.T) {
	r := &ErrorReport{
		Metadata:                   Metadata{"foo": "bar"},
		PrivateMetadata:            Metadata{"baz": "quux"},
		PrivateMetadataDescription: "The contents of baz",
		PrivateMetadataRequestName: "baz",
	}
	assert.True(t, r.HasPrivateMetadata())

	p := r.DetachPrivateData()
	assert.Equal(t, PrivateData{
		Metadata:    Metadata{"baz": "quux"},
		Description: "The contents of baz",
		RequestName: "baz",
	}, p)

	assert.Nil(t, r.PrivateMetadata)
	assert.Empty(t, r.PrivateMetadataDescription)
	assert.Empty(t, r.PrivateMetadataRequestName)
	assert.False(t, r.HasPrivateMetadata())
	assert.Equal(t, Metadata{"foo": "bar"}, r.Metadata)
}

func TestHasPrivateMetadataNeedsDescription(t *testing.T) {
	r := &ErrorReport{PrivateMetadata: Metadata{"baz": "quux"}}
	assert.False(t, r.HasPrivateMetadata())
}
