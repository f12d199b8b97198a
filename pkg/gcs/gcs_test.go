package gcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakap/upskill/pkg/gcs"
)

func TestStorageURL(t *testing.T) {
	got, err := gcs.StorageURL("gs://my-bucket/path/to/object.txt")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/my-bucket/path/to/object.txt", got)
}

func TestStorageURL_Malformed(t *testing.T) {
	for _, uri := range []string{"", "my-bucket/object.txt", "s3://bucket/key"} {
		_, err := gcs.StorageURL(uri)
		assert.Error(t, err, "uri %q", uri)
	}
}
