package gateways

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/saclient/internal/domain/entities"
	"github.com/ochairo/saclient/internal/testutil"
)

func TestZipExtractor_Extract(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "SAClientUtil.zip")
	testutil.WriteZip(t, archive, map[string]string{
		"SAClientUtil.8.0.1450/":                "",
		"SAClientUtil.8.0.1450/version.info":    "8.0.1450\n",
		"SAClientUtil.8.0.1450/bin/appscan.sh":  "#!/bin/sh\necho hi\n",
		"SAClientUtil.8.0.1450/bin/appscan.bat": "@echo hi\r\n",
		"SAClientUtil.8.0.1450/lib/deep/x.jar":  "jar",
	})

	dest := filepath.Join(tmp, "install")
	require.NoError(t, NewZipExtractor().Extract(context.Background(), archive, dest))

	version, err := os.ReadFile(filepath.Join(dest, "SAClientUtil.8.0.1450", "version.info"))
	require.NoError(t, err)
	assert.Equal(t, "8.0.1450\n", string(version))
	assert.FileExists(t, filepath.Join(dest, "SAClientUtil.8.0.1450", "lib", "deep", "x.jar"))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dest, "SAClientUtil.8.0.1450", "bin", "appscan.sh"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode().Perm()&0100, "shell script should be executable")
	}
}

func TestZipExtractor_Extract_PathTraversal(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "evil.zip")
	testutil.WriteZip(t, archive, map[string]string{
		"../escaped.txt": "nope",
	})

	dest := filepath.Join(tmp, "install")
	err := NewZipExtractor().Extract(context.Background(), archive, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file path in archive")
	assert.NoFileExists(t, filepath.Join(tmp, "escaped.txt"))
}

func TestZipExtractor_Extract_NotAZip(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "SAClientUtil.zip")
	require.NoError(t, os.WriteFile(archive, []byte("<html>maintenance</html>"), 0600))

	err := NewZipExtractor().Extract(context.Background(), archive, tmp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open zip")
}

func TestZipExtractor_Extract_Cancelled(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "SAClientUtil.zip")
	testutil.WriteZip(t, archive, map[string]string{"SAClientUtil/version.info": "1.0.0"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewZipExtractor().Extract(ctx, archive, filepath.Join(tmp, "install"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestZipExtractor_Extract_EntryLimit(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "at limit", content: strings.Repeat("x", 16)},
		{name: "over limit", content: strings.Repeat("x", 17), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			archive := filepath.Join(tmp, "SAClientUtil.zip")
			testutil.WriteZip(t, archive, map[string]string{"SAClientUtil/lib/big.jar": tt.content})

			extractor := NewZipExtractor()
			extractor.maxEntry = 16
			dest := filepath.Join(tmp, "install")
			target := filepath.Join(dest, "SAClientUtil", "lib", "big.jar")

			err := extractor.Extract(context.Background(), archive, dest)
			if tt.wantErr {
				require.ErrorIs(t, err, entities.ErrResourceExhausted)
				assert.NoFileExists(t, target)
				return
			}
			require.NoError(t, err)
			got, err := os.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
		})
	}
}
