//go:build integration

package export

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromeRasterizer_Export(t *testing.T) {
	if os.Getenv("TEST_CHROME") == "" {
		t.Skip("TEST_CHROME not set, skipping browser integration test")
	}

	raster := NewChromeRasterizer()
	raster.ExecPath = os.Getenv("CVBUILDER_CHROME_PATH")
	exp := New(raster, nil, Options{Timeout: time.Minute})

	artifact, err := exp.Export(context.Background(), types.DefaultDocument())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(artifact.Image, []byte("\x89PNG")))
	assert.True(t, bytes.HasPrefix(artifact.PDF, []byte("%PDF")))
	assert.Equal(t, "John_Anderson_CV.pdf", artifact.Filename)
}

func TestChromeRasterizer_TargetNotFound(t *testing.T) {
	if os.Getenv("TEST_CHROME") == "" {
		t.Skip("TEST_CHROME not set, skipping browser integration test")
	}

	raster := NewChromeRasterizer()
	raster.ExecPath = os.Getenv("CVBUILDER_CHROME_PATH")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err := raster.Capture(ctx, "<html><body><p>nothing here</p></body></html>", ".cv-export-target", 794)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}
