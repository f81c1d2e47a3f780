package app

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/agentcard/internal/config"
	imagepkg "github.com/youruser/agentcard/internal/image"
	"github.com/youruser/agentcard/internal/logger"
)

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(8, 8, color.White)))
	return buf.Bytes()
}

func TestAssets_FilesAndCachedRemote(t *testing.T) {
	data := pngData(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "classic"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "classic", "front.png"), data, 0o644))

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Assets.Root = root
	cfg.Cache.Enabled = true
	cfg.Cache.Address = mr.Addr()

	src, closeFn := Assets(context.Background(), cfg, logger.NewTestLogger(t))
	defer closeFn()

	_, err := src.Load(context.Background(), "classic/front.png")
	require.NoError(t, err)
	_, err = src.Load(context.Background(), "classic/back.png")
	assert.ErrorIs(t, err, imagepkg.ErrNotFound)

	for i := 0; i < 2; i++ {
		_, err = src.Load(context.Background(), srv.URL+"/photo.png")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestAssets_UnreachableCacheIsSkipped(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Assets.Root = t.TempDir()
	cfg.Cache.Enabled = true
	cfg.Cache.Address = addr

	src, closeFn := Assets(context.Background(), cfg, logger.NewTestLogger(t))
	defer closeFn()
	require.NotNil(t, src)
}
