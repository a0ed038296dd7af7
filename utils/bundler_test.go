package utils

import (
	"archive/zip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coursehub/config"

	"github.com/stretchr/testify/assert"
)

func setupBundleEnv(t *testing.T) {
	t.Helper()
	config.LoadConfig()
	config.AppConfig.TempDir = t.TempDir()
	config.AppConfig.AllowPrivateHosts = true
	config.AppConfig.MaxFileSize = 1024
	config.AppConfig.MaxTotalSize = 10 * 1024
}

func newAssetServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/small"):
			w.Write([]byte(strings.Repeat("a", 100)))
		case r.URL.Path == "/big.jpg":
			w.Write([]byte(strings.Repeat("b", 5000)))
		case r.URL.Path == "/missing.jpg":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Write([]byte("ok"))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchResourceToFile(t *testing.T) {
	setupBundleEnv(t)
	server := newAssetServer(t)
	client := NewDownloadClient()

	dest := filepath.Join(t.TempDir(), "small.jpg")
	written, err := FetchResourceToFile(context.Background(), client, server.URL+"/small1.jpg", dest, 1024)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), written)
	assert.FileExists(t, dest)
}

func TestFetchResourceToFileEnforcesSizeCap(t *testing.T) {
	setupBundleEnv(t)
	server := newAssetServer(t)
	client := NewDownloadClient()

	dest := filepath.Join(t.TempDir(), "big.jpg")
	_, err := FetchResourceToFile(context.Background(), client, server.URL+"/big.jpg", dest, 1024)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.NoFileExists(t, dest)
}

func TestFetchResourceToFileRejectsNon200(t *testing.T) {
	setupBundleEnv(t)
	server := newAssetServer(t)
	client := NewDownloadClient()

	dest := filepath.Join(t.TempDir(), "missing.jpg")
	_, err := FetchResourceToFile(context.Background(), client, server.URL+"/missing.jpg", dest, 1024)
	assert.Error(t, err)
	assert.NoFileExists(t, dest)
}

func TestFetchGallerySkipsOversizeKeepsDeterministicNames(t *testing.T) {
	setupBundleEnv(t)
	server := newAssetServer(t)
	client := NewDownloadClient()

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer workspace.Cleanup()

	urls := []string{
		server.URL + "/small1.jpg",
		server.URL + "/big.jpg", // exceeds the per-file cap
		server.URL + "/small2.jpg",
	}

	files := workspace.FetchGallery(context.Background(), client, urls)
	assert.Len(t, files, 2)

	// Names follow the input index, so the skipped second URL leaves a gap
	assert.Equal(t, "image_001.jpg", filepath.Base(files[0]))
	assert.Equal(t, "image_003.jpg", filepath.Base(files[1]))
}

func TestFetchGallerySkipsPolicyViolations(t *testing.T) {
	setupBundleEnv(t)
	config.AppConfig.AllowPrivateHosts = false
	server := newAssetServer(t)
	client := NewDownloadClient()

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer workspace.Cleanup()

	// httptest binds to loopback, so with the default policy every URL
	// is refused before any fetch
	files := workspace.FetchGallery(context.Background(), client, []string{server.URL + "/small1.jpg"})
	assert.Empty(t, files)
}

func TestFetchGalleryStopsAtTotalBudget(t *testing.T) {
	setupBundleEnv(t)
	config.AppConfig.MaxTotalSize = 250 // fits two 100-byte files, not three
	server := newAssetServer(t)
	client := NewDownloadClient()

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer workspace.Cleanup()

	urls := []string{
		server.URL + "/small1.jpg",
		server.URL + "/small2.jpg",
		server.URL + "/small3.jpg",
		server.URL + "/small4.jpg",
	}

	files := workspace.FetchGallery(context.Background(), client, urls)
	assert.Len(t, files, 2)
}

func TestFetchBlockCreatesMaterialSubfolders(t *testing.T) {
	setupBundleEnv(t)
	server := newAssetServer(t)
	client := NewDownloadClient()

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer workspace.Cleanup()

	materials := []BundleMaterial{
		{
			ID:   "1",
			Name: "Intro Video",
			Resources: []BundleResource{
				{URL: server.URL + "/small1", Type: "video", Name: "Intro Clip"},
				{URL: server.URL + "/small2", Type: "document", Name: "Notes"},
			},
		},
	}

	files := workspace.FetchBlock(context.Background(), client, materials)
	assert.Len(t, files, 2)

	rel, err := filepath.Rel(workspace.Dir, files[0])
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("Intro_Video", "Intro_Clip.mp4"), rel)

	rel, err = filepath.Rel(workspace.Dir, files[1])
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("Intro_Video", "Notes.pdf"), rel)
}

func TestCreateArchivePreservesRelativePaths(t *testing.T) {
	setupBundleEnv(t)

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer workspace.Cleanup()

	sub := filepath.Join(workspace.Dir, "Material_A")
	assert.NoError(t, os.MkdirAll(sub, 0o755))

	fileA := filepath.Join(sub, "doc.pdf")
	fileB := filepath.Join(workspace.Dir, "image_001.jpg")
	assert.NoError(t, os.WriteFile(fileA, []byte("pdf"), 0o644))
	assert.NoError(t, os.WriteFile(fileB, []byte("jpg"), 0o644))

	zipPath, err := workspace.CreateArchive("bundle.zip", []string{fileA, fileB})
	assert.NoError(t, err)

	reader, err := zip.OpenReader(zipPath)
	assert.NoError(t, err)
	defer reader.Close()

	names := []string{}
	for _, entry := range reader.File {
		names = append(names, entry.Name)
	}
	assert.ElementsMatch(t, []string{"Material_A/doc.pdf", "image_001.jpg"}, names)
}

func TestWorkspaceCleanupRemovesEverything(t *testing.T) {
	setupBundleEnv(t)

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(filepath.Join(workspace.Dir, "leftover.bin"), []byte("x"), 0o644))

	workspace.Cleanup()
	assert.NoDirExists(t, workspace.Dir)

	// Second call is a no-op
	workspace.Cleanup()
}

func TestWorkspaceNamesAreUnique(t *testing.T) {
	setupBundleEnv(t)

	a, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer a.Cleanup()

	b, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer b.Cleanup()

	assert.NotEqual(t, a.Dir, b.Dir)
}

func TestSweepStaleWorkspaces(t *testing.T) {
	root := t.TempDir()

	stale := filepath.Join(root, "bundle_stale")
	fresh := filepath.Join(root, "bundle_fresh")
	unrelated := filepath.Join(root, "uploads")
	for _, dir := range []string{stale, fresh, unrelated} {
		assert.NoError(t, os.MkdirAll(dir, 0o755))
	}

	old := time.Now().Add(-2 * time.Hour)
	assert.NoError(t, os.Chtimes(stale, old, old))

	SweepStaleWorkspaces(root, time.Hour)

	assert.NoDirExists(t, stale)
	assert.DirExists(t, fresh)
	assert.DirExists(t, unrelated)
}

func TestSweepStaleWorkspacesMissingRoot(t *testing.T) {
	// Must not panic on a nonexistent root
	SweepStaleWorkspaces(filepath.Join(t.TempDir(), "nope"), time.Hour)
}

func TestFetchGalleryHonorsCancellation(t *testing.T) {
	setupBundleEnv(t)
	server := newAssetServer(t)
	client := NewDownloadClient()

	workspace, err := NewBundleWorkspace()
	assert.NoError(t, err)
	defer workspace.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	urls := []string{}
	for i := 0; i < 5; i++ {
		urls = append(urls, fmt.Sprintf("%s/small%d.jpg", server.URL, i))
	}

	files := workspace.FetchGallery(ctx, client, urls)
	assert.Empty(t, files)
}
