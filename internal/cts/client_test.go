package cts

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/quintus/internal/testutil"
)

func TestClient_URL(t *testing.T) {
	c := NewClient(nil)
	assert.Equal(t,
		"https://scaife.perseus.org/library/urn:cts:greekLit:tlg2046.tlg001.perseus-grc2/cts-api-xml/",
		c.URL(DefaultURN))
	assert.Empty(t, c.CachePath(DefaultURN))
}

func TestClient_Fetch(t *testing.T) {
	srv := testutil.NewCTSServer(t, testutil.SampleTEI)
	c := NewClient(&Config{Endpoint: srv.URL + "/library/{urn}/cts-api-xml/"})

	lines, err := c.Fetch(context.Background(), testutil.SampleURN)
	require.NoError(t, err)
	assert.Len(t, lines, 5)
	assert.Equal(t, []string{"GET /library/" + testutil.SampleURN + "/cts-api-xml/"}, srv.Calls())
}

func TestClient_FetchUsesCache(t *testing.T) {
	srv := testutil.NewCTSServer(t, testutil.SampleTEI)
	cacheDir := filepath.Join(t.TempDir(), "cache")
	c := NewClient(&Config{
		Endpoint: srv.URL + "/library/{urn}/cts-api-xml/",
		CacheDir: cacheDir,
	})

	first, err := c.Fetch(context.Background(), testutil.SampleURN)
	require.NoError(t, err)
	testutil.AssertFileExists(t, filepath.Join(cacheDir, "urn_cts_greekLit_tlg2046_tlg001_perseus-grc2.xml"))

	second, err := c.Fetch(context.Background(), testutil.SampleURN)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, srv.Calls(), 1, "second fetch should be served from cache")
}

func TestClient_FetchStatusError(t *testing.T) {
	srv := testutil.NewStatusServer(t, http.StatusNotFound)
	cacheDir := t.TempDir()
	c := NewClient(&Config{Endpoint: srv.URL + "/library/{urn}/", CacheDir: cacheDir})

	_, err := c.Fetch(context.Background(), "urn:cts:none")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	testutil.AssertFileNotExists(t, c.CachePath("urn:cts:none"))
}

func TestClient_FetchEmptyURN(t *testing.T) {
	_, err := NewClient(nil).Fetch(context.Background(), "")
	assert.Error(t, err)
}
