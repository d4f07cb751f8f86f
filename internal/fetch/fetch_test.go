package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetter_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("<TEI/>"))
	}))
	defer srv.Close()

	g := NewGetter(Options{Source: "cts"})
	body, err := g.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<TEI/>", string(body))
}

func TestGetter_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such urn", http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewGetter(Options{Source: "cts"})
	_, err := g.Get(context.Background(), srv.URL+"/missing")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "cts", se.Source)
	assert.Contains(t, se.Error(), "404")
	assert.Contains(t, se.Message, "no such urn")
}

func TestGetter_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGetter(Options{Source: "dices"})
	for i := 0; i < tripAfter; i++ {
		_, err := g.Get(context.Background(), srv.URL)
		require.Error(t, err)
	}

	_, err := g.Get(context.Background(), srv.URL)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(tripAfter), calls.Load())
}

func TestGetter_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	g := NewGetter(Options{MaxBytes: 10})
	_, err := g.Get(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestGetter_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGetter(Options{}).Get(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
