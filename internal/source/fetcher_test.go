package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/saulo-duarte/enade-questoes/internal/source"
)

func fastFetcher(attempts int) *source.Fetcher {
	return source.NewFetcher(&http.Client{Timeout: 2 * time.Second}, source.RetryPolicy{
		MaxAttempts:       attempts,
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	}, 1024)
}

func TestFetcherRetriesTransientStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent deveria ser enviado")
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	body, err := fastFetcher(3).Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get falhou: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("corpo incorreto: %q", body)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("esperado 3 tentativas, recebido %d", calls)
	}
}

func TestFetcherDoesNotRetryNotFound(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fastFetcher(3).Get(context.Background(), srv.URL)
	if !errors.Is(err, source.ErrUnexpectedStatus) {
		t.Errorf("esperado ErrUnexpectedStatus, recebido %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("404 não deveria ser repetido, tentativas: %d", calls)
	}
}

func TestFetcherLimitsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 4096))
	}))
	defer srv.Close()

	body, err := fastFetcher(1).Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get falhou: %v", err)
	}
	if len(body) != 1024 {
		t.Errorf("corpo deveria ser limitado a 1024 bytes, recebido %d", len(body))
	}
}
