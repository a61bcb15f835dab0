package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ShutdownRunsComponentsInReverse(t *testing.T) {
	srv := New(stdhttp.NotFoundHandler(), Options{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, zerolog.Nop())

	var order []string
	srv.OnShutdown("mongo", func(context.Context) error { order = append(order, "mongo"); return nil })
	srv.OnShutdown("redis", func(context.Context) error { order = append(order, "redis"); return nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"redis", "mongo"}, order)
}

func TestServer_ComponentErrorIsReturned(t *testing.T) {
	srv := New(stdhttp.NotFoundHandler(), Options{Addr: "127.0.0.1:0"}, zerolog.Nop())
	boom := errors.New("boom")
	srv.OnShutdown("broken", func(context.Context) error { return boom })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := srv.Run(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestServer_ListenErrorStopsComponents(t *testing.T) {
	srv := New(stdhttp.NotFoundHandler(), Options{Addr: "256.0.0.1:bad"}, zerolog.Nop())
	stopped := false
	srv.OnShutdown("mongo", func(context.Context) error { stopped = true; return nil })

	err := srv.Run(context.Background())
	require.Error(t, err)
	assert.True(t, stopped)
}
