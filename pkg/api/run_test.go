package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/scratchdata/linkfeed/pkg/config"
)

func TestRunAPIStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		RunAPI(ctx, config.API{Port: 0}, http.NotFoundHandler())
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunAPI did not return after cancel")
	}
}
