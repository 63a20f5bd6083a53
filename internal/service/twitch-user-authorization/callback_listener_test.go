package twitch_user_authorization

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"
	"twitch_prediction_manager/internal/models"

	"github.com/pkg/errors"
)

type waitResult struct {
	callback models.AuthorizationCallback
	err      error
}

func startListener(t *testing.T, timeout time.Duration) (*CallbackListener, <-chan waitResult) {
	t.Helper()

	cl := NewCallbackListener("127.0.0.1:0")
	if err := cl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan waitResult, 1)
	go func() {
		callback, err := cl.Wait(context.Background(), timeout)
		done <- waitResult{callback: callback, err: err}
	}()

	return cl, done
}

func get(t *testing.T, target string) int {
	t.Helper()

	client := &http.Client{
		Timeout:   2 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode
}

func waitFor(t *testing.T, done <-chan waitResult) waitResult {
	t.Helper()
	select {
	case res := <-done:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
		return waitResult{}
	}
}

func assertClosed(t *testing.T, addr string) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
	if err == nil {
		conn.Close()
		t.Errorf("listener on %s still accepts connections", addr)
	}
}

func TestCallbackListenerCapturesCode(t *testing.T) {
	cl, done := startListener(t, 5*time.Second)
	addr := cl.Addr()

	if status := get(t, "http://"+addr+"/?code=ABC123&state=xyz"); status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	res := waitFor(t, done)
	if res.err != nil {
		t.Fatalf("Wait: %v", res.err)
	}
	if res.callback.Code != "ABC123" || res.callback.State != "xyz" {
		t.Errorf("callback = %+v", res.callback)
	}

	assertClosed(t, addr)
}

func TestCallbackListenerMissingCode(t *testing.T) {
	cl, done := startListener(t, 300*time.Millisecond)
	addr := cl.Addr()

	if status := get(t, "http://"+addr+"/?state=xyz"); status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}

	res := waitFor(t, done)
	if !errors.Is(res.err, models.ErrNoAuthorizationCode) {
		t.Fatalf("Wait error = %v, want ErrNoAuthorizationCode", res.err)
	}
	if res.callback.Code != "" {
		t.Errorf("captured code %q, want none", res.callback.Code)
	}

	assertClosed(t, addr)
}

func TestCallbackListenerKeepsServingAfterMissingCode(t *testing.T) {
	cl, done := startListener(t, 5*time.Second)
	addr := cl.Addr()

	if status := get(t, "http://"+addr+"/"); status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if status := get(t, "http://"+addr+"/?code=second"); status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	res := waitFor(t, done)
	if res.err != nil {
		t.Fatalf("Wait: %v", res.err)
	}
	if res.callback.Code != "second" {
		t.Errorf("code = %q, want second", res.callback.Code)
	}
}

func TestCallbackListenerContextCanceled(t *testing.T) {
	cl := NewCallbackListener("127.0.0.1:0")
	if err := cl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	addr := cl.Addr()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cl.Wait(ctx, time.Minute)
	if !errors.Is(err, models.ErrNoAuthorizationCode) {
		t.Fatalf("Wait error = %v, want ErrNoAuthorizationCode", err)
	}

	assertClosed(t, addr)
}

func TestCallbackListenerPortInUse(t *testing.T) {
	first := NewCallbackListener("127.0.0.1:0")
	if err := first.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer first.ln.Close()

	second := NewCallbackListener(first.Addr())
	if err := second.Start(); err == nil {
		second.ln.Close()
		t.Fatal("expected bind error on a busy port")
	}
}

func TestCallbackListenerWaitWithoutStart(t *testing.T) {
	cl := NewCallbackListener("127.0.0.1:0")

	if _, err := cl.Wait(context.Background(), time.Second); err == nil {
		t.Fatal("expected error")
	}
}

func TestCallbackListenerKeepsCodeWhenShutdownTimesOut(t *testing.T) {
	previous := shutdownTimeout
	shutdownTimeout = 50 * time.Millisecond
	t.Cleanup(func() { shutdownTimeout = previous })

	cl, done := startListener(t, 5*time.Second)
	addr := cl.Addr()

	// a half-sent request keeps a connection open past the shutdown deadline
	stalled, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer stalled.Close()
	if _, err := stalled.Write([]byte("GET /?code=stalled HTTP/1.1\r\nHost: x\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if status := get(t, "http://"+addr+"/?code=ABC123"); status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	res := waitFor(t, done)
	if res.err != nil {
		t.Fatalf("Wait: %v", res.err)
	}
	if res.callback.Code != "ABC123" {
		t.Errorf("code = %q, want ABC123", res.callback.Code)
	}
}
