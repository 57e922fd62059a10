package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/lifeadvisor/api/http/handlers"
	"github.com/artem13815/lifeadvisor/pkg/advisor"
	"github.com/artem13815/lifeadvisor/pkg/health"
	"github.com/artem13815/lifeadvisor/pkg/metrics"
)

type replyFunc func(ctx context.Context, system, user string) (string, error)

func (f replyFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

func newLoggedApp(t *testing.T, buf *bytes.Buffer, model replyFunc) *fiber.App {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	collector := metrics.NewCollector()
	app := NewApp(logger)
	Register(app,
		handlers.NewChatHandler(advisor.NewService(model, advisor.Options{}), collector),
		handlers.NewHealthHandler(health.NewService()),
		collector.Handler(),
	)
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("handler blew up") })
	return app
}

func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestRequestLoggerWritesOneLinePerRequest(t *testing.T) {
	const secret = "my landlord keeps my deposit"
	var buf bytes.Buffer
	app := newLoggedApp(t, &buf, func(_ context.Context, _, user string) (string, error) {
		if strings.Contains(user, "fail") {
			return "", errors.New("quota exceeded")
		}
		return "talk to a tenant union", nil
	})

	send := func(req *nethttp.Request) *nethttp.Response {
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return resp
	}
	ok := send(chatRequest(`{"message":"` + secret + `"}`))
	failed := send(chatRequest(`{"message":"` + secret + ` fail"}`))
	send(chatRequest(`{}`))
	send(httptest.NewRequest(nethttp.MethodGet, "/boom", nil))

	require.Equal(t, nethttp.StatusOK, ok.StatusCode)
	require.Equal(t, nethttp.StatusBadGateway, failed.StatusCode)

	recs := logRecords(t, &buf)
	require.Len(t, recs, 4)

	want := []struct {
		level  string
		method string
		path   string
		status float64
		rid    string
	}{
		{"INFO", nethttp.MethodPost, "/chat", 200, ok.Header.Get(fiber.HeaderXRequestID)},
		{"ERROR", nethttp.MethodPost, "/chat", 502, failed.Header.Get(fiber.HeaderXRequestID)},
		{"WARN", nethttp.MethodPost, "/chat", 400, ""},
		{"ERROR", nethttp.MethodGet, "/boom", 500, ""},
	}
	for i, w := range want {
		rec := recs[i]
		assert.Equal(t, "http request", rec["msg"])
		assert.Equal(t, w.level, rec["level"])
		assert.Equal(t, w.method, rec["method"])
		assert.Equal(t, w.path, rec["path"])
		assert.Equal(t, w.status, rec["status"])
		assert.Contains(t, rec, "latency")
		assert.NotEmpty(t, rec["request_id"])
		if w.rid != "" {
			assert.Equal(t, w.rid, rec["request_id"])
		}
	}
	assert.Equal(t, "handler blew up", recs[3]["error"])
	assert.NotContains(t, recs[0], "error")

	assert.NotContains(t, buf.String(), secret)
	assert.NotContains(t, buf.String(), "talk to a tenant union")
}

func TestShutdownCancelsInFlightCompletion(t *testing.T) {
	entered := make(chan struct{})
	seen := make(chan error, 1)
	app := newLoggedApp(t, &bytes.Buffer{}, func(ctx context.Context, _, _ string) (string, error) {
		close(entered)
		<-ctx.Done()
		seen <- ctx.Err()
		return "", ctx.Err()
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() { served <- app.Listener(ln) }()

	type result struct {
		status int
		err    error
	}
	got := make(chan result, 1)
	go func() {
		resp, err := nethttp.Post("http://"+ln.Addr().String()+"/chat", "application/json",
			strings.NewReader(`{"message":"hold on"}`))
		if err != nil {
			got <- result{err: err}
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		got <- result{status: resp.StatusCode}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("completion was never called")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.ShutdownWithContext(ctx))

	select {
	case err := <-seen:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("completion context was not cancelled")
	}
	select {
	case r := <-got:
		require.NoError(t, r.err)
		assert.Equal(t, nethttp.StatusBadGateway, r.status)
	case <-time.After(5 * time.Second):
		t.Fatal("client got no response")
	}
	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}
