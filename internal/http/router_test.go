package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sentinela/gateway/internal/ai"
	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/config"
	"github.com/sentinela/gateway/internal/http/middleware"
	"github.com/sentinela/gateway/internal/service"
	"github.com/sentinela/gateway/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type upstream struct {
	hits  int32
	paths chan string
}

func newUpstream(t *testing.T) (*httptest.Server, *upstream) {
	t.Helper()
	u := &upstream{paths: make(chan string, 64)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.hits, 1)
		select {
		case u.paths <- r.Host + " " + r.URL.RequestURI():
		default:
		}
		switch r.URL.Path {
		case "/llamadas":
			_, _ = io.WriteString(w, `{"llamadas":[{"id":1,"fecha":"2025-01-01","hora":"08:30","telefono":"5512345678","resumen":"x"}]}`)
		case "/users":
			if r.Method == http.MethodPost {
				_, _ = io.WriteString(w, `{"id":5,"email":"x@y.mx","is_admin":false}`)
				return
			}
			_, _ = io.WriteString(w, `[{"id":1,"email":"a@b.mx","is_admin":true}]`)
		case "/dangerous-words/9":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Palabra no encontrada"}`)
		case "/llamadas-por-dia":
			_, _ = io.WriteString(w, `[{"fecha":"2025-01-01","llamadas":1}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, u
}

func newRouter(t *testing.T, cfg config.Config, backendURL string) *gin.Engine {
	t.Helper()
	client := backend.New(backendURL, 5*time.Second, 0)
	notes := service.NewNotes()
	cfg.BackendURL = backendURL
	if cfg.PlaceholderPhoto == "" {
		cfg.PlaceholderPhoto = "/images/user/user-placeholder.png"
	}
	return Router(cfg, Deps{
		Backend:   client,
		Dashboard: &service.Dashboard{
			Backend:  client,
			Enricher: ai.MockEnricher{},
			Notes:    notes,
			Logger:   zerolog.Nop(),
		},
		Notes:    notes,
		Sessions: session.NewTracker(10 * time.Minute),
		Logger:   zerolog.Nop(),
	})
}

func do(r *gin.Engine, method, target, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)
	if w := do(r, http.MethodGet, "/healthz", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	down := newRouter(t, config.Config{Env: "prod"}, "http://127.0.0.1:1")
	w := do(down, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), "UPSTREAM_UNAVAILABLE") {
		t.Fatalf("expected 503, got %d %s", w.Code, w.Body.String())
	}
}

func TestWidgetWithoutPINIsFailedEnvelope(t *testing.T) {
	srv, up := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)
	w := do(r, http.MethodGet, "/api/widgets/hourly", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var env struct {
		State string `json:"state"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.State != "failed" || env.Error != "No se ha seleccionado un PIN." {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if atomic.LoadInt32(&up.hits) != 0 {
		t.Fatalf("expected no upstream request")
	}
}

func TestSessionPINThenWidget(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)

	w := do(r, http.MethodPost, "/api/session", `{"pin":"666"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()

	w = do(r, http.MethodGet, "/api/widgets/hourly", "", func(req *http.Request) {
		for _, c := range cookies {
			req.AddCookie(c)
		}
	})
	var env struct {
		State string `json:"state"`
		Data  struct {
			Buckets []int `json:"buckets"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.State != "ready" || len(env.Data.Buckets) != 24 || env.Data.Buckets[8] != 1 {
		t.Fatalf("unexpected widget: %s", w.Body.String())
	}
}

func TestSessionCreateValidation(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)
	w := do(r, http.MethodPost, "/api/session", `{"pin":"  "}`, nil)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "VALIDATION_ERROR") {
		t.Fatalf("expected validation error, got %d %s", w.Code, w.Body.String())
	}
}

func TestNotesOverlayRecentCalls(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)
	sid := func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sid-notes"})
		req.Header.Set(middleware.PinHeader, "666")
	}
	if w := do(r, http.MethodPut, "/api/calls/1/note", `{"note":"llamar de nuevo"}`, sid); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := do(r, http.MethodGet, "/api/widgets/recent-calls", "", sid)
	if !strings.Contains(w.Body.String(), `"nota_analista":"llamar de nuevo"`) {
		t.Fatalf("expected note in recent calls: %s", w.Body.String())
	}
}

func TestAdminRoutes(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod", AdminKey: "k"}, srv.URL)

	if w := do(r, http.MethodGet, "/api/users", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", w.Code)
	}
	key := func(req *http.Request) { req.Header.Set(middleware.AdminKeyHeader, "k") }
	if w := do(r, http.MethodGet, "/api/users", "", key); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/users", `{"email":"nope"}`, key); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/users", `{"email":"x@y.mx"}`, key); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	w := do(r, http.MethodDelete, "/api/dangerous-words/9", "", key)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Palabra no encontrada") {
		t.Fatalf("expected upstream 404 detail, got %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodDelete, "/api/users/abc", "", key); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestLadaRoute(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)
	w := do(r, http.MethodGet, "/api/lada/5512345678", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"lada":"55"`) {
		t.Fatalf("unexpected lada response: %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/lada/0", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPhotoFallsBackToPlaceholder(t *testing.T) {
	srv, _ := newUpstream(t)
	r := newRouter(t, config.Config{Env: "prod"}, srv.URL)
	w := do(r, http.MethodGet, "/api/photos/666", "", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/images/user/user-placeholder.png" {
		t.Fatalf("expected redirect to placeholder, got %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestDevProxyForwardsKnownPrefixes(t *testing.T) {
	srv, up := newUpstream(t)
	cfg := config.Config{Env: "dev", ProxyPrefixes: config.DefaultProxyPrefixes}
	r := newRouter(t, cfg, srv.URL)

	w := do(r, http.MethodGet, "/llamadas-por-dia?pin=666", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"llamadas":1`) {
		t.Fatalf("expected proxied response, got %d %s", w.Code, w.Body.String())
	}
	got := <-up.paths
	host := strings.TrimPrefix(srv.URL, "http://")
	if got != host+" /llamadas-por-dia?pin=666" {
		t.Fatalf("unexpected upstream request: %s", got)
	}

	if w := do(r, http.MethodGet, "/unknown", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown prefix, got %d", w.Code)
	}
}

func TestDevProxyMatches(t *testing.T) {
	p, err := NewDevProxy("http://localhost:8000", []string{"llamadas", "llamadas-por-dia"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Matches("/llamadas-por-dia") || !p.Matches("/llamadas/1") || p.Matches("/llamadasx") || p.Matches("/") {
		t.Fatalf("unexpected prefix matching")
	}
}
