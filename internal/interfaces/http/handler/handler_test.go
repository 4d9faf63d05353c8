package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/infrastructure/simulation"
	"github.com/shopsim/backend/internal/infrastructure/store"
	"github.com/shopsim/backend/internal/interfaces/http/middleware"
	"github.com/shopsim/backend/internal/interfaces/http/router"
)

// stubRand replays scripted draws; past the script it returns fixed values.
type stubRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *stubRand) Float64() float64 {
	if r.fi < len(r.floats) {
		v := r.floats[r.fi]
		r.fi++
		return v
	}
	return 0.99
}

func (r *stubRand) Intn(n int) int {
	if r.ii < len(r.ints) {
		v := r.ints[r.ii] % n
		r.ii++
		return v
	}
	return 0
}

// noDelay is a latency simulator with all delays disabled.
func noDelay() *simulation.Latency {
	return simulation.NewLatency(&stubRand{}, 0)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.Config{Products: 20, Users: 10}, simulation.NewRand(1))
}

// newTestRouter mounts the given registrars under the API prefix, the way
// the server wires them.
func newTestRouter(t *testing.T, registrars ...router.RouteRegistrar) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	engine := gin.New()
	r := router.NewRouter(engine)
	for _, reg := range registrars {
		r.Register(reg)
	}
	r.Setup()
	return engine
}

func performRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
