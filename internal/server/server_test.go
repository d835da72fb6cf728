package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDocument() *openapi.Document {
	return openapi.Assemble([]routedoc.RouteRecord{{
		Path:    "/users/{id}",
		Methods: []string{"GET"},
		Params:  routedoc.ExtractParams("/users/{id}"),
	}})
}

func testConfig(kind Kind) *Config {
	config := DefaultConfig()
	config.Kind = kind
	config.Host = "127.0.0.1"
	config.Port = "0"
	config.ShutdownTimeout = 2 * time.Second
	return config
}

// do sends req through the server's router without a listener
func do(t *testing.T, s *Server, req *http.Request) *http.Response {
	t.Helper()
	if app := s.Fiber(); app != nil {
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec.Result()
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("CHI")
	require.NoError(t, err)
	assert.Equal(t, KindChi, kind)

	_, err = ParseKind("martini")
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	config := DefaultConfig()

	assert.Equal(t, KindGin, config.Kind)
	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, ":9090", config.Addr())
	assert.Equal(t, "/api-docs/swagger-ui", config.Base)
	assert.True(t, config.EnableRecover)
	assert.Equal(t, 30*time.Second, config.ShutdownTimeout)
}

func TestServer_Routes(t *testing.T) {
	for _, kind := range SupportedKinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, err := New(testDocument(), testConfig(kind))
			require.NoError(t, err)

			t.Run("page", func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/api-docs/swagger-ui", nil))
				defer resp.Body.Close()

				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, string(body), "SwaggerUIBundle")

				_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
				assert.NoError(t, err)
			})

			t.Run("document", func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/api-docs/swagger-ui/openapi.json", nil))
				defer resp.Body.Close()

				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Contains(t, string(body), `"/users/{id}"`)
			})

			t.Run("request id kept", func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/api-docs/swagger-ui/openapi.json", nil)
				req.Header.Set(RequestIDHeader, "abc-123")
				resp := do(t, s, req)
				defer resp.Body.Close()

				assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
			})

			t.Run("root redirects", func(t *testing.T) {
				resp := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
				defer resp.Body.Close()

				assert.Equal(t, http.StatusFound, resp.StatusCode)
				assert.Equal(t, "/api-docs/swagger-ui", resp.Header.Get("Location"))
			})
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(testDocument(), testConfig("martini"))
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))

	_, err = New(nil, testConfig(KindGin))
	assert.True(t, errors.IsCode(err, errors.ServerErrorCode))

	config := testConfig(KindChi)
	config.Port = "http"
	_, err = New(testDocument(), config)
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))

	config = testConfig(KindEcho)
	config.Base = "/docs?page=1"
	_, err = New(testDocument(), config)
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))
}

func TestNew_BaseCollidesWithMetrics(t *testing.T) {
	for _, kind := range SupportedKinds() {
		t.Run(string(kind), func(t *testing.T) {
			for _, base := range []string{MetricsPath, MetricsPath + "/"} {
				config := testConfig(kind)
				config.Base = base

				var err error
				require.NotPanics(t, func() {
					_, err = New(testDocument(), config)
				})
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))
				assert.Contains(t, err.Error(), "metrics endpoint")
			}

			config := testConfig(kind)
			config.Base = MetricsPath
			config.EnableMetrics = false
			_, err := New(testDocument(), config)
			assert.NoError(t, err)
		})
	}
}

func TestConfig_ValidateRootBase(t *testing.T) {
	config := testConfig(KindChi)
	config.Base = "/"
	err := config.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))
	assert.Contains(t, err.Error(), "root redirect")
}

func TestServer_RunAndShutdown(t *testing.T) {
	for _, kind := range SupportedKinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, err := New(testDocument(), testConfig(kind))
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			addrCh := make(chan string, 1)
			done := make(chan error, 1)
			go func() {
				done <- s.Run(ctx, func(addr string) { addrCh <- addr })
			}()

			var addr string
			select {
			case addr = <-addrCh:
			case err := <-done:
				t.Fatalf("server exited early: %v", err)
			case <-time.After(5 * time.Second):
				t.Fatal("server did not start")
			}

			require.Eventually(t, func() bool {
				resp, err := http.Get("http://" + addr + "/api-docs/swagger-ui/openapi.json")
				if err != nil {
					return false
				}
				defer resp.Body.Close()
				return resp.StatusCode == http.StatusOK
			}, 5*time.Second, 50*time.Millisecond)

			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server did not shut down")
			}
		})
	}
}
