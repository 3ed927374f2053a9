package elastic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusterServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"version": {"number": "8.14.0"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewElasticClient(t *testing.T) {
	srv := clusterServer(t, http.StatusOK)

	client, err := NewElasticClient(context.Background(), "", "", []string{srv.URL})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewElasticClientClusterError(t *testing.T) {
	srv := clusterServer(t, http.StatusUnauthorized)

	_, err := NewElasticClient(context.Background(), "", "", []string{srv.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster returned error")
}

func TestNewElasticClientNoHosts(t *testing.T) {
	_, err := NewElasticClient(context.Background(), "", "", nil)
	require.Error(t, err)
}
