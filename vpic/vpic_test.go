package vpic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/parts-pile/vehicle-filter/vehicle"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", Timeout: 5 * time.Second})
}

func TestGetMakes(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Count":2,"Results":[{"MakeId":1,"MakeName":"Toyota","VehicleTypeName":"Passenger Car"},{"MakeId":460,"MakeName":"FORD"}]}`))
	})

	makes, err := c.GetMakes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/GetMakesForVehicleType/car", gotPath)
	assert.Equal(t, "format=json", gotQuery)
	assert.Equal(t, []vehicle.Make{{ID: 1, Name: "Toyota"}, {ID: 460, Name: "FORD"}}, makes)
}

func TestGetModels(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"Results":[{"Make_ID":1,"Make_Name":"Toyota","Model_ID":2469,"Model_Name":"Camry"}]}`))
	})

	models, err := c.GetModels(context.Background(), "1", "2020")
	require.NoError(t, err)

	assert.Equal(t, "/GetModelsForMakeIdYear/makeId/1/modelyear/2020", gotPath)
	assert.Equal(t, []vehicle.Model{{Name: "Camry", MakeName: "Toyota"}}, models)
}

func TestGetModels_EmptyOrAbsentResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `{"Count":0,"Results":[]}`},
		{name: "absent", body: `{"Count":0}`},
		{name: "null", body: `{"Results":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			models, err := c.GetModels(context.Background(), "1", "2020")
			require.NoError(t, err)
			assert.NotNil(t, models)
			assert.Empty(t, models)
		})
	}
}

func TestGetModels_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	models, err := c.GetModels(context.Background(), "1", "2020")
	require.Error(t, err)
	assert.Nil(t, models)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "network response was not ok")
}

func TestGetMakes_BadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})

	_, err := c.GetMakes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestGetModels_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.GetModels(context.Background(), "1", "2020")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching models for make 1 year 2020")
}

func TestGetModels_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.GetModels(ctx, "1", "2020")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"Results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RateLimit: 0.001, RateBurst: 1})

	_, err := c.GetMakes(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.GetMakes(ctx)
	require.Error(t, err, "second call must wait for a token and hit the deadline")
	assert.Equal(t, int32(1), calls.Load())
}

func TestModelsPath(t *testing.T) {
	assert.Equal(t, "/GetModelsForMakeIdYear/makeId/1/modelyear/2020?format=json", ModelsPath("1", "2020"))
	assert.Equal(t, "/GetModelsForMakeIdYear/makeId/a%2Fb/modelyear/2020?format=json", ModelsPath("a/b", "2020"))
}

func TestClientRecordsSpans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Results":[]}`))
	}))
	t.Cleanup(srv.Close)

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { tp.Shutdown(context.Background()) })

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second, TracerProvider: tp})
	_, err := c.GetModels(context.Background(), "1", "2020")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(exporter.GetSpans()) == 1
	}, time.Second, 10*time.Millisecond)
	span := exporter.GetSpans()[0]
	assert.Equal(t, "HTTP GET", span.Name)
}
