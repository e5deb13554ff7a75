package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abhishtagatya/zomathon/internal/config"
	"github.com/abhishtagatya/zomathon/pkg/zomato"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewsBody = `{"reviews_count":2,"reviews_start":0,"reviews_shown":2,"user_reviews":[
 {"review":{"id":101,"rating":5,"review_text":"Loved the waffles","user":{"name":"Asha","foodie_level":"Super Foodie"}}},
 {"review":{"id":102,"rating":3,"review_text":"Slow service","user":{"name":"Ravi","foodie_level":"Foodie"}}}]}`

type fakeAPI struct {
	*httptest.Server
	hits atomic.Int32
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"categories":[{"categories":{"id":1,"name":"Delivery"}},{"categories":{"id":2,"name":"Dine-out"}}]}`)
	})
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12.9716", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.5946", r.URL.Query().Get("lon"))
		_, _ = io.WriteString(w, `{"location":{"title":"MG Road"},"nearby_restaurants":[{"restaurant":{"id":"1","name":"Truffles","location":{"address":"St Marks Rd"}}}]}`)
	})
	mux.HandleFunc("/reviews", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("res_id") != "16782899" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"code":400,"status":"Bad Request","message":"Invalid res_id"}`)
			return
		}
		_, _ = io.WriteString(w, reviewsBody)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pizza", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `{"results_found":1,"restaurants":[{"restaurant":{"id":"9","name":"Pizza Hut","cuisines":"Pizza","user_rating":{"aggregate_rating":"3.9"}}}]}`)
	})
	mux.HandleFunc("/restaurant", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":"16774318","name":"Otto Enoteca","cuisines":"Italian","currency":"$","average_cost_for_two":60,"location":{"address":"1 Fifth Avenue"},"user_rating":{"aggregate_rating":"4.0","votes":"1000"}}`)
	})
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		assert.Equal(t, "abc123", r.Header.Get("X-Zomato-API-Key"))
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(api.Close)
	return api
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		APIKey:                 "abc123",
		BaseURL:                baseURL,
		HTTPTimeout:            2 * time.Second,
		QueriesFile:            filepath.Join(t.TempDir(), "queries.yaml"),
		StorageType:            "bbolt",
		BBoltPath:              filepath.Join(t.TempDir(), "seen.db"),
		StorageTTL:             time.Hour,
		StorageCleanupInterval: time.Hour,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(cfg, nil, &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, &out
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.Error(t, err)

	cfg := testConfig(t, "http://localhost")
	cfg.APIKey = ""
	_, err = New(cfg, nil, nil)
	assert.ErrorIs(t, err, zomato.ErrMissingAPIKey)
}

func TestCategories(t *testing.T) {
	api := newFakeAPI(t)
	a, out := newTestApp(t, testConfig(t, api.URL))

	require.NoError(t, a.Categories(context.Background()))
	assert.Equal(t, "Here are all the available categories in Zomato\n1. Delivery\n2. Dine-out\n", out.String())
}

func TestNearby(t *testing.T) {
	api := newFakeAPI(t)
	a, out := newTestApp(t, testConfig(t, api.URL))

	require.NoError(t, a.Nearby(context.Background(), zomato.CoordinateString("12.9716 77.5946")))
	assert.Equal(t, "Near MG Road\n1. Truffles - St Marks Rd\n", out.String())
}

func TestNearbyMalformedCoordinateSkipsRequest(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, testConfig(t, api.URL))

	err := a.Nearby(context.Background(), zomato.CoordinateString("12.9716"))
	assert.ErrorIs(t, err, zomato.ErrInvalidCoordinate)
	assert.Zero(t, api.hits.Load())
}

func TestReviewsUnseenOnly(t *testing.T) {
	api := newFakeAPI(t)
	a, out := newTestApp(t, testConfig(t, api.URL))
	ctx := context.Background()

	require.NoError(t, a.Reviews(ctx, 16782899, ReviewsRequest{UnseenOnly: true}))
	assert.Contains(t, out.String(), "Asha - Super Foodie\nCommented : Loved the waffles\n")
	assert.Contains(t, out.String(), "Ravi - Foodie\nCommented : Slow service\n")

	out.Reset()
	require.NoError(t, a.Reviews(ctx, 16782899, ReviewsRequest{UnseenOnly: true}))
	assert.Empty(t, out.String())

	out.Reset()
	require.NoError(t, a.Reviews(ctx, 16782899, ReviewsRequest{}))
	assert.Contains(t, out.String(), "Loved the waffles")
}

func TestReviewsRemoteErrorBecomesError(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, testConfig(t, api.URL))

	err := a.Reviews(context.Background(), 1, ReviewsRequest{})
	var rerr *zomato.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Invalid res_id", rerr.Message)
}

func TestSearchAndRestaurant(t *testing.T) {
	api := newFakeAPI(t)
	a, out := newTestApp(t, testConfig(t, api.URL))
	ctx := context.Background()

	require.NoError(t, a.Search(ctx, &zomato.SearchOptions{Query: "pizza", Count: 10, Sort: zomato.SortRating, Order: zomato.OrderDesc}))
	assert.Equal(t, "1 results\n1. Pizza Hut (3.9) Pizza\n", out.String())

	out.Reset()
	require.NoError(t, a.Restaurant(ctx, 16774318))
	assert.Equal(t, "Otto Enoteca\n1 Fifth Avenue\nItalian\nRating: 4.0 (1000 votes)\nCost for two: 60 $\n", out.String())
}

func TestRawPrintsErrorPayloadVerbatim(t *testing.T) {
	api := newFakeAPI(t)
	a, out := newTestApp(t, testConfig(t, api.URL))

	params, err := ParseParams([]string{"res_id=1"})
	require.NoError(t, err)
	require.NoError(t, a.Raw(context.Background(), zomato.EndpointReviews, params))
	assert.Contains(t, out.String(), `"message": "Invalid res_id"`)
}

func TestRunQuery(t *testing.T) {
	api := newFakeAPI(t)
	cfg := testConfig(t, api.URL)
	require.NoError(t, os.WriteFile(cfg.QueriesFile, []byte(`
queries:
  - id: mg-road
    description: Restaurants around MG Road
    endpoint: geocode
    params:
      coordinate: "12.9716 77.5946"
`), 0o644))

	a, out := newTestApp(t, cfg)
	ctx := context.Background()

	require.NoError(t, a.RunQuery(ctx, "mg-road"))
	assert.Contains(t, out.String(), `"name": "Truffles"`)

	out.Reset()
	require.NoError(t, a.ListQueries())
	assert.Equal(t, "mg-road\tgeocode\tRestaurants around MG Road\n", out.String())

	assert.ErrorContains(t, a.RunQuery(ctx, "nope"), "no saved query")
}

func TestParseParams(t *testing.T) {
	p, err := ParseParams([]string{"q=pizza", "cuisines=55", "cuisines=82", "coordinate=12.9 77.5"})
	require.NoError(t, err)
	assert.Equal(t, zomato.Params{"q": "pizza", "cuisines": "55,82", "coordinate": "12.9 77.5"}, p)

	_, err = ParseParams([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParseParams([]string{"=x"})
	assert.Error(t, err)
}
