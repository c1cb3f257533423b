package tvmaze

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// showServer answers /shows/{id} with a show named after its id, delaying
// lower ids so responses complete out of order.
func showServer(t *testing.T, missing int, inFlight, peak *int32, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(inFlight, 1)
		defer atomic.AddInt32(inFlight, -1)
		for {
			p := atomic.LoadInt32(peak)
			if n <= p || atomic.CompareAndSwapInt32(peak, p, n) {
				break
			}
		}

		var id int
		_, err := fmt.Sscanf(strings.TrimPrefix(r.URL.Path, "/shows/"), "%d", &id)
		if err != nil || id == missing {
			http.NotFound(w, r)
			return
		}
		time.Sleep(time.Duration(10-id%10) * time.Millisecond)
		fmt.Fprintf(w, `{"id":%d,"name":"Show %d"}`, id, id)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL}, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestGetShows(t *testing.T) {
	var inFlight, peak int32
	client := showServer(t, -1, &inFlight, &peak)

	ids := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	shows, err := client.GetShows(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, shows, len(ids))

	for i, id := range ids {
		assert.Equal(t, id, shows[i].ID)
		assert.Equal(t, fmt.Sprintf("Show %d", id), shows[i].Name)
	}
	assert.LessOrEqual(t, int(atomic.LoadInt32(&peak)), DefaultConcurrency)
}

func TestGetShowsConcurrencyLimit(t *testing.T) {
	var inFlight, peak int32
	client := showServer(t, -1, &inFlight, &peak, WithConcurrency(2))

	shows, err := client.GetShows(context.Background(), []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Len(t, shows, 6)
	assert.LessOrEqual(t, int(atomic.LoadInt32(&peak)), 2)
}

func TestGetShowsError(t *testing.T) {
	var inFlight, peak int32
	client := showServer(t, 3, &inFlight, &peak)

	shows, err := client.GetShows(context.Background(), []int{1, 2, 3, 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, shows)
}

func TestGetShowsInvalidID(t *testing.T) {
	rec := &recorder{body: `{}`}
	client := newTestClient(t, rec, Config{})

	_, err := client.GetShows(context.Background(), []int{0})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, rec.count())
}

func TestGetShowsEmpty(t *testing.T) {
	rec := &recorder{body: `{}`}
	client := newTestClient(t, rec, Config{})

	shows, err := client.GetShows(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, shows)
	assert.Equal(t, 0, rec.count())
}

func TestGetEpisodes(t *testing.T) {
	rec := &recorder{body: `{"id":7,"name":"Ep","season":1,"number":2}`}
	client := newTestClient(t, rec, Config{})

	episodes, err := client.GetEpisodes(context.Background(), []int{7, 7}, "show")
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, "S01E02", EpisodeCode(*episodes[1]))
	assert.Equal(t, 2, rec.count())
	assert.Equal(t, "embed=show", rec.last(t).URL.RawQuery)
}
