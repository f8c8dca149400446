package tracking

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

func TestNewSearchEvent(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?phase=live", nil)
	r.Header.Set("Referer", "https://example.org/products")
	sel := types.NewFilterSelection(map[types.FacetName][]string{
		types.FacetPhase: {"live", types.UncheckedSentinel},
	}, "pupil", 2)
	env := &types.ResultEnvelope{RequestId: "req-1", CurrentPage: 2, TotalResults: 14}

	ev := NewSearchEvent(r, sel, env)
	_, err := uuid.Parse(ev.Id)
	require.NoError(t, err)
	assert.Equal(t, EventSearch, ev.Event)
	assert.Equal(t, "req-1", ev.RequestId)
	assert.Equal(t, "https://example.org/products", ev.Referer)
	assert.Equal(t, map[types.FacetName][]string{types.FacetPhase: {"live"}}, ev.Filters)
	assert.Equal(t, "pupil", ev.Keywords)
	assert.Equal(t, 2, ev.Page)
	assert.Equal(t, 14, ev.NumberOfResults)
}

func TestNewProductViewEvent(t *testing.T) {
	ev := NewProductViewEvent(nil, "42", "categories")
	assert.Equal(t, EventProductView, ev.Event)
	assert.Equal(t, "42", ev.ProductId)
	assert.NotEqual(t, ev.Id, NewProductViewEvent(nil, "42", "detail").Id)
}

type recordingPublisher struct {
	exchanges []string
	bodies    []string
}

func (p *recordingPublisher) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	p.exchanges = append(p.exchanges, exchange)
	p.bodies = append(p.bodies, string(msg.Body))
	return nil
}

func TestRabbitTrackingUsesPrefix(t *testing.T) {
	pub := &recordingPublisher{}
	trk := &RabbitTracking{prefix: "staging", publisher: pub}

	trk.TrackSearch(context.Background(), &SearchEvent{BaseEvent: BaseEvent{Event: EventSearch}})
	trk.TrackProductView(context.Background(), NewProductViewEvent(nil, "42", "detail"))

	assert.Equal(t, []string{"staging_search_events", "staging_search_events"}, pub.exchanges)
	assert.Contains(t, pub.bodies[1], `"42"`)
	require.NoError(t, trk.Close())
}
