package tracking

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// Tracking receives events for evaluated requests. Implementations must not
// block the request for long and must not fail it.
type Tracking interface {
	TrackSearch(ctx context.Context, event *SearchEvent)
	TrackProductView(ctx context.Context, event *ProductViewEvent)
}

const (
	EventSearch      uint16 = 1
	EventProductView uint16 = 2
)

type BaseEvent struct {
	Id        string    `json:"id"`
	RequestId string    `json:"request_id,omitempty"`
	Event     uint16    `json:"event"`
	Time      time.Time `json:"time"`
	Referer   string    `json:"referer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

func newBaseEvent(event uint16, r *http.Request) BaseEvent {
	ret := BaseEvent{
		Id:    uuid.New().String(),
		Event: event,
		Time:  time.Now().UTC(),
	}
	if r != nil {
		ret.Referer = r.Header.Get("Referer")
		ret.UserAgent = r.UserAgent()
	}
	return ret
}

type SearchEvent struct {
	BaseEvent
	Filters         map[types.FacetName][]string `json:"filters,omitempty"`
	Keywords        string                       `json:"keywords,omitempty"`
	Page            int                          `json:"page"`
	NumberOfResults int                          `json:"noi"`
	Degraded        bool                         `json:"degraded,omitempty"`
}

// NewSearchEvent describes one evaluated listing.
func NewSearchEvent(r *http.Request, sel *types.FilterSelection, env *types.ResultEnvelope) *SearchEvent {
	filters := make(map[types.FacetName][]string)
	for _, name := range sel.ActiveFacets() {
		filters[name] = sel.Tokens(name)
	}
	base := newBaseEvent(EventSearch, r)
	base.RequestId = env.RequestId
	return &SearchEvent{
		BaseEvent:       base,
		Filters:         filters,
		Keywords:        sel.Keywords,
		Page:            env.CurrentPage,
		NumberOfResults: env.TotalResults,
		Degraded:        env.Degraded,
	}
}

type ProductViewEvent struct {
	BaseEvent
	ProductId string `json:"product_id"`
	View      string `json:"view"`
}

func NewProductViewEvent(r *http.Request, productId, view string) *ProductViewEvent {
	return &ProductViewEvent{
		BaseEvent: newBaseEvent(EventProductView, r),
		ProductId: productId,
		View:      view,
	}
}
