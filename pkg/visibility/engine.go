package visibility

import (
	"time"

	"marketplace_backend/internal/model"
	"marketplace_backend/pkg/subscription"
)

// Report is one full evaluation of a product list: the filtered and
// enriched views, the partition, and the stats, all computed against the
// same instant.
type Report struct {
	Visible  []model.Product         `json:"visible"`
	Hidden   []model.Product         `json:"hidden"`
	Enriched []model.EnrichedProduct `json:"enriched"`
	Stats    Stats                   `json:"stats"`
}

// Engine ties the pure passes to the subscription service. Evaluate always
// refreshes the registry first, so stale IsActive hints can never leak
// into a visibility decision.
type Engine struct {
	subs *subscription.Service
	now  func() time.Time
}

func NewEngine(subs *subscription.Service) *Engine {
	return &Engine{subs: subs, now: time.Now}
}

func (e *Engine) Evaluate(products []model.Product) (Report, error) {
	registry, err := e.subs.RefreshAll()
	if err != nil {
		return Report{}, err
	}

	now := e.now()
	part := Split(products, registry, now)
	return Report{
		Visible:  part.Visible,
		Hidden:   part.Hidden,
		Enriched: Enrich(products, registry, now),
		Stats:    ComputeStats(products, registry, now),
	}, nil
}
