package controller

import (
	"marketplace_backend/internal/state"
	"marketplace_backend/pkg/imagegen"
	"marketplace_backend/pkg/payment"
	"marketplace_backend/pkg/subscription"
	"marketplace_backend/pkg/visibility"
)

var (
	store    *state.Store
	subs     *subscription.Service
	engine   *visibility.Engine
	payments *payment.Simulator
	images   *imagegen.Generator
)

// Init wires the controllers to the core services. Controllers only ever
// consume the store's public contract (dispatch, snapshot, selectors),
// never state internals.
func Init(st *state.Store, s *subscription.Service, e *visibility.Engine, p *payment.Simulator, g *imagegen.Generator) {
	store = st
	subs = s
	engine = e
	payments = p
	images = g
}
