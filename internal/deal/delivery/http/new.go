package http

import (
	"deal-finder/internal/deal"
	"deal-finder/pkg/log"
)

type handler struct {
	l  log.Logger
	uc deal.UseCase
}

// New creates a new HTTP handler for the deal domain.
func New(l log.Logger, uc deal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
