package http

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	completeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}
	createDraftTruckloadHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDraftTruckloadCommand) error
	}
	assignLegHandler interface {
		Handle(ctx context.Context, cmd commands.AssignLegCommand) (commands.LegProjection, error)
	}
	unassignLegHandler interface {
		Handle(ctx context.Context, cmd commands.UnassignLegCommand) (commands.LegProjection, error)
	}
	setLoadValueExclusionHandler interface {
		Handle(ctx context.Context, cmd commands.SetLoadValueExclusionCommand) error
	}
	reorderStopsHandler interface {
		Handle(ctx context.Context, cmd commands.ReorderStopsCommand) error
	}
	promoteTruckloadHandler interface {
		Handle(ctx context.Context, cmd commands.PromoteTruckloadCommand) (commands.PromoteResult, error)
	}
	completeTruckloadHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteTruckloadCommand) error
	}
	uncompleteTruckloadHandler interface {
		Handle(ctx context.Context, cmd commands.UncompleteTruckloadCommand) error
	}
	getTruckloadStopsHandler interface {
		Handle(ctx context.Context, query queries.GetTruckloadStopsQuery) (queries.GetTruckloadStopsQueryResponse, error)
	}
	listSplitLoadDeductionsHandler interface {
		Handle(ctx context.Context, query queries.ListSplitLoadDeductionsQuery) ([]queries.SplitLoadDeduction, error)
	}
	peekNextBOLHandler interface {
		Handle(ctx context.Context, query queries.PeekNextBOLQuery) (queries.PeekNextBOLQueryResponse, error)
	}
)

// Handlers lists the use cases the HTTP API exposes. Every field is required.
type Handlers struct {
	CreateOrder             createOrderHandler
	CompleteOrder           completeOrderHandler
	CreateDraftTruckload    createDraftTruckloadHandler
	AssignLeg               assignLegHandler
	UnassignLeg             unassignLegHandler
	SetLoadValueExclusion   setLoadValueExclusionHandler
	ReorderStops            reorderStopsHandler
	PromoteTruckload        promoteTruckloadHandler
	CompleteTruckload       completeTruckloadHandler
	UncompleteTruckload     uncompleteTruckloadHandler
	GetTruckloadStops       getTruckloadStopsHandler
	ListSplitLoadDeductions listSplitLoadDeductionsHandler
	PeekNextBOL             peekNextBOLHandler
}

// Server translates HTTP requests into commands and queries and renders
// their results.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}
