package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	orderID, err := idOrNew(req.OrderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(orderID, req.PickupCustomer, req.DeliveryCustomer)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = s.h.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTruckload handles POST /api/v1/truckloads.
func (s *Server) CreateTruckload(c echo.Context) error {
	var req CreateTruckloadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	truckloadID, err := idOrNew(req.TruckloadID)
	if err != nil {
		return err
	}
	// Layouts were checked by the validator.
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	cmd, err := commands.NewCreateDraftTruckloadCommand(truckloadID, req.Driver, start, end, req.TrailerNumber)
	if err != nil {
		return err
	}
	if err = s.h.CreateDraftTruckload.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: truckloadID.String()})
}

// GetTruckloadStops handles GET /api/v1/truckloads/:truckloadId/stops.
func (s *Server) GetTruckloadStops(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetTruckloadStopsQuery(truckloadID)
	if err != nil {
		return err
	}
	res, err := s.h.GetTruckloadStops.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// AssignLeg handles POST /api/v1/truckloads/:truckloadId/assignments.
func (s *Server) AssignLeg(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	var req AssignLegRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}
	legType, err := assignment.ParseType(req.AssignmentType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignLegCommand(truckloadID, orderID, legType, req.SequenceNumber, req.ExcludeFromLoadValue)
	if err != nil {
		return err
	}
	projection, err := s.h.AssignLeg.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLegProjectionResponse(projection))
}

// UnassignLeg handles
// DELETE /api/v1/truckloads/:truckloadId/assignments/:orderId/:assignmentType.
func (s *Server) UnassignLeg(c echo.Context) error {
	truckloadID, orderID, legType, err := legPath(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUnassignLegCommand(truckloadID, orderID, legType)
	if err != nil {
		return err
	}
	projection, err := s.h.UnassignLeg.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLegProjectionResponse(projection))
}

// SetLoadValueExclusion handles
// PATCH /api/v1/truckloads/:truckloadId/assignments/:orderId/:assignmentType.
func (s *Server) SetLoadValueExclusion(c echo.Context) error {
	truckloadID, orderID, legType, err := legPath(c)
	if err != nil {
		return err
	}
	var req SetLoadValueExclusionRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetLoadValueExclusionCommand(truckloadID, orderID, legType, *req.ExcludeFromLoadValue)
	if err != nil {
		return err
	}
	if err = s.h.SetLoadValueExclusion.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ReorderStops handles PUT /api/v1/truckloads/:truckloadId/stops.
func (s *Server) ReorderStops(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	var req ReorderStopsRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	positions := make([]commands.StopPosition, 0, len(req.Stops))
	for _, stop := range req.Stops {
		orderID, err := kernel.UUIDFromString(stop.OrderID)
		if err != nil {
			return err
		}
		legType, err := assignment.ParseType(stop.AssignmentType)
		if err != nil {
			return err
		}
		positions = append(positions, commands.StopPosition{
			OrderID:        orderID,
			AssignmentType: legType,
			SequenceNumber: stop.SequenceNumber,
		})
	}

	cmd, err := commands.NewReorderStopsCommand(truckloadID, positions)
	if err != nil {
		return err
	}
	if err = s.h.ReorderStops.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PromoteTruckload handles POST /api/v1/truckloads/:truckloadId/promote.
func (s *Server) PromoteTruckload(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewPromoteTruckloadCommand(truckloadID)
	if err != nil {
		return err
	}
	res, err := s.h.PromoteTruckload.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PromoteResponse{BillOfLading: res.BillOfLading, Status: res.Status.String()})
}

// CompleteTruckload handles POST /api/v1/truckloads/:truckloadId/complete.
func (s *Server) CompleteTruckload(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteTruckloadCommand(truckloadID)
	if err != nil {
		return err
	}
	if err = s.h.CompleteTruckload.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UncompleteTruckload handles POST /api/v1/truckloads/:truckloadId/uncomplete.
func (s *Server) UncompleteTruckload(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewUncompleteTruckloadCommand(truckloadID)
	if err != nil {
		return err
	}
	if err = s.h.UncompleteTruckload.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSplitLoadDeductions handles
// GET /api/v1/truckloads/:truckloadId/split-load-deductions.
func (s *Server) ListSplitLoadDeductions(c echo.Context) error {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return err
	}
	query, err := queries.NewListSplitLoadDeductionsQuery(truckloadID)
	if err != nil {
		return err
	}
	res, err := s.h.ListSplitLoadDeductions.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// PeekNextBOL handles GET /api/v1/bol/next. The number is not reserved.
func (s *Server) PeekNextBOL(c echo.Context) error {
	res, err := s.h.PeekNextBOL.Handle(c.Request().Context(), queries.NewPeekNextBOLQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return c.Validate(dst)
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func legPath(c echo.Context) (kernel.UUID, kernel.UUID, assignment.Type, error) {
	truckloadID, err := pathID(c, "truckloadId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, assignment.Unknown, err
	}
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, assignment.Unknown, err
	}
	legType, err := assignment.ParseType(c.Param("assignmentType"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, assignment.Unknown, err
	}
	return truckloadID, orderID, legType, nil
}

func idOrNew(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromString(raw)
}

func toLegProjectionResponse(p commands.LegProjection) LegProjectionResponse {
	return LegProjectionResponse{OrderStatus: p.OrderStatus.String(), IsTransferOrder: p.IsTransfer}
}
