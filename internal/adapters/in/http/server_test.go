package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/truckload"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSession = SessionConfig{Secret: "test-secret", Issuer: "dispatch-test"}

type apiFixture struct {
	e     *echo.Echo
	token string
}

func newAPI(t *testing.T, h Handlers) apiFixture {
	t.Helper()
	reg := prometheus.NewRegistry()
	e := NewEcho(NewServer(h), Options{
		Session:  testSession,
		Metrics:  metrics.NewHTTPMetrics(reg),
		Gatherer: reg,
	})
	token, err := MintSessionToken(testSession, time.Now(), "dispatcher-1", time.Hour)
	require.NoError(t, err)
	return apiFixture{e: e, token: token}
}

func (f apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if f.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+f.token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	api := newAPI(t, Handlers{})
	api.token = ""

	rec := api.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthReportsUnavailableStore(t *testing.T) {
	e := NewEcho(NewServer(Handlers{}), Options{
		Session:     testSession,
		HealthCheck: func(context.Context) error { return errors.New("db down") },
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpointExportsRequestCounters(t *testing.T) {
	api := newAPI(t, Handlers{})
	api.do(http.MethodGet, "/health", "")

	rec := api.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dispatch_http_requests_total{code="200",method="GET",route="/health"} 1`)
}

func TestAPIRequiresSession(t *testing.T) {
	peek := &MockPeekNextBOL{}
	api := newAPI(t, Handlers{PeekNextBOL: peek})

	cases := map[string]string{
		"missing":      "",
		"garbage":      "not-a-jwt",
		"wrong secret": mustMint(t, SessionConfig{Secret: "other", Issuer: testSession.Issuer}, time.Now()),
		"wrong issuer": mustMint(t, SessionConfig{Secret: testSession.Secret, Issuer: "someone-else"}, time.Now()),
		"expired":      mustMint(t, testSession, time.Now().Add(-2*time.Hour)),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			api.token = token
			rec := api.do(http.MethodGet, "/api/v1/bol/next", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"code":401,"message":"unauthorized"}`, rec.Body.String())
		})
	}
	peek.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func mustMint(t *testing.T, cfg SessionConfig, now time.Time) string {
	t.Helper()
	token, err := MintSessionToken(cfg, now, "dispatcher-1", time.Hour)
	require.NoError(t, err)
	return token
}

func TestSessionFromExposesClaims(t *testing.T) {
	e := echo.New()
	token := mustMint(t, testSession, time.Now())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	var subject string
	err := RequireSession(testSession)(func(c echo.Context) error {
		claims, ok := SessionFrom(c)
		require.True(t, ok)
		subject = claims.Subject
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "dispatcher-1", subject)
}

func TestPeekNextBOL(t *testing.T) {
	peek := &MockPeekNextBOL{}
	peek.On("Handle", mock.Anything, mock.Anything).
		Return(queries.PeekNextBOLQueryResponse{BillOfLading: "2503004"}, nil)
	api := newAPI(t, Handlers{PeekNextBOL: peek})

	rec := api.do(http.MethodGet, "/api/v1/bol/next", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"billOfLading":"2503004"}`, rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	t.Run("generates an id when none is supplied", func(t *testing.T) {
		create := &MockCreateOrder{}
		var got commands.CreateOrderCommand
		create.On("Handle", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { got = args.Get(1).(commands.CreateOrderCommand) }).
			Return(nil)
		api := newAPI(t, Handlers{CreateOrder: create})

		rec := api.do(http.MethodPost, "/api/v1/orders", `{"pickupCustomer":"Acme","deliveryCustomer":"Globex"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), got.OrderID().String())
		assert.Equal(t, "Acme", got.PickupCustomer())
		assert.Equal(t, "Globex", got.DeliveryCustomer())
	})

	t.Run("rejects a body missing required fields", func(t *testing.T) {
		create := &MockCreateOrder{}
		api := newAPI(t, Handlers{CreateOrder: create})

		rec := api.do(http.MethodPost, "/api/v1/orders", `{"pickupCustomer":"Acme"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t,
			`{"code":400,"message":"validation failed","details":{"deliveryCustomer":"is required"}}`,
			rec.Body.String())
		create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		create := &MockCreateOrder{}
		create.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewConflictError("order", "x"))
		api := newAPI(t, Handlers{CreateOrder: create})

		rec := api.do(http.MethodPost, "/api/v1/orders",
			`{"orderId":"`+kernel.NewUUID().String()+`","pickupCustomer":"Acme","deliveryCustomer":"Globex"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCreateTruckloadParsesDates(t *testing.T) {
	create := &MockCreateDraftTruckload{}
	var got commands.CreateDraftTruckloadCommand
	create.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(commands.CreateDraftTruckloadCommand) }).
		Return(nil)
	api := newAPI(t, Handlers{CreateDraftTruckload: create})

	rec := api.do(http.MethodPost, "/api/v1/truckloads",
		`{"driver":"Dana","startDate":"2025-03-14","endDate":"2025-03-16","trailerNumber":"T-12"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Dana", got.Driver())
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), got.StartDate())
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), got.EndDate())
	assert.Equal(t, "T-12", got.TrailerNumber())

	rec = api.do(http.MethodPost, "/api/v1/truckloads",
		`{"driver":"Dana","startDate":"14/03/2025","endDate":"2025-03-16"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignLeg(t *testing.T) {
	truckloadID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("appends when no sequence is given", func(t *testing.T) {
		assign := &MockAssignLeg{}
		var got commands.AssignLegCommand
		assign.On("Handle", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { got = args.Get(1).(commands.AssignLegCommand) }).
			Return(commands.LegProjection{OrderStatus: order.PickupAssigned}, nil)
		api := newAPI(t, Handlers{AssignLeg: assign})

		rec := api.do(http.MethodPost, "/api/v1/truckloads/"+truckloadID.String()+"/assignments",
			`{"orderId":"`+orderID.String()+`","assignmentType":"pickup"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"orderStatus":"pickup_assigned","isTransferOrder":false}`, rec.Body.String())
		assert.Equal(t, truckloadID, got.TruckloadID())
		assert.Equal(t, orderID, got.OrderID())
		assert.Equal(t, assignment.Pickup, got.AssignmentType())
		assert.Equal(t, commands.AppendSequence, got.SequenceNumber())
	})

	t.Run("already assigned leg is a conflict", func(t *testing.T) {
		assign := &MockAssignLeg{}
		assign.On("Handle", mock.Anything, mock.Anything).
			Return(commands.LegProjection{}, errs.NewConflictError("order leg", orderID.String()+"/pickup"))
		api := newAPI(t, Handlers{AssignLeg: assign})

		rec := api.do(http.MethodPost, "/api/v1/truckloads/"+truckloadID.String()+"/assignments",
			`{"orderId":"`+orderID.String()+`","assignmentType":"pickup","sequenceNumber":2}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown leg type is rejected before the handler", func(t *testing.T) {
		assign := &MockAssignLeg{}
		api := newAPI(t, Handlers{AssignLeg: assign})

		rec := api.do(http.MethodPost, "/api/v1/truckloads/"+truckloadID.String()+"/assignments",
			`{"orderId":"`+orderID.String()+`","assignmentType":"transfer"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assign.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed truckload id is a bad request", func(t *testing.T) {
		api := newAPI(t, Handlers{AssignLeg: &MockAssignLeg{}})

		rec := api.do(http.MethodPost, "/api/v1/truckloads/nope/assignments",
			`{"orderId":"`+orderID.String()+`","assignmentType":"pickup"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnassignLegReadsPath(t *testing.T) {
	truckloadID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	unassign := &MockUnassignLeg{}
	var got commands.UnassignLegCommand
	unassign.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(commands.UnassignLegCommand) }).
		Return(commands.LegProjection{OrderStatus: order.Unassigned}, nil)
	api := newAPI(t, Handlers{UnassignLeg: unassign})

	rec := api.do(http.MethodDelete,
		"/api/v1/truckloads/"+truckloadID.String()+"/assignments/"+orderID.String()+"/delivery", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orderStatus":"unassigned","isTransferOrder":false}`, rec.Body.String())
	assert.Equal(t, assignment.Delivery, got.AssignmentType())
	assert.Equal(t, orderID, got.OrderID())
}

func TestSetLoadValueExclusion(t *testing.T) {
	truckloadID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	path := "/api/v1/truckloads/" + truckloadID.String() + "/assignments/" + orderID.String() + "/pickup"

	set := &MockSetLoadValueExclusion{}
	set.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetLoadValueExclusionCommand) bool {
		return cmd.Exclude() && cmd.AssignmentType() == assignment.Pickup
	})).Return(nil).Once()
	api := newAPI(t, Handlers{SetLoadValueExclusion: set})

	rec := api.do(http.MethodPatch, path, `{"excludeFromLoadValue":true}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodPatch, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	set.AssertExpectations(t)
}

func TestReorderStops(t *testing.T) {
	truckloadID := kernel.NewUUID()
	a, b := kernel.NewUUID(), kernel.NewUUID()

	reorder := &MockReorderStops{}
	var got commands.ReorderStopsCommand
	reorder.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(commands.ReorderStopsCommand) }).
		Return(nil)
	api := newAPI(t, Handlers{ReorderStops: reorder})

	rec := api.do(http.MethodPut, "/api/v1/truckloads/"+truckloadID.String()+"/stops", `{"stops":[
		{"orderId":"`+a.String()+`","assignmentType":"pickup","sequenceNumber":2},
		{"orderId":"`+b.String()+`","assignmentType":"delivery","sequenceNumber":1}
	]}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []commands.StopPosition{
		{OrderID: a, AssignmentType: assignment.Pickup, SequenceNumber: 2},
		{OrderID: b, AssignmentType: assignment.Delivery, SequenceNumber: 1},
	}, got.Positions())

	rec = api.do(http.MethodPut, "/api/v1/truckloads/"+truckloadID.String()+"/stops", `{"stops":[
		{"orderId":"`+a.String()+`","assignmentType":"pickup","sequenceNumber":0}
	]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromoteTruckload(t *testing.T) {
	truckloadID := kernel.NewUUID()

	t.Run("returns the issued number", func(t *testing.T) {
		promote := &MockPromoteTruckload{}
		promote.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PromoteResult{BillOfLading: "2503001", Status: truckload.Active}, nil)
		api := newAPI(t, Handlers{PromoteTruckload: promote})

		rec := api.do(http.MethodPost, "/api/v1/truckloads/"+truckloadID.String()+"/promote", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"billOfLading":"2503001","status":"active"}`, rec.Body.String())
	})

	t.Run("wrong lifecycle state is unprocessable", func(t *testing.T) {
		promote := &MockPromoteTruckload{}
		promote.On("Handle", mock.Anything, mock.Anything).
			Return(commands.PromoteResult{}, errs.NewInvalidStateError("truckload", "completed", "draft"))
		api := newAPI(t, Handlers{PromoteTruckload: promote})

		rec := api.do(http.MethodPost, "/api/v1/truckloads/"+truckloadID.String()+"/promote", "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestCompleteTruckloadHidesInfrastructureErrors(t *testing.T) {
	complete := &MockCompleteTruckload{}
	complete.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewTransactionFailedError("complete truckload", errors.New("connection reset")))
	api := newAPI(t, Handlers{CompleteTruckload: complete})

	rec := api.do(http.MethodPost, "/api/v1/truckloads/"+kernel.NewUUID().String()+"/complete", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetTruckloadStopsNotFound(t *testing.T) {
	stops := &MockGetTruckloadStops{}
	stops.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetTruckloadStopsQueryResponse{}, errs.NewObjectNotFoundError("truckload", "x"))
	api := newAPI(t, Handlers{GetTruckloadStops: stops})

	rec := api.do(http.MethodGet, "/api/v1/truckloads/"+kernel.NewUUID().String()+"/stops", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
