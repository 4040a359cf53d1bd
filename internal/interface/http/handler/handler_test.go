package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/fir"
	"github.com/cyberlawyerhub/backend/internal/http/middleware"
	"github.com/cyberlawyerhub/backend/internal/logger"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/usecase/availability"
	"github.com/cyberlawyerhub/backend/internal/usecase/booking"
	"github.com/cyberlawyerhub/backend/internal/usecase/lawyer"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

// newTestEngine собирает движок с тем же обработчиком ошибок, что и в роутере.
func newTestEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func silentLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type allowList []string

func (a allowList) IsAllowedOrigin(origin string) bool {
	for _, o := range a {
		if o == origin {
			return true
		}
	}
	return false
}

type checkoutStub struct {
	out   *booking.CreateCheckoutOutput
	err   error
	input booking.CreateCheckoutInput
}

func (s *checkoutStub) Execute(_ context.Context, input booking.CreateCheckoutInput) (*booking.CreateCheckoutOutput, error) {
	s.input = input
	return s.out, s.err
}

func do(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			reader = bytes.NewBuffer(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func checkoutRouter(stub *checkoutStub) *gin.Engine {
	r := newTestEngine()
	h := NewCheckoutHandler(stub, allowList{"https://app.cyberlawyerhub.in"}, "https://cyberlawyerhub.in/", silentLog())
	r.POST("/api/create-checkout", h.CreateCheckout)
	return r
}

func TestCheckoutHandler_Success(t *testing.T) {
	stub := &checkoutStub{out: &booking.CreateCheckoutOutput{URL: "https://checkout.stripe.com/c/pay/cs_test_1"}}
	r := checkoutRouter(stub)

	w := do(r, http.MethodPost, "/api/create-checkout",
		map[string]interface{}{"lawyer_id": "abc", "duration_minutes": 30},
		map[string]string{"Origin": "https://app.cyberlawyerhub.in"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`, w.Body.String())
	assert.Equal(t, "abc", stub.input.LawyerID)
	assert.Equal(t, 30, stub.input.DurationMinutes)
	assert.Equal(t, "https://app.cyberlawyerhub.in", stub.input.Origin)
}

func TestCheckoutHandler_UnknownOriginFallsBack(t *testing.T) {
	stub := &checkoutStub{out: &booking.CreateCheckoutOutput{URL: "u"}}
	r := checkoutRouter(stub)

	do(r, http.MethodPost, "/api/create-checkout",
		map[string]interface{}{"lawyer_id": "abc", "duration_minutes": 60},
		map[string]string{"Origin": "https://phish.example.com"})

	assert.Equal(t, "https://cyberlawyerhub.in", stub.input.Origin)
}

func TestCheckoutHandler_Failures(t *testing.T) {
	cases := map[string]struct {
		err  error
		body interface{}
		want string
	}{
		"self booking":     {err: apperror.ErrSelfBooking, body: map[string]interface{}{"lawyer_id": "x", "duration_minutes": 30}, want: "Cannot book yourself"},
		"unauthenticated":  {err: apperror.ErrUnauthenticated, body: map[string]interface{}{"lawyer_id": "x", "duration_minutes": 30}, want: "User not authenticated"},
		"plain error":      {err: errors.New("boom"), body: map[string]interface{}{"lawyer_id": "x", "duration_minutes": 30}, want: apperror.MessageOf(errors.New("boom"))},
		"malformed body":   {body: "{not json", want: apperror.ErrInvalidCheckout.Message},
		"wrong field type": {body: `{"lawyer_id": 5, "duration_minutes": "30"}`, want: apperror.ErrInvalidCheckout.Message},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := checkoutRouter(&checkoutStub{err: tc.err})
			w := do(r, http.MethodPost, "/api/create-checkout", tc.body, nil)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.want, body["error"])
			assert.Len(t, body, 1)
		})
	}
}

type searchStub struct{ filter lawyer.Filter }

func (s *searchStub) Execute(_ context.Context, f lawyer.Filter) ([]*entity.Lawyer, error) {
	s.filter = f
	return []*entity.Lawyer{{ID: uuid.New(), HourlyRate: 1500, City: "Mumbai"}}, nil
}

type getStub struct{ details *lawyer.LawyerDetails }

func (s getStub) Execute(context.Context, uuid.UUID) (*lawyer.LawyerDetails, error) {
	if s.details == nil {
		return nil, apperror.ErrLawyerNotFound
	}
	return s.details, nil
}

type registerStub struct{ input lawyer.RegisterLawyerInput }

func (s *registerStub) Execute(_ context.Context, in lawyer.RegisterLawyerInput) (*entity.Lawyer, error) {
	s.input = in
	return &entity.Lawyer{ID: uuid.New(), City: in.City, HourlyRate: in.HourlyRate, Profile: &entity.Profile{FullName: in.FullName}}, nil
}

type slotsStub struct{}

func (slotsStub) Execute(_ context.Context, lawyerID uuid.UUID) ([]*entity.AvailabilitySlot, error) {
	return []*entity.AvailabilitySlot{{ID: uuid.New(), LawyerID: lawyerID, StartTime: "10:00", EndTime: "10:30"}}, nil
}

func TestLawyerHandler(t *testing.T) {
	search := &searchStub{}
	register := &registerStub{}
	half, _ := valueobject.CalculatePrice(1500, 30)
	full, _ := valueobject.CalculatePrice(1500, 60)
	found := uuid.New()

	h := NewLawyerHandler(search, getStub{details: &lawyer.LawyerDetails{
		Lawyer: &entity.Lawyer{ID: found, HourlyRate: 1500}, HalfHour: half, FullHour: full,
	}}, register, slotsStub{})

	r := newTestEngine()
	r.GET("/api/lawyers", h.List)
	r.GET("/api/lawyers/:id", h.Get)
	r.GET("/api/lawyers/:id/availability", h.Availability)
	r.POST("/api/lawyers", h.Register)

	w := do(r, http.MethodGet, "/api/lawyers?search=cyber&city=Mumbai&min_rate=1000&max_rate=2000&min_rating=4.5", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cyber", search.filter.Search)
	assert.Equal(t, "Mumbai", search.filter.City)
	require.NotNil(t, search.filter.MinRate)
	assert.Equal(t, int64(1000), *search.filter.MinRate)
	assert.Equal(t, int64(2000), *search.filter.MaxRate)
	assert.Equal(t, 4.5, *search.filter.MinRating)
	assert.Contains(t, w.Body.String(), `"full_name":"Lawyer"`)
	assert.Contains(t, w.Body.String(), `"specializations":[]`)

	w = do(r, http.MethodGet, "/api/lawyers?min_rate=cheap", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/lawyers/"+found.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var details struct {
		Data struct {
			Prices map[string]struct {
				TotalAmount int64 `json:"total_amount"`
			} `json:"prices"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, int64(938), details.Data.Prices["30"].TotalAmount)
	assert.Equal(t, int64(1875), details.Data.Prices["60"].TotalAmount)

	w = do(r, http.MethodGet, "/api/lawyers/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/lawyers/"+found.String()+"/availability", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"start_time":"10:00"`)

	w = do(r, http.MethodPost, "/api/lawyers", map[string]interface{}{
		"full_name": "Adv. Kabir Shah", "bar_council_id": "MH/1234/2015", "city": "Mumbai", "hourly_rate": 2000,
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "MH/1234/2015", register.input.BarCouncilID)

	w = do(r, http.MethodPost, "/api/lawyers", map[string]interface{}{"city": "Mumbai"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLawyerHandler_NotFound(t *testing.T) {
	h := NewLawyerHandler(&searchStub{}, getStub{}, &registerStub{}, slotsStub{})
	r := newTestEngine()
	r.GET("/api/lawyers/:id", h.Get)

	w := do(r, http.MethodGet, "/api/lawyers/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Lawyer not found")
}

type confirmCheckoutStub struct{ sessionID string }

func (s *confirmCheckoutStub) Execute(_ context.Context, sessionID string) (*entity.Booking, error) {
	s.sessionID = sessionID
	return &entity.Booking{ID: uuid.New(), Status: valueobject.BookingStatusPaid}, nil
}

type statusStub struct {
	status valueobject.BookingStatus
	err    error
}

func (s statusStub) Execute(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Booking{ID: id, Status: s.status}, nil
}

func TestBookingHandler(t *testing.T) {
	confirmCheckout := &confirmCheckoutStub{}
	h := NewBookingHandler(confirmCheckout,
		statusStub{status: valueobject.BookingStatusConfirmed},
		statusStub{err: apperror.ErrForbidden})

	r := newTestEngine()
	r.GET("/api/bookings/checkout/confirm", h.ConfirmCheckout)
	r.POST("/api/bookings/:id/confirm", h.Confirm)
	r.POST("/api/bookings/:id/cancel", h.Cancel)

	w := do(r, http.MethodGet, "/api/bookings/checkout/confirm?session_id=cs_test_9", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_test_9", confirmCheckout.sessionID)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)

	w = do(r, http.MethodPost, "/api/bookings/"+uuid.NewString()+"/confirm", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)

	w = do(r, http.MethodPost, "/api/bookings/"+uuid.NewString()+"/cancel", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/api/bookings/42/cancel", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type createSlotStub struct{ input availability.CreateSlotInput }

func (s *createSlotStub) Execute(_ context.Context, in availability.CreateSlotInput) (*entity.AvailabilitySlot, error) {
	s.input = in
	return entity.NewAvailabilitySlot(uuid.New(), in.Date, in.StartTime, in.EndTime, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

type deleteSlotStub struct{ err error }

func (s deleteSlotStub) Execute(context.Context, uuid.UUID) error { return s.err }

func TestAvailabilityHandler(t *testing.T) {
	create := &createSlotStub{}
	r := newTestEngine()
	h := NewAvailabilityHandler(create, deleteSlotStub{})
	r.POST("/api/lawyers/me/availability", h.Create)
	r.DELETE("/api/lawyers/me/availability/:id", h.Delete)

	w := do(r, http.MethodPost, "/api/lawyers/me/availability",
		map[string]string{"date": "2030-01-02", "start_time": "09:00", "end_time": "09:30"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2030-01-02"`)

	w = do(r, http.MethodPost, "/api/lawyers/me/availability", map[string]string{"date": "2030-01-02"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/lawyers/me/availability/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	r2 := newTestEngine()
	r2.DELETE("/slots/:id", NewAvailabilityHandler(create, deleteSlotStub{err: apperror.New(apperror.ErrCodeConflict, "slot is booked")}).Delete)
	w = do(r2, http.MethodDelete, "/slots/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func firRouter() *gin.Engine {
	r := newTestEngine()
	h := NewFIRHandler(fir.NewGenerator("https://cyberlawyerhub.in/lawyers"), silentLog())
	r.GET("/api/fir/options", h.Options)
	r.POST("/api/fir/report", h.Report)
	return r
}

func TestFIRHandler_Report(t *testing.T) {
	r := firRouter()
	w := do(r, http.MethodPost, "/api/fir/report", map[string]interface{}{
		"incident_type": "UPI Fraud",
		"amount":        25000,
		"date":          "2026-02-01",
		"phone":         "9876543210",
		"victim_name":   "Ananya Rao",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="CyberLawyerHub_FIR_Report.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "medium", w.Header().Get("X-Report-Severity"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestFIRHandler_ReportRejects(t *testing.T) {
	r := firRouter()

	w := do(r, http.MethodPost, "/api/fir/report", map[string]interface{}{
		"incident_type": "UPI Fraud", "date": "2026-02-01", "phone": "9876543210",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "amount missing")

	w = do(r, http.MethodPost, "/api/fir/report", map[string]interface{}{
		"incident_type": "UPI Fraud", "amount": 0, "date": "2026-02-01", "phone": "12345",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone must be exactly 10 digits")
}

func TestFIRHandler_Options(t *testing.T) {
	w := do(firRouter(), http.MethodGet, "/api/fir/options", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			IncidentTypes []string `json:"incident_types"`
			CyberCells    []struct {
				City string `json:"city"`
			} `json:"cyber_cells"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, fir.IncidentTypes, body.Data.IncidentTypes)
	assert.Len(t, body.Data.CyberCells, len(fir.CyberCells))
}

type pingStub struct{ err error }

func (p pingStub) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	r := newTestEngine()
	r.GET("/ok", NewHealthHandler(pingStub{}).Health)
	r.GET("/down", NewHealthHandler(pingStub{err: errors.New("dial tcp: refused")}).Health)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ok", nil, nil).Code)
	w := do(r, http.MethodGet, "/down", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "refused")
}
