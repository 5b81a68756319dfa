package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memrepo "hdmonks/database/repository/memory"
	"hdmonks/handlers"
	"hdmonks/models"
	"hdmonks/services/admin"
	"hdmonks/services/auth"
	"hdmonks/services/booking"
	"hdmonks/services/catalog"
	"hdmonks/services/content"
	"hdmonks/services/inquiry"
	"hdmonks/services/ledger"
	"hdmonks/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopNotifier struct{}

func (nopNotifier) NotifyBooking(context.Context, models.Booking) error { return nil }
func (nopNotifier) NotifyInquiry(context.Context, models.Inquiry) error { return nil }

type testEnv struct {
	router *gin.Engine
	hb     *handlers.HandlerBundle
	slots  *memrepo.TimeSlots
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slots := memrepo.NewTimeSlots(models.TimeSlot{
		ID: "slot-1", Date: "2025-06-01", Time: "10:00", DurationMinutes: 30, IsAvailable: true,
	})
	bookings := memrepo.NewBookings()
	inquiries := memrepo.NewInquiries()
	stages := memrepo.NewCatalog()
	clients := memrepo.NewClients()

	authSvc := auth.NewAuthService(memrepo.NewPrincipals(), memrepo.NewPrincipals(), nil, []byte("test-secret"), time.Hour)
	require.NoError(t, authSvc.EnsureDefaultAdmin(context.Background(), "admin", "admin@hdmonks.com", "admin-pass-123"))
	_, err := authSvc.RegisterPartner(context.Background(), models.PartnerRegistration{
		Username: "reseller", Email: "reseller@example.com", Password: "partner-pass-123",
	})
	require.NoError(t, err)

	hb := handlers.NewHandlerBundle(handlers.Services{
		Auth:    authSvc,
		Booking: booking.NewBookingService(slots, bookings, nil, nopNotifier{}),
		Inquiry: inquiry.NewInquiryService(inquiries, nopNotifier{}),
		Catalog: catalog.NewCatalogService(stages),
		Admin: &admin.DefaultAdminService{
			Bookings: bookings, Inquiries: inquiries, Catalog: stages,
			Settings: memrepo.NewSettings(), Analytics: memrepo.NewAnalytics(),
		},
		Ledger:       ledger.NewLedgerService(clients, stages),
		Storage:      storage.InlineStorage{},
		Blogs:        content.NewContentService[models.Blog, *models.Blog](memrepo.NewContent[models.Blog, *models.Blog]("blogs"), "slug"),
		FAQs:         content.NewContentService[models.FAQ, *models.FAQ](memrepo.NewContent[models.FAQ, *models.FAQ]("faqs"), ""),
		Testimonials: content.NewContentService[models.Testimonial, *models.Testimonial](memrepo.NewContent[models.Testimonial, *models.Testimonial]("testimonials"), ""),
		Packages:     content.NewContentService[models.Package, *models.Package](memrepo.NewContent[models.Package, *models.Package]("packages"), ""),
		Templates:    content.NewContentService[models.EmailTemplate, *models.EmailTemplate](memrepo.NewContent[models.EmailTemplate, *models.EmailTemplate]("email_templates"), ""),
	})

	r := gin.New()
	RegisterRoutes(r, hb, []string{"http://localhost:3000"}, 0)
	return &testEnv{router: r, hb: hb, slots: slots}
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Detail    string          `json:"detail"`
	Token     string          `json:"token"`
	Principal json.RawMessage `json:"principal"`
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func (e *testEnv) login(t *testing.T, role, username, password string) string {
	t.Helper()
	code, env := e.do(t, http.MethodPost, "/api/"+role+"/login", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, code, env.Detail)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)
	require.NotEmpty(t, env.Principal)
	return env.Token
}

func TestBookingFlow(t *testing.T) {
	e := newTestEnv(t)

	code, env := e.do(t, http.MethodGet, "/api/timeslots?date=2025-06-01", "", nil)
	require.Equal(t, http.StatusOK, code)
	var slots []models.TimeSlot
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	assert.Len(t, slots, 1)

	req := gin.H{
		"name": "Priya Shah", "email": "priya@example.com", "phone": "+91 9000000000",
		"business_type": "startup", "timeslot_id": "slot-1",
	}
	code, env = e.do(t, http.MethodPost, "/api/booking", "", req)
	require.Equal(t, http.StatusCreated, code, env.Detail)
	var b models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, "Priya Shah", b.FullName)

	code, env = e.do(t, http.MethodPost, "/api/booking", "", req)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Detail)

	code, _ = e.do(t, http.MethodPost, "/api/booking", "", gin.H{"email": "x@example.com", "timeslot_id": "slot-1"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = e.do(t, http.MethodPost, "/api/booking", "", gin.H{
		"full_name": "A", "email": "a@example.com", "phone": "1", "business_type": "msme", "timeslot_id": "nope",
	})
	assert.Equal(t, http.StatusNotFound, code)

	admin := e.login(t, "admin", "admin", "admin-pass-123")
	code, _ = e.do(t, http.MethodPut, "/api/admin/bookings/"+b.ID+"/status?status=completed", admin, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(t, http.MethodPut, "/api/admin/bookings/"+b.ID+"/status?status=confirmed", admin, nil)
	assert.Equal(t, http.StatusConflict, code)
	code, _ = e.do(t, http.MethodPut, "/api/admin/bookings/"+b.ID+"/status?status=no_show", admin, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = e.do(t, http.MethodDelete, "/api/admin/timeslots/slot-1", admin, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestRoleIsolation(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, "admin", "admin", "admin-pass-123")
	partner := e.login(t, "partner", "reseller", "partner-pass-123")

	code, _ := e.do(t, http.MethodGet, "/api/admin/stats", partner, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = e.do(t, http.MethodGet, "/api/partner/revenue", admin, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = e.do(t, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = e.do(t, http.MethodGet, "/api/admin/stats", admin, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(t, http.MethodGet, "/api/partner/verify", partner, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = e.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = e.do(t, http.MethodPost, "/api/partner/logout", partner, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(t, http.MethodGet, "/api/partner/verify", partner, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPartnerLedger(t *testing.T) {
	e := newTestEnv(t)
	partner := e.login(t, "partner", "reseller", "partner-pass-123")

	code, env := e.do(t, http.MethodGet, "/api/partner/revenue", partner, nil)
	require.Equal(t, http.StatusOK, code)
	var summary models.RevenueSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 0.0, summary.Total)
	assert.Empty(t, summary.ByClient)

	code, env = e.do(t, http.MethodPost, "/api/partner/clients", partner, gin.H{"full_name": "Acme Traders"})
	require.Equal(t, http.StatusCreated, code, env.Detail)
	var client models.Client
	require.NoError(t, json.Unmarshal(env.Data, &client))

	code, _ = e.do(t, http.MethodPost, "/api/partner/clients/"+client.ID+"/services", partner, gin.H{
		"service_id": "SRV1", "service_name": "Web Design", "price": 5000,
	})
	require.Equal(t, http.StatusCreated, code)

	_, env = e.do(t, http.MethodGet, "/api/partner/revenue", partner, nil)
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 5000.0, summary.Total)
	require.Len(t, summary.ByClient, 1)
	assert.Equal(t, client.ID, summary.ByClient[0].ClientID)

	code, _ = e.do(t, http.MethodDelete, "/api/partner/clients/"+client.ID+"/services/SRV1", partner, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(t, http.MethodDelete, "/api/partner/clients/"+client.ID+"/services/SRV1", partner, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = e.do(t, http.MethodPost, "/api/partner/register", "", gin.H{
		"username": "other", "email": "other@example.com", "password": "other-pass-123",
	})
	require.Equal(t, http.StatusCreated, code)
	other := e.login(t, "partner", "other", "other-pass-123")
	code, _ = e.do(t, http.MethodGet, "/api/partner/clients/"+client.ID, other, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = e.do(t, http.MethodGet, "/api/partner/clients/missing", other, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestInquiryAndContent(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, "admin", "admin", "admin-pass-123")

	code, env := e.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name": "Ravi", "email": "ravi@example.com", "message": "Need GST help",
	})
	require.Equal(t, http.StatusCreated, code, env.Detail)
	var inq models.Inquiry
	require.NoError(t, json.Unmarshal(env.Data, &inq))

	code, _ = e.do(t, http.MethodPut, "/api/admin/inquiries/"+inq.ID+"/status?status=closed", admin, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = e.do(t, http.MethodPut, "/api/admin/inquiries/"+inq.ID+"/status?status=contacted", admin, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, env = e.do(t, http.MethodPost, "/api/admin/blogs", admin, gin.H{"title": "Startup India", "content": "...", "published": true})
	require.Equal(t, http.StatusCreated, code, env.Detail)
	code, _ = e.do(t, http.MethodGet, "/api/blogs/startup-india", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = e.do(t, http.MethodPost, "/api/admin/stages", admin, gin.H{
		"id": 1, "title": "Ideation",
		"services": []gin.H{{"service_id": "biz-plan", "name": "Business Plan", "description": "Plan", "icon": "FileText"}},
	})
	require.Equal(t, http.StatusCreated, code)
	code, env = e.do(t, http.MethodGet, "/api/services/biz-plan", "", nil)
	require.Equal(t, http.StatusOK, code)
	var svc models.Service
	require.NoError(t, json.Unmarshal(env.Data, &svc))
	assert.Equal(t, models.DefaultAudiences(), svc.RelevantFor)

	code, _ = e.do(t, http.MethodGet, "/api/stages/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = e.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestRateLimitedResponsesCarryCORSHeaders(t *testing.T) {
	e := newTestEnv(t)
	r := gin.New()
	RegisterRoutes(r, e.hb, []string{"http://localhost:3000"}, 1)

	codes := make([]int, 0, 2)
	var last *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		last = httptest.NewRecorder()
		r.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "http://localhost:3000", last.Header().Get("Access-Control-Allow-Origin"))
}
