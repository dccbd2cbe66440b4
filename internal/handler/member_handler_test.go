package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymcloud/internal/logger"
	"gymcloud/internal/model"
	"gymcloud/internal/repository"
	"gymcloud/internal/service"
)

// MockMemberService is a mock implementation of service.MemberService.
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Member), args.Error(1)
}

func (m *MockMemberService) CreateMember(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) DeleteMember(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberService) Stats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}

var today = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newTestHandler() *MemberHandler {
	svc := service.NewMemberService(repository.NewMemoryStore(), nil, logger.Discard(), service.Options{
		Now: func() time.Time { return today },
	})
	return NewMemberHandler(svc, logger.Discard(), nil)
}

func decode(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	return body
}

func assertCORS(t *testing.T, resp Response) {
	t.Helper()
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type,Authorization,X-Amz-Date,X-Api-Key,X-Amz-Security-Token", resp.Headers["Access-Control-Allow-Headers"])
}

func create(t *testing.T, h *MemberHandler, body string) Response {
	t.Helper()
	return h.Handle(context.Background(), Event{Method: "POST", Path: "/users", Body: body})
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/":             "/",
		"//":            "/",
		"/users/":       "/users",
		"//users//abc/": "/users/abc",
		"/stats":        "/stats",
		"/users//":      "/users",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, NormalizePath(in), in)
	}
}

func TestHandle_Preflight(t *testing.T) {
	h := NewMemberHandler(new(MockMemberService), logger.Discard(), nil)

	for _, path := range []string{"/users", "/nowhere/at/all", "/"} {
		resp := h.Handle(context.Background(), Event{Method: "OPTIONS", Path: path})

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assertCORS(t, resp)
		assert.Equal(t, "CORS preflight successful", decode(t, resp)["message"])
	}
}

func TestHandle_InvalidEvent(t *testing.T) {
	h := newTestHandler()

	resp := h.Handle(context.Background(), Event{Path: "/users"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assertCORS(t, resp)

	resp = h.Handle(context.Background(), Event{Method: "GET"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_UnknownRoute(t *testing.T) {
	h := newTestHandler()

	for _, ev := range []Event{
		{Method: "GET", Path: "/classes"},
		{Method: "PUT", Path: "/users/abc"},
		{Method: "DELETE", Path: "/members/abc"},
		{Method: "DELETE", Path: "/users/"},
		{Method: "get", Path: "/users"},
		{Method: "post", Path: "/members"},
	} {
		resp := h.Handle(context.Background(), ev)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, ev.Method+" "+ev.Path)
		assertCORS(t, resp)
		body := decode(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Len(t, body["availableEndpoints"], 4)
	}
}

func TestHandle_CreateMember(t *testing.T) {
	h := newTestHandler()

	resp := create(t, h, `{"name":"Mario Rossi","email":"Mario@Example.com","phone":"333 123 4567","subscriptionType":"yearly"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assertCORS(t, resp)
	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, body["id"], user["userId"])
	assert.Equal(t, "mario@example.com", user["email"])
	assert.Equal(t, "3331234567", user["phone"])
	assert.Equal(t, "2026-10-15", user["membershipStartDate"])
	assert.Equal(t, "2027-10-15", user["membershipEndDate"])
	assert.Equal(t, "stay fit", user["goal"])
}

func TestHandle_CreateMember_ClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{"malformed body", `{"name":`, http.StatusBadRequest, "invalid JSON in request body"},
		{"empty body", ``, http.StatusBadRequest, "name and email are required"},
		{"missing email", `{"name":"Mario"}`, http.StatusBadRequest, "name and email are required"},
		{"bad email", `{"name":"Mario","email":"not-an-email"}`, http.StatusBadRequest, "invalid email format"},
		{"bad phone", `{"name":"Mario","email":"mario@example.com","phone":"123"}`, http.StatusBadRequest, "invalid phone format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := create(t, newTestHandler(), tt.body)

			assert.Equal(t, tt.status, resp.StatusCode)
			assertCORS(t, resp)
			body := decode(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.error, body["error"])
		})
	}
}

func TestHandle_CreateMember_DuplicateEmail(t *testing.T) {
	h := newTestHandler()

	first := create(t, h, `{"name":"Anna","email":"anna@example.com"}`)
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := h.Handle(context.Background(), Event{Method: "POST", Path: "/members", Body: `{"name":"Anna B","email":"ANNA@example.com"}`})
	assert.Equal(t, http.StatusConflict, second.StatusCode)
	assert.Equal(t, "member already exists", decode(t, second)["error"])
}

func TestHandle_ListMembers_RoundTrip(t *testing.T) {
	h := newTestHandler()

	created := decode(t, create(t, h, `{"name":"Luca Neri","email":"luca@example.com","subscriptionType":"quarterly"}`))

	resp := h.Handle(context.Background(), Event{Method: "GET", Path: "//members/"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertCORS(t, resp)

	var list ListMembersResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &list))
	assert.True(t, list.Success)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Members, 1)
	assert.Equal(t, created["id"], list.Members[0].ID)
	assert.Equal(t, "2027-01-13", list.Members[0].MembershipEndDate)
	assert.Equal(t, today, list.Members[0].CreatedAt)
	assert.Equal(t, today, list.Members[0].UpdatedAt)
}

func TestHandle_DeleteMember(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	resp := h.Handle(ctx, Event{Method: "DELETE", Path: "/users/does-not-exist"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "member not found", decode(t, resp)["error"])

	id := decode(t, create(t, h, `{"name":"Sara","email":"sara@example.com"}`))["id"].(string)

	resp = h.Handle(ctx, Event{Method: "DELETE", Path: "/users/" + id})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assertCORS(t, resp)
	assert.Equal(t, id, decode(t, resp)["deletedUserId"])

	resp = h.Handle(ctx, Event{Method: "DELETE", Path: "/users/" + id + "/"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandle_Stats(t *testing.T) {
	h := newTestHandler()
	for _, body := range []string{
		`{"name":"A","email":"a@example.com","subscriptionType":"monthly"}`,
		`{"name":"B","email":"b@example.com","subscriptionType":"monthly"}`,
		`{"name":"C","email":"c@example.com","subscriptionType":"premium"}`,
		`{"name":"D","email":"d@example.com","subscriptionType":"weekly"}`,
		`{"name":"E","email":"e@example.com"}`,
	} {
		require.Equal(t, http.StatusCreated, create(t, h, body).StatusCode)
	}

	resp := h.Handle(context.Background(), Event{Method: "GET", Path: "/stats/"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out StatsResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	assert.True(t, out.Success)
	assert.Equal(t, 5, out.Stats.TotalMembers)
	assert.Equal(t, 5, out.Stats.NewMembersToday)
	assert.Equal(t, 5, out.Stats.ActiveMembers)
	assert.Equal(t, 5, out.Stats.ActiveSubscriptions)
	assert.Equal(t, map[string]int{"monthly": 2, "quarterly": 0, "yearly": 0, "basic": 1, "premium": 1}, out.Stats.MembershipTypes)
}

func TestHandle_StoreFault(t *testing.T) {
	svc := new(MockMemberService)
	svc.On("ListMembers", mock.Anything).Return(nil, stderrors.New("scan members: throughput exceeded"))
	h := NewMemberHandler(svc, logger.Discard(), nil)

	resp := h.Handle(context.Background(), Event{Method: "GET", Path: "/users"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assertCORS(t, resp)
	body := decode(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, "scan members: throughput exceeded", body["details"])
	svc.AssertExpectations(t)
}

func TestHandle_PanicBecomesInternalError(t *testing.T) {
	svc := new(MockMemberService)
	svc.On("Stats", mock.Anything).Run(func(mock.Arguments) { panic("nil map") })
	h := NewMemberHandler(svc, logger.Discard(), nil)

	resp := h.Handle(context.Background(), Event{Method: "GET", Path: "/stats"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assertCORS(t, resp)
	body := decode(t, resp)
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, "nil map", body["details"])
}

func TestEcho_Adapter(t *testing.T) {
	h := newTestHandler()
	e := echo.New()
	e.Any("/api/*", h.Echo("/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Eva","email":"eva@example.com"}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/anything", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	var list ListMembersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}
