package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"gymcloud/internal/errors"
	"gymcloud/internal/metrics"
	"gymcloud/internal/model"
	"gymcloud/internal/service"
)

// Route labels used for logging and metrics.
const (
	routeList      = "list"
	routeStats     = "stats"
	routeCreate    = "create"
	routeDelete    = "delete"
	routePreflight = "preflight"
	routeNotFound  = "not_found"
	routeInvalid   = "invalid"
)

// AvailableEndpoints is returned with every unroutable request.
var AvailableEndpoints = []string{
	"GET /users - list members",
	"POST /users - create member",
	"DELETE /users/{id} - delete member",
	"GET /stats - statistics",
}

// MemberHandler dispatches events to the member service.
type MemberHandler struct {
	svc     service.MemberService
	log     logrus.FieldLogger
	metrics *metrics.Recorder
}

// NewMemberHandler creates a handler layer. rec may be nil.
func NewMemberHandler(svc service.MemberService, log logrus.FieldLogger, rec *metrics.Recorder) *MemberHandler {
	return &MemberHandler{svc: svc, log: log, metrics: rec}
}

// ListMembersResponse is the envelope for a member listing.
type ListMembersResponse struct {
	Success bool           `json:"success"`
	Members []model.Member `json:"members"`
	Total   int            `json:"total"`
}

// CreateMemberResponse is the envelope for a created member.
type CreateMemberResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *model.Member `json:"user"`
	ID      string        `json:"id"`
}

// DeleteMemberResponse is the envelope for a deleted member.
type DeleteMemberResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	DeletedUserID string `json:"deletedUserId"`
}

// StatsResponse is the envelope for gym statistics.
type StatsResponse struct {
	Success bool         `json:"success"`
	Stats   *model.Stats `json:"stats"`
}

// MessageResponse is a bare success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NotFoundResponse lists the operations the service understands.
type NotFoundResponse struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// Handle routes one event and always returns a well-formed response, even
// when an operation panics.
func (h *MemberHandler) Handle(ctx context.Context, ev Event) (resp Response) {
	start := time.Now()
	route := routeInvalid
	log := h.log.WithFields(logrus.Fields{"method": ev.Method, "path": ev.Path})

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("member event failed")
			resp = jsonResponse(http.StatusInternalServerError, errors.ErrorResponse{
				Error:   "internal server error",
				Details: fmt.Sprint(r),
			})
		}
		h.metrics.Observe(route, resp.StatusCode, time.Since(start))
		log.WithFields(logrus.Fields{
			"route":  route,
			"status": resp.StatusCode,
		}).Debug("member event handled")
	}()

	if ev.Method == "" || ev.Path == "" {
		return errorResponse(errors.MapErrorToHTTP(errors.ErrInvalidRequest))
	}

	method := ev.Method
	path := NormalizePath(ev.Path)

	if method == http.MethodOptions {
		route = routePreflight
		return jsonResponse(http.StatusOK, MessageResponse{Success: true, Message: "CORS preflight successful"})
	}

	switch {
	case method == http.MethodGet && isMembersPath(path):
		route = routeList
		return h.listMembers(ctx, log)
	case method == http.MethodGet && path == "/stats":
		route = routeStats
		return h.stats(ctx, log)
	case method == http.MethodPost && isMembersPath(path):
		route = routeCreate
		return h.createMember(ctx, log, ev.Body)
	case method == http.MethodDelete && strings.HasPrefix(path, "/users/"):
		route = routeDelete
		return h.deleteMember(ctx, log, strings.Split(path, "/")[2])
	}

	route = routeNotFound
	log.Info("route not found")
	return jsonResponse(http.StatusNotFound, NotFoundResponse{
		Success:            false,
		Error:              "endpoint not found",
		AvailableEndpoints: AvailableEndpoints,
	})
}

func isMembersPath(path string) bool {
	return path == "/users" || path == "/members"
}

func (h *MemberHandler) fail(log logrus.FieldLogger, err error) Response {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.IsClientError() {
		log.WithField("reason", httpErr.Message).Info("member request rejected")
	} else {
		log.WithError(err).Error("member request failed")
	}
	return errorResponse(httpErr)
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {object} ListMembersResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *MemberHandler) listMembers(ctx context.Context, log logrus.FieldLogger) Response {
	members, err := h.svc.ListMembers(ctx)
	if err != nil {
		return h.fail(log, err)
	}
	return jsonResponse(http.StatusOK, ListMembersResponse{
		Success: true,
		Members: members,
		Total:   len(members),
	})
}

// createMember godoc
// @Summary Create member
// @Tags members
// @Accept json
// @Produce json
// @Param member body model.CreateMemberRequest true "Member payload"
// @Success 201 {object} CreateMemberResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *MemberHandler) createMember(ctx context.Context, log logrus.FieldLogger, body string) Response {
	var req model.CreateMemberRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return h.fail(log, errors.ErrInvalidBody)
		}
	}

	member, err := h.svc.CreateMember(ctx, &req)
	if err != nil {
		return h.fail(log, err)
	}
	return jsonResponse(http.StatusCreated, CreateMemberResponse{
		Success: true,
		Message: fmt.Sprintf("member %q created", member.FullName),
		User:    member,
		ID:      member.ID,
	})
}

// deleteMember godoc
// @Summary Delete member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} DeleteMemberResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *MemberHandler) deleteMember(ctx context.Context, log logrus.FieldLogger, id string) Response {
	if id == "" {
		return h.fail(log, errors.ErrMissingID)
	}
	if err := h.svc.DeleteMember(ctx, id); err != nil {
		return h.fail(log.WithField("member_id", id), err)
	}
	return jsonResponse(http.StatusOK, DeleteMemberResponse{
		Success:       true,
		Message:       "member deleted",
		DeletedUserID: id,
	})
}

// stats godoc
// @Summary Gym statistics
// @Tags members
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *MemberHandler) stats(ctx context.Context, log logrus.FieldLogger) Response {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return h.fail(log, err)
	}
	return jsonResponse(http.StatusOK, StatsResponse{Success: true, Stats: stats})
}

// Echo adapts Handle to an Echo route. basePath is stripped from the request
// path before dispatch.
func (h *MemberHandler) Echo(basePath string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		var body []byte
		if req.Body != nil {
			var err error
			body, err = io.ReadAll(req.Body)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
		}

		path := req.URL.Path
		if basePath != "" {
			path = strings.TrimPrefix(path, basePath)
			if path == "" {
				path = "/"
			}
		}

		resp := h.Handle(req.Context(), Event{
			Method: req.Method,
			Path:   path,
			Body:   string(body),
		})
		for k, v := range resp.Headers {
			c.Response().Header().Set(k, v)
		}
		return c.Blob(resp.StatusCode, resp.Headers[HeaderContentType], []byte(resp.Body))
	}
}
