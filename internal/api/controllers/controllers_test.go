package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Viveknaik1/CFMS/internal/models/request_models"
	"github.com/Viveknaik1/CFMS/internal/models/response_models"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Stub services returning canned results; each records whether it was
// called so gating tests can assert the handler never ran.

type stubAccountService struct {
	registerErr error
	loginResp   *response_models.LoginResponse
	loginErr    error
	called      bool
}

func (s *stubAccountService) RegisterStudent(context.Context, request_models.StudentRegistrationRequest) error {
	s.called = true
	return s.registerErr
}

func (s *stubAccountService) RegisterExternal(context.Context, request_models.ExternalRegistrationRequest) error {
	s.called = true
	return s.registerErr
}

func (s *stubAccountService) RegisterOrganiser(context.Context, request_models.OrganiserRegistrationRequest) error {
	s.called = true
	return s.registerErr
}

func (s *stubAccountService) Login(context.Context, request_models.LoginRequest) (*response_models.LoginResponse, error) {
	s.called = true
	return s.loginResp, s.loginErr
}

type stubEventService struct {
	events  []response_models.EventResponse
	already bool
	err     error
	called  bool
}

func (s *stubEventService) ListEvents(context.Context) ([]response_models.EventResponse, error) {
	s.called = true
	return s.events, s.err
}

func (s *stubEventService) RegisterForEvent(context.Context, string, uuid.UUID) (bool, error) {
	s.called = true
	return s.already, s.err
}

func (s *stubEventService) VolunteerForEvent(context.Context, string, uuid.UUID) (bool, error) {
	s.called = true
	return s.already, s.err
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, header http.Header) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an APIResponse: %v\nbody: %s", err, w.Body.String())
	}
	return w, resp
}
