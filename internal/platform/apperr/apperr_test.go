package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestCodeOf(t *testing.T) {
	err := NotFound(CodeBillNotFound, "bill not found")
	if CodeOf(err) != CodeBillNotFound {
		t.Errorf("expected %s, got %s", CodeBillNotFound, CodeOf(err))
	}

	wrapped := fmt.Errorf("generate bill: %w", err)
	if CodeOf(wrapped) != CodeBillNotFound {
		t.Errorf("expected code to survive wrapping, got %q", CodeOf(wrapped))
	}

	if CodeOf(errors.New("plain")) != "" {
		t.Error("expected empty code for non-apperr error")
	}
}

func TestIsCode(t *testing.T) {
	err := Conflict(CodeBillAlreadyExists, "duplicate")
	if !IsCode(err, CodeBillAlreadyExists) {
		t.Error("expected IsCode to match")
	}
	if IsCode(err, CodeBillNotFound) {
		t.Error("expected IsCode to reject a different code")
	}
}

func doHandle(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(zerolog.Nop())(err, c)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return rec, resp
}

func TestHTTPErrorHandler_Kinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{NotFound(CodeAppointmentNotFound, "missing"), http.StatusNotFound, CodeAppointmentNotFound},
		{Conflict(CodeBillAlreadyExists, "duplicate"), http.StatusConflict, CodeBillAlreadyExists},
		{BadRequest(CodeAppointmentNotCompleted, "not completed"), http.StatusBadRequest, CodeAppointmentNotCompleted},
	}

	for _, tc := range cases {
		rec, resp := doHandle(t, tc.err)
		if rec.Code != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.code, tc.status, rec.Code)
		}
		if resp.ErrorCode != tc.code {
			t.Errorf("expected code %s, got %s", tc.code, resp.ErrorCode)
		}
	}
}

func TestHTTPErrorHandler_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound(CodeDoctorNotFound, "no such doctor"))
	rec, resp := doHandle(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if resp.ErrorCode != CodeDoctorNotFound {
		t.Errorf("expected %s, got %s", CodeDoctorNotFound, resp.ErrorCode)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, resp := doHandle(t, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if resp.Message != "internal server error" {
		t.Errorf("internal details leaked: %q", resp.Message)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, _ := doHandle(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
