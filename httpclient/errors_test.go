package httpclient

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeCanceled, "canceled"},
		{ErrCodeConnection, "connection"},
		{ErrCodeAuth, "auth"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeValidation, "validation"},
		{ErrCodeDecode, "decode"},
		{ErrCodeServer, "server"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{StatusCode: 404, Code: ErrCodeNotFound, Message: "HTTP 404"}
	want := "httpclient: not_found (HTTP 404): HTTP 404"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := &Error{Code: ErrCodeConnection, Message: "connection refused"}
	want2 := "httpclient: connection: connection refused"
	if got := e2.Error(); got != want2 {
		t.Errorf("got %q, want %q", got, want2)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("bad input")
	outer := &Error{Code: ErrCodeServer, Message: "wrapped", Err: inner}
	if !errors.Is(outer, inner) {
		t.Error("Unwrap did not expose inner error")
	}
}

func TestNewDecodeError(t *testing.T) {
	err := NewDecodeError("httpclient_test.user", []byte("not-json"), errors.New("invalid character"))
	if !IsDecode(err) {
		t.Error("expected IsDecode=true")
	}
	msg := err.Error()
	if !strings.Contains(msg, "not-json") {
		t.Errorf("message should contain raw body, got %q", msg)
	}
	if !strings.Contains(msg, "httpclient_test.user") {
		t.Errorf("message should contain target type, got %q", msg)
	}
	if err.TargetType != "httpclient_test.user" {
		t.Errorf("TargetType = %q", err.TargetType)
	}
}

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		code    int
		wantNil bool
		errCode ErrorCode
	}{
		{200, true, 0},
		{201, true, 0},
		{204, true, 0},
		{299, true, 0},
		{301, false, ErrCodeServer},
		{400, false, ErrCodeValidation},
		{401, false, ErrCodeAuth},
		{403, false, ErrCodeAuth},
		{404, false, ErrCodeNotFound},
		{418, false, ErrCodeValidation},
		{429, false, ErrCodeRateLimit},
		{500, false, ErrCodeServer},
		{503, false, ErrCodeServer},
	}
	for _, tt := range tests {
		err := ClassifyStatusCode(tt.code, []byte("body"))
		if tt.wantNil {
			if err != nil {
				t.Errorf("ClassifyStatusCode(%d) = %v, want nil", tt.code, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("ClassifyStatusCode(%d) = nil, want error", tt.code)
			continue
		}
		if err.Code != tt.errCode {
			t.Errorf("ClassifyStatusCode(%d).Code = %v, want %v", tt.code, err.Code, tt.errCode)
		}
		if string(err.Body) != "body" {
			t.Errorf("ClassifyStatusCode(%d) lost body", tt.code)
		}
	}
}

func TestPredicates(t *testing.T) {
	if IsCanceled(NewTimeoutError(errors.New("t"))) {
		t.Error("timeout should not match IsCanceled")
	}
	if !IsCanceled(NewCanceledError(errors.New("c"))) {
		t.Error("IsCanceled failed")
	}
	if !IsConnection(NewConnectionError(errors.New("refused"))) {
		t.Error("IsConnection failed")
	}
	if IsDecode(errors.New("plain")) {
		t.Error("plain error should not match IsDecode")
	}
}
