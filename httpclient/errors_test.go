package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	if ErrCodeTimeout.String() != "timeout" || ErrCodeRequest.String() != "request" {
		t.Error("unexpected code names")
	}
	if ErrorCode(99).String() != "unknown" {
		t.Error("expected unknown for undefined code")
	}
}

func TestError_Error(t *testing.T) {
	withStatus := ClassifyStatusCode(502, nil)
	if got := withStatus.Error(); got != "httpclient: server (HTTP 502): HTTP 502" {
		t.Errorf("unexpected message %q", got)
	}
	conn := NewConnectionError(fmt.Errorf("dial tcp: connection refused"))
	if got := conn.Error(); got != "httpclient: connection: dial tcp: connection refused" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := fmt.Errorf("wrapped: %w", NewTimeoutError(inner))
	if !errors.Is(err, inner) {
		t.Error("expected inner error in chain")
	}
	if !IsTimeout(err) {
		t.Error("expected IsTimeout through wrapping")
	}
}

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status    int
		wantNil   bool
		code      ErrorCode
		retryable bool
	}{
		{200, true, 0, false},
		{204, true, 0, false},
		{400, false, ErrCodeValidation, false},
		{401, false, ErrCodeAuth, false},
		{403, false, ErrCodeAuth, false},
		{404, false, ErrCodeNotFound, false},
		{413, false, ErrCodeValidation, false},
		{429, false, ErrCodeRateLimit, true},
		{500, false, ErrCodeServer, true},
		{503, false, ErrCodeServer, true},
		{304, false, ErrCodeServer, false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			e := ClassifyStatusCode(tc.status, []byte("body"))
			if tc.wantNil {
				if e != nil {
					t.Fatalf("expected nil, got %v", e)
				}
				return
			}
			if e.Code != tc.code || e.Retryable != tc.retryable || e.StatusCode != tc.status {
				t.Errorf("got %+v", e)
			}
			if string(e.Body) != "body" {
				t.Errorf("expected body preserved, got %q", e.Body)
			}
		})
	}
}
