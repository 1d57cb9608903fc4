package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestMapTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "context deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: ErrTimeout},
		{name: "net timeout", err: &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}}, want: ErrTimeout},
		{name: "dial refused", err: &url.Error{Op: "Get", URL: "http://x", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}}, want: ErrConnectionFailure},
		{name: "dns", err: &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Err: "no such host", Name: "x", IsNotFound: true}}, want: ErrConnectionFailure},
		{name: "reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), want: ErrConnectionFailure},
		{name: "other", err: errors.New("unsupported protocol scheme"), want: ErrTransport},
		{name: "canceled", err: context.Canceled, want: ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapTransportError(tt.err)

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "the cause stays in the chain")
		})
	}
}

func TestMapTransportError_Nil(t *testing.T) {
	assert.NoError(t, mapTransportError(nil))
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{StatusCode: 500, Status: "500 Internal Server Error", URL: "https://api.test/users"}
	assert.Equal(t, "500 Internal Server Error for url https://api.test/users", err.Error())

	err = &StatusError{StatusCode: 404, URL: "https://api.test", Body: "not found"}
	assert.Equal(t, "404 for url https://api.test: not found", err.Error())

	assert.ErrorIs(t, err, ErrHTTPStatus)
}
