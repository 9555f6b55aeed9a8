package util

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
)

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

// NewRestyClient returns the shared outbound HTTP client. Retries cover
// transport-level failures only; callers own their request semantics.
func NewRestyClient() *resty.Client {
	return resty.
		New().
		SetRetryCount(3).
		SetLogger(nopLogger{}).
		SetTimeout(10 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			retry, _ := retryablehttp.DefaultRetryPolicy(r.Request.Context(), r.RawResponse, err)
			return retry
		})
}

// Ptr returns a pointer to any value.
func Ptr[T any](t T) *T {
	return &t
}

// Val dereferences a pointer, returning the zero value for nil.
func Val[T any](t *T) T {
	if t != nil {
		return *t
	}
	var def T
	return def
}
