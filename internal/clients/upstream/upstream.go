// Package upstream maps errors from Google API clients to app errors that
// carry the remote status code.
package upstream

import (
	"TubeCourse/internal/app_errors"
	"errors"
	"net/http"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
)

// Wrap returns an *app_errors.UpstreamError when err reports a remote status,
// and err unchanged otherwise.
func Wrap(service string, err error) error {
	if err == nil {
		return nil
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code > 0 {
		msg := gErr.Message
		if msg == "" {
			msg = http.StatusText(gErr.Code)
		}
		return &app_errors.UpstreamError{Service: service, StatusCode: gErr.Code, Message: msg, Err: err}
	}

	var aErr *apierror.APIError
	if errors.As(err, &aErr) {
		code := aErr.HTTPCode()
		if code <= 0 && aErr.GRPCStatus() != nil {
			code = httpStatusFromCode(aErr.GRPCStatus().Code())
		}
		if code > 0 {
			msg := aErr.Reason()
			if st := aErr.GRPCStatus(); st != nil && st.Message() != "" {
				msg = st.Message()
			}
			if msg == "" {
				msg = http.StatusText(code)
			}
			return &app_errors.UpstreamError{Service: service, StatusCode: code, Message: msg, Err: err}
		}
	}
	return err
}

func httpStatusFromCode(c codes.Code) int {
	switch c {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Internal, codes.Unknown, codes.DataLoss:
		return http.StatusInternalServerError
	}
	return 0
}
