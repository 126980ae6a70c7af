package middleware

import (
	"net/http"

	"fitit-backend/pkg/observability"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Trace wraps each request in an X-Ray subsegment under the segment the
// Lambda runtime opened. Requests with no parent segment (local runs) pass
// through untouched.
func Trace(tracer *observability.Tracer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tracer == nil || xray.GetSegment(r.Context()) == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx, seg := tracer.StartSubsegment(r.Context(), r.URL.Path)
			defer seg.Close(nil)

			tracer.AddAnnotation(ctx, "httpMethod", r.Method)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
