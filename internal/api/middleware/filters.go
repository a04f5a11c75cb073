package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

// Logger logs every request once it has been served.
func Logger(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()

		chain.ProcessFilter(req, resp)

		logger.Info().
			Str("method", req.Request.Method).
			Str("path", req.Request.URL.Path).
			Int("status", resp.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("Request served")
	}
}

// RecoverPanic turns a panicking handler into a 500 response.
func RecoverPanic(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("method", req.Request.Method).
					Str("path", req.Request.URL.Path).
					Interface("panic", r).
					Msg("Recovered from panic")
				HandleError(resp, fmt.Errorf("internal server error"), http.StatusInternalServerError)
			}
		}()

		chain.ProcessFilter(req, resp)
	}
}
