// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# CORS Middleware

Allow a browser frontend on another origin to send the session cookie:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

Only listed origins are echoed back; "*" echoes any origin.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Forms

Quiz and account endpoints take form posts, urlencoded or multipart:

	values, err := middleware.ParseForm(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

Bodies are capped at MaxFormBytes and query parameters are not merged in.

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
