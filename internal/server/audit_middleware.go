package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coliride/backend/internal/auth"
)

// auditLogMiddleware records every API mutation: who did it, which entity it
// touched, the request body, and what came back. Reads and static assets are
// not audited.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}
		entry.Entity, entry.EntityID = entityFromPath(r.URL.Path)

		if token := auth.TokenFromRequest(r); token != "" {
			if claims, err := auth.VerifyToken(token, s.jwtSecret); err == nil {
				entry.UserID = claims.UserID
			}
		}

		// credentials never reach the audit log
		skipBody := strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") ||
			strings.HasPrefix(r.URL.Path, "/api/auth/")
		if !skipBody && r.Body != nil {
			body, _ := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
			r.Body = io.NopCloser(bytes.NewBuffer(body))
			entry.Request = string(body)
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// entityFromPath turns /api/<collection>/<id>/... into the audited entity
// and its id. Collection-level paths yield an empty id.
func entityFromPath(path string) (entity, id string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" {
		return "", ""
	}
	entity = strings.TrimSuffix(parts[1], "s")
	if len(parts) > 2 {
		id = parts[2]
	}
	return entity, id
}
