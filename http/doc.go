// Package http provides the HTTP surface for the Pawtrait photo API.
//
// # Routes
//
//	GET  /health                      static readiness check, unauthenticated
//	POST /photos/upload-url           mint a presigned upload URL
//	POST /photos                      record photo metadata (idempotent replace)
//	GET  /photos                      list the family's photos, newest first
//	GET  /photos/{photoID}/content    302 redirect to a presigned download URL
//
// # Authentication
//
// Every /photos route requires the x-family-id header. FamilyMiddleware
// rejects requests without it (400) and, when an allow-list is configured,
// requests whose id is not a member (403). An empty allow-list admits every
// non-empty id.
//
// # Usage
//
//	allow := allowlist.Parse("alice,bob")
//	handler := http.NewHandler(&http.HandlerConfig{AllowList: allow}, service)
//	http.ListenAndServe(":8080", handler.Router())
//
// The service parameter must implement the Service interface with
// IssueUpload, Record, List, and ContentURL methods. Errors map to JSON
// bodies of the form {"error": code, "message": text}; backend failures are
// reported as 502 and never retried here.
package http
