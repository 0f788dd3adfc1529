// Package api exposes the tag engine over HTTP.
//
// The server answers three questions: what tags does an environment accept
// (GET /v1/tags), what tags does a tag string or wheel filename declare
// (GET /v1/parse), and are these wheels installable in this environment
// (POST /v1/check). Environments are described in query parameters or the
// request body, never detected on the server host.
//
// Errors use a JSON envelope with the machine-readable codes from
// [github.com/matzehuels/wheeltag/pkg/errors]:
//
//	{"error": {"code": "INVALID_TAG", "message": "..."}}
package api
