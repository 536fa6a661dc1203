// Package api exposes report compilation over HTTP for the browser shell.
//
// Endpoints:
//
//	GET  /health          liveness probe
//	POST /api/timeline    merged, coloured timeline for the interactive view
//	POST /api/report      compiled document (?dialogue=true|false, ?format=json|text)
//
// Both POST endpoints accept an AnalysisResult as a JSON or YAML body, or as a
// multipart upload in the "file" field. Invalid results are answered with 422
// and the code ERR_INVALID_INPUT.
package api
