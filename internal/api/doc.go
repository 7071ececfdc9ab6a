// Package api implements the HTTP handlers of the kundli service. Handlers
// decode and validate the JSON birth request, call service.KundliService and
// shape the result into the response DTOs in models.go. Errors are mapped to
// status codes and safe messages in errors.go and written in the shared
// {error, trace_id} envelope.
package api
