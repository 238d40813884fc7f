// Package domain defines domain-level errors for the analysis feature.
package domain

import "errors"

// Errors returned by the analysis usecase. The handler maps each one to an HTTP status;
// wrapped details are logged but never sent to the caller.
var (
	// ErrNoData indicates the request carried no usable business profile.
	ErrNoData = errors.New("no data provided")

	// ErrNotMeaningful indicates the business description was rejected as gibberish or too short.
	ErrNotMeaningful = errors.New("business description is not meaningful")

	// ErrNotConfigured indicates the completion service has no credentials or model configured.
	ErrNotConfigured = errors.New("completion service is not configured")

	// ErrUpstream indicates the completion service call failed or timed out.
	ErrUpstream = errors.New("completion service request failed")

	// ErrResponseParse indicates the completion reply was not a valid analysis JSON object.
	ErrResponseParse = errors.New("completion response could not be parsed")

	// ErrAuditDisabled indicates no database is configured for the request audit log.
	ErrAuditDisabled = errors.New("analysis audit log is disabled")
)
