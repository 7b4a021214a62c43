// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	cnserrors "github.com/NVIDIA/cicd-comparison-api/pkg/errors"
	"github.com/NVIDIA/cicd-comparison-api/pkg/serializer"
)

// Wire error codes that do not follow the HTTP_<status> pattern.
const (
	WireCodeValidation = "VALIDATION_ERROR"
	WireCodeInternal   = "INTERNAL_SERVER_ERROR"
)

// internalErrorMessage is the only message a client ever sees for a 500.
const internalErrorMessage = "Internal server error"

// WriteError writes the error envelope for an explicit status and code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	writeErrorResponse(w, r, statusCode, ErrorResponse{
		Error:     wireErrorCode(code, statusCode),
		Message:   message,
		Detail:    message,
		Details:   details,
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err onto the error envelope. A *StructuredError
// decides the status and code; anything else, and any INTERNAL error, is
// answered with a generic 500 and only logged.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *cnserrors.StructuredError
	if !errors.As(err, &se) || se.Code == cnserrors.ErrCodeInternal {
		slog.Error(fallbackMessage,
			"error", err,
			"requestID", requestIDFrom(r),
			"method", r.Method,
			"path", r.URL.Path,
		)
		WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal,
			internalErrorMessage, retryableFromCode(cnserrors.ErrCodeInternal), nil)
		return
	}

	status := HTTPStatusFromCode(se.Code)
	if len(se.Fields) > 0 {
		writeErrorResponse(w, r, status, ErrorResponse{
			Error:     wireErrorCode(se.Code, status),
			Message:   se.Message,
			Detail:    se.Fields,
			Details:   mergeDetails(se.Context, extraDetails),
			Retryable: retryableFromCode(se.Code),
		})
		return
	}

	WriteError(w, r, status, se.Code, se.Message, retryableFromCode(se.Code),
		mergeDetails(se.Context, extraDetails))
}

// WriteMethodNotAllowed answers 405 and sets the Allow header.
func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method Not Allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}

// WriteNotFound answers 404 for a path no route matches.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound, "Not Found", false, nil)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, resp ErrorResponse) {
	resp.RequestID = requestIDFrom(r)
	if resp.RequestID == "" {
		resp.RequestID = uuid.New().String()
	}
	resp.Timestamp = time.Now().UTC()

	serializer.RespondJSON(w, statusCode, resp)
}

func requestIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(contextKeyRequestID).(string)
	return id
}

// HTTPStatusFromCode maps an error code onto an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code cnserrors.ErrorCode) int {
	switch code {
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cnserrors.ErrCodeValidationFailed, cnserrors.ErrCodeMalformedRequest:
		return http.StatusUnprocessableEntity
	case cnserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cnserrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cnserrors.ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case cnserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cnserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cnserrors.ErrorCode) bool {
	switch code {
	case cnserrors.ErrCodeTimeout, cnserrors.ErrCodeUnavailable,
		cnserrors.ErrCodeRateLimitExceeded, cnserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// wireErrorCode is the value of the "error" field clients see.
func wireErrorCode(code cnserrors.ErrorCode, statusCode int) string {
	switch code {
	case cnserrors.ErrCodeValidationFailed, cnserrors.ErrCodeMalformedRequest:
		return WireCodeValidation
	case cnserrors.ErrCodeInternal:
		return WireCodeInternal
	default:
		return fmt.Sprintf("HTTP_%d", statusCode)
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
