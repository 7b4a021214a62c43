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

package item

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/cicd-comparison-api/pkg/defaults"
	cnserrors "github.com/NVIDIA/cicd-comparison-api/pkg/errors"
	"github.com/NVIDIA/cicd-comparison-api/pkg/serializer"
	"github.com/NVIDIA/cicd-comparison-api/pkg/server"
)

const (
	// CollectionPath is the route of the item collection.
	CollectionPath = "/api/items"
	// ResourcePath is the route of a single item.
	ResourcePath = "/api/items/{id}"
)

// Handler serves the item CRUD routes over a Store.
type Handler struct {
	store Store
}

// NewHandler returns a Handler backed by store.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the handler map to register with the server.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		CollectionPath: h.HandleItems,
		ResourcePath:   h.HandleItem,
	}
}

// HandleItems serves GET (list) and POST (create) on the collection.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w)
	case http.MethodPost:
		h.create(w, r)
	default:
		server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// HandleItem serves GET, PUT and DELETE on a single item.
func (h *Handler) HandleItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
	default:
		server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
		return
	}

	id, err := ParseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, operationFor(r.Method), err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	}
}

func (h *Handler) list(w http.ResponseWriter) {
	items := h.store.List()
	itemOperations.WithLabelValues(opList, resultOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, ItemList{Items: items, Total: len(items)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id int64) {
	it, err := h.store.Get(id)
	if err != nil {
		h.fail(w, r, opGet, err)
		return
	}
	itemOperations.WithLabelValues(opGet, resultOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, it)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.fail(w, r, opCreate, err)
		return
	}

	fields, err := DecodeCreate(body)
	if err != nil {
		h.fail(w, r, opCreate, err)
		return
	}

	it := h.store.Create(fields)
	itemOperations.WithLabelValues(opCreate, resultOK).Inc()
	slog.Debug("item created", "id", it.ID)

	w.Header().Set("Location", fmt.Sprintf("%s/%d", CollectionPath, it.ID))
	serializer.RespondJSON(w, http.StatusCreated, it)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id int64) {
	body, err := readBody(w, r)
	if err != nil {
		h.fail(w, r, opUpdate, err)
		return
	}

	patch, err := DecodeUpdate(body)
	if err != nil {
		h.fail(w, r, opUpdate, err)
		return
	}

	it, err := h.store.Update(id, patch)
	if err != nil {
		h.fail(w, r, opUpdate, err)
		return
	}
	itemOperations.WithLabelValues(opUpdate, resultOK).Inc()
	slog.Debug("item updated", "id", id, "changed", it.UpdatedAt != nil)
	serializer.RespondJSON(w, http.StatusOK, it)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.store.Delete(id); err != nil {
		h.fail(w, r, opDelete, err)
		return
	}
	itemOperations.WithLabelValues(opDelete, resultOK).Inc()
	slog.Debug("item deleted", "id", id)
	serializer.RespondNoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	itemOperations.WithLabelValues(op, resultFor(err)).Inc()
	server.WriteErrorFromErr(w, r, err, "Item operation failed", nil)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeRequestTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit),
				map[string]any{"limit": tooLarge.Limit})
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "Failed to read request body", err)
	}
	return data, nil
}

func operationFor(method string) string {
	switch method {
	case http.MethodPut:
		return opUpdate
	case http.MethodDelete:
		return opDelete
	default:
		return opGet
	}
}

func resultFor(err error) string {
	if errors.Is(err, ErrNotFound) {
		return resultNotFound
	}
	var se *cnserrors.StructuredError
	if errors.As(err, &se) {
		switch se.Code {
		case cnserrors.ErrCodeValidationFailed, cnserrors.ErrCodeMalformedRequest, cnserrors.ErrCodeRequestTooLarge:
			return resultInvalid
		}
	}
	return resultError
}
