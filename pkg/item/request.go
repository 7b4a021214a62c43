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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	cnserrors "github.com/NVIDIA/cicd-comparison-api/pkg/errors"
)

// Field error types reported in validation failures.
const (
	ErrTypeMissing     = "missing"
	ErrTypeValue       = "value_error"
	ErrTypeTooLong     = "string_too_long"
	ErrTypeString      = "string_type"
	ErrTypeJSONInvalid = "json_invalid"
	ErrTypeObject      = "model_attributes_type"
	ErrTypeIntParsing  = "int_parsing"
)

const (
	msgMissing     = "Field required"
	msgBlank       = "must not be whitespace-only"
	msgTooLong     = "too long: must be at most %s characters"
	msgString      = "Input should be a valid string"
	msgJSONInvalid = "JSON decode error"
	msgObject      = "Input should be a valid dictionary or object"
	msgIntParsing  = "Input should be a valid integer, unable to parse string as an integer"
)

const (
	locBody     = "body"
	locPath     = "path"
	pathParamID = "item_id"

	fieldName        = "name"
	fieldDescription = "description"

	// Same rules as the CreateRequest tags, minus required.
	nameRules        = "nonblank,max=100"
	descriptionRules = "nonblank,max=500"
)

// CreateRequest is the wire shape of a create payload.
type CreateRequest struct {
	Name        *string `json:"name" validate:"required,nonblank,max=100"`
	Description *string `json:"description" validate:"required,nonblank,max=500"`
}

// UpdateRequest is the wire shape of an update payload. Present fields are
// held to the same rules as on create.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("register nonblank validation: %v", err))
	}
	return v
}

// DecodeCreate parses and validates a create payload.
func DecodeCreate(body []byte) (Fields, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return Fields{}, err
	}

	var req CreateRequest
	var fields []cnserrors.FieldError
	req.Name, fields = decodeString(obj, fieldName, fields)
	req.Description, fields = decodeString(obj, fieldDescription, fields)

	if err := validate.Struct(req); err != nil {
		fields = appendRuleErrors(fields, err)
	}
	if len(fields) > 0 {
		return Fields{}, newFieldError(fields)
	}

	return Fields{
		Name:        strings.TrimSpace(*req.Name),
		Description: strings.TrimSpace(*req.Description),
	}, nil
}

// DecodeUpdate parses and validates a partial update payload.
func DecodeUpdate(body []byte) (Patch, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return Patch{}, err
	}

	var req UpdateRequest
	var fields []cnserrors.FieldError
	req.Name, fields = decodeString(obj, fieldName, fields)
	req.Description, fields = decodeString(obj, fieldDescription, fields)

	var p Patch
	if req.Name != nil {
		fields = checkPresent(fields, fieldName, *req.Name, nameRules)
		p.Name = trimmed(*req.Name)
	}
	if req.Description != nil {
		fields = checkPresent(fields, fieldDescription, *req.Description, descriptionRules)
		p.Description = trimmed(*req.Description)
	}

	if len(fields) > 0 {
		return Patch{}, newFieldError(fields)
	}
	return p, nil
}

// ParseID parses the item id path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, newFieldError([]cnserrors.FieldError{{
			Type:  ErrTypeIntParsing,
			Loc:   []string{locPath, pathParamID},
			Msg:   msgIntParsing,
			Input: raw,
		}})
	}
	return id, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		return nil, newFieldError([]cnserrors.FieldError{{
			Type: ErrTypeJSONInvalid,
			Loc:  []string{locBody},
			Msg:  msgJSONInvalid,
		}})
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		var input any
		_ = json.Unmarshal(body, &input)
		return nil, newFieldError([]cnserrors.FieldError{{
			Type:  ErrTypeObject,
			Loc:   []string{locBody},
			Msg:   msgObject,
			Input: input,
		}})
	}
	return obj, nil
}

// decodeString extracts a string member. A missing or null member yields
// nil; a member of another JSON type is recorded as a string_type error.
func decodeString(obj map[string]json.RawMessage, key string, fields []cnserrors.FieldError) (*string, []cnserrors.FieldError) {
	raw, ok := obj[key]
	if !ok || string(raw) == "null" {
		return nil, fields
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var input any
		_ = json.Unmarshal(raw, &input)
		return nil, append(fields, cnserrors.FieldError{
			Type:  ErrTypeString,
			Loc:   []string{locBody, key},
			Msg:   msgString,
			Input: input,
		})
	}
	return &s, fields
}

func checkPresent(fields []cnserrors.FieldError, key, value, rules string) []cnserrors.FieldError {
	var verrs validator.ValidationErrors
	if err := validate.Var(value, rules); errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, toFieldError(key, fe.Tag(), fe.Param(), value))
		}
	}
	return fields
}

// appendRuleErrors converts validator failures, skipping members that
// already failed to decode.
func appendRuleErrors(fields []cnserrors.FieldError, err error) []cnserrors.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}

	failed := make(map[string]bool, len(fields))
	for _, f := range fields {
		failed[f.Loc[len(f.Loc)-1]] = true
	}

	for _, fe := range verrs {
		if failed[fe.Field()] {
			continue
		}
		input, _ := fe.Value().(string)
		fields = append(fields, toFieldError(fe.Field(), fe.Tag(), fe.Param(), input))
	}
	return fields
}

func toFieldError(key, tag, param, input string) cnserrors.FieldError {
	fe := cnserrors.FieldError{Loc: []string{locBody, key}}
	switch tag {
	case "required":
		fe.Type, fe.Msg = ErrTypeMissing, msgMissing
		return fe
	case "nonblank":
		fe.Type, fe.Msg = ErrTypeValue, msgBlank
	case "max":
		fe.Type, fe.Msg = ErrTypeTooLong, fmt.Sprintf(msgTooLong, param)
	default:
		fe.Type, fe.Msg = ErrTypeValue, fmt.Sprintf("failed %q constraint", tag)
	}
	fe.Input = input
	return fe
}

func newFieldError(fields []cnserrors.FieldError) *cnserrors.StructuredError {
	code := cnserrors.ErrCodeValidationFailed
	for _, f := range fields {
		switch f.Type {
		case ErrTypeString, ErrTypeJSONInvalid, ErrTypeObject, ErrTypeIntParsing:
			code = cnserrors.ErrCodeMalformedRequest
		}
	}
	return cnserrors.NewValidation(code, fields)
}

func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	return &t
}
