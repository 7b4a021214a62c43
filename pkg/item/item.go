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
	"time"
)

// Field length limits, counted in characters before trimming.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Item is a stored record as it appears on the wire.
type Item struct {
	ID          int64      `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" yaml:"updated_at"`
}

// ItemList is the response body of the list operation.
type ItemList struct {
	Items []Item `json:"items" yaml:"items"`
	Total int    `json:"total" yaml:"total"`
}

// Fields are the validated, trimmed values of a new item.
type Fields struct {
	Name        string
	Description string
}

// Patch holds the validated, trimmed values of a partial update.
// A nil field leaves the stored value untouched.
type Patch struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the patch supplies no field at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

func (i Item) clone() Item {
	if i.UpdatedAt != nil {
		t := *i.UpdatedAt
		i.UpdatedAt = &t
	}
	return i
}
