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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/cicd-comparison-api/pkg/server"
)

var (
	// itemsStored is set by every MemoryStore mutation. The service runs a
	// single store per process; with several stores the gauge reports the
	// size of whichever store changed last.
	itemsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: server.MetricsNamespace,
		Subsystem: "items",
		Name:      "stored",
		Help:      "Number of items currently held in the store",
	})

	itemOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: server.MetricsNamespace,
		Subsystem: "items",
		Name:      "operations_total",
		Help:      "Item operations by operation and result",
	}, []string{"operation", "result"})
)

const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	resultOK       = "ok"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
	resultError    = "error"
)
