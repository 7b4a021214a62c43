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


// Package serializer renders values as JSON, YAML, or a flat table.
//
// It serves two callers: the HTTP handlers, which use RespondJSON for every
// response body, and the CLI, which uses Writer for commands that take a
// --format flag.
//
// Writing to stdout or a file:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, info); err != nil {
//		return err
//	}
//
// Writing an HTTP response:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// The table format flattens nested values into dotted keys, using json tag
// names for struct fields and "[i]" segments for slice elements:
//
//	FIELD        VALUE
//	-----        -----
//	commit_hash  abc123
//	version      1.0.0
package serializer
