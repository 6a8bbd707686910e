// Copyright 2025 go-highway Authors
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

package newton

// Starting value and update weight of the iteration.
const (
	InitialGuess = 1.0
	half         = 0.5
)

// Benchmark workload: approximate √DefaultTarget with DefaultIterations
// steps, DefaultRepeats times.
const (
	DefaultTarget     = 2.0
	DefaultIterations = 10000
	DefaultRepeats    = 10000
)
