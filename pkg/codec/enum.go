/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package codec

import "slices"

// ClosedEnum is implemented by string enums with a fixed set of values. A value
// outside the set decodes to an absent field instead of being kept.
type ClosedEnum interface {
	IsKnown() bool
	// Closed marks the enum as rejecting values outside its set.
	Closed()
}

// IsKnownValue reports whether value is one of known. Expandable enums use it to
// resolve the raw string against their constants without rejecting unknown values.
func IsKnownValue[T ~string](value T, known ...T) bool {
	return slices.Contains(known, value)
}
