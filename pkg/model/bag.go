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

package model

import (
	"fmt"
	"strings"

	"github.com/oliveagle/jsonpath"
)

// Bag is a free-form JSON object such as a webhook payload or an object task element.
// Nested objects decode as map[string]any and numbers as json.Number, so integers
// beyond 2^53 are written back unchanged.
type Bag map[string]any

// Lookup evaluates a JSONPath expression against the bag. A path without the leading
// "$" is taken relative to the root, so "process.state" and "$.process.state" match
// the same value.
func (b Bag) Lookup(path string) (any, error) {
	if b == nil {
		return nil, fmt.Errorf("lookup '%s' on an empty bag", path)
	}
	if !strings.HasPrefix(path, "$") {
		path = "$." + path
	}
	return jsonpath.JsonPathLookup(map[string]any(b), path)
}

// LookupString evaluates path and returns the result when it is a string.
func (b Bag) LookupString(path string) (string, bool) {
	v, err := b.Lookup(path)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Ptr returns a pointer to v. It is a convenience for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
