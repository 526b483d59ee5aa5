// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import onestmt "fillmore-labs.com/onestmt/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
// The rule itself takes no options; only analyzer-level behavior is exposed.
type Settings struct {
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [onestmt.Option] for the onestmt analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []onestmt.Option {
	var opts []onestmt.Option

	opts = appendOption(opts, s.Generated, onestmt.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [onestmt.Option] list.
func appendOption[T any](opts []onestmt.Option, value *T, constructor func(T) onestmt.Option) []onestmt.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
