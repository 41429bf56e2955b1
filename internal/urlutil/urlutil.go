// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package urlutil provides URL validation for QR payloads. It builds on
// net/url.Parse and adds host and length checks so that bare hostnames and
// adversarial inputs are rejected rather than encoded.
package urlutil

import (
	"net"
	"net/url"
	"strings"
)

// MaxURLLength is the longest input IsValidURL accepts. Anything beyond the
// conventional 2048-byte URL ceiling is treated as invalid rather than handed
// to the encoder.
const MaxURLLength = 2048

// IsValidURL reports whether candidate is a well-formed absolute URL with a
// scheme and a network location. The host must contain a domain separator
// ("example" alone does not qualify) or be an IP literal. It never panics;
// any parse failure maps to false.
func IsValidURL(candidate string) bool {
	if candidate == "" || len(candidate) > MaxURLLength {
		return false
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	return strings.Contains(host, ".")
}
