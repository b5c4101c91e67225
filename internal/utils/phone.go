// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// NormalizePhone returns the canonical form of a phone number: the input
// with every space character removed. No other transformation is applied.
//
//	NormalizePhone("+998 90 123 45 67") == "+998901234567"
func NormalizePhone(phone string) string {
	return strings.ReplaceAll(phone, " ", "")
}
