// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dh

import "fmt"

// TxError reports a failed bus transaction against a device register.
type TxError struct {
	Op    string // "write" or "read"
	Reg   byte
	Cause error
}

func (e *TxError) Error() string {
	return fmt.Sprintf("lis3dh: %s register 0x%02X: %v", e.Op, e.Reg, e.Cause)
}

func (e *TxError) Unwrap() error {
	return e.Cause
}
