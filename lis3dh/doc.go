// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis3dh controls a ST LIS3DH 3-axis accelerometer over I²C.
//
// The driver configures the device for a 10Hz output rate with all three
// axes enabled at the ±2g full scale and reads back one raw sample per
// axis. Readings are the device's native signed 16-bit counts; scaling to
// physical units is left to the caller.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis3dh.pdf
package lis3dh
