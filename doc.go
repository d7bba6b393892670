// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for device drivers.
//
// Each driver lives in its own package. See lis3dh for the LIS3DH 3-axis
// accelerometer.
package devices
