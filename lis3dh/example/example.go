// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// One-shot reader: configures the LIS3DH, waits for the device to settle
// and prints the raw acceleration counts for the three axes.
package main

import (
	"fmt"
	"log"

	"github.com/sensorkit/devices/lis3dh"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := lis3dh.NewI2C(b, nil)
	if err != nil {
		log.Fatalf("failed to initialize LIS3DH: %v", err)
	}

	a, err := d.ReadAcceleration()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Acceleration in X-Axis : %d\n", a.X)
	fmt.Printf("Acceleration in Y-Axis : %d\n", a.Y)
	fmt.Printf("Acceleration in Z-Axis : %d\n", a.Z)
}
