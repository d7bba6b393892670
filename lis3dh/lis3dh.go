// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dh

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the I²C address of the LIS3DH with the SDO pin tied low.
const DefaultAddr uint16 = 0x18

const (
	// Control registers.
	CtrlReg1 byte = 0x20 // Data rate selection, power mode, axis enable
	CtrlReg4 byte = 0x23 // Block data update, full-scale selection

	// Acceleration data registers, low byte first.
	OutXL byte = 0x28
	OutXH byte = 0x29
	OutYL byte = 0x2A
	OutYH byte = 0x2B
	OutZL byte = 0x2C
	OutZH byte = 0x2D

	// ctrlReg1On powers the device on at a 10Hz output rate with the X, Y
	// and Z axes enabled.
	ctrlReg1On byte = 0x27
	// ctrlReg1Off powers the device down.
	ctrlReg1Off byte = 0x00
	// ctrlReg4Init selects continuous update and the ±2g full scale.
	ctrlReg4Init byte = 0x00
)

// Opts holds the configuration options for the device.
type Opts struct {
	// SettleTime is how long to wait after configuration before the data
	// registers hold valid samples. The device needs time to produce its
	// first sample after power-on. Leave 0 to use the default of 500ms.
	SettleTime time.Duration
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	SettleTime: 500 * time.Millisecond,
}

// Dev represents a LIS3DH accelerometer on an I²C bus.
type Dev struct {
	d    *i2c.Dev
	opts Opts
}

// NewI2C returns an object that communicates over I²C to a LIS3DH
// accelerometer. The device is powered on and configured, then the driver
// blocks for the settle time so that the first read returns valid data.
// The Opts can be nil.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.SettleTime <= 0 {
		opts = &Opts{SettleTime: DefaultOpts.SettleTime}
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: DefaultAddr}, opts: *opts}
	if err := d.writeRegister(CtrlReg1, ctrlReg1On); err != nil {
		return nil, err
	}
	if err := d.writeRegister(CtrlReg4, ctrlReg4Init); err != nil {
		return nil, err
	}
	time.Sleep(d.opts.SettleTime)
	return d, nil
}

// Acceleration holds one raw sample for the three axes, in device counts.
type Acceleration struct {
	X int16
	Y int16
	Z int16
}

// String returns a string representation of the Acceleration.
func (a Acceleration) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", a.X, a.Y, a.Z)
}

// ReadAcceleration reads one raw sample from the device. Each axis is read
// as two independent single-byte transactions, low byte then high byte, in
// the order X, Y, Z. The first failed transaction aborts the read; no
// partial sample is returned.
func (d *Dev) ReadAcceleration() (Acceleration, error) {
	x, err := d.readAxis(OutXL, OutXH)
	if err != nil {
		return Acceleration{}, err
	}
	y, err := d.readAxis(OutYL, OutYH)
	if err != nil {
		return Acceleration{}, err
	}
	z, err := d.readAxis(OutZL, OutZH)
	if err != nil {
		return Acceleration{}, err
	}
	return Acceleration{X: x, Y: y, Z: z}, nil
}

// Halt powers the device down. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.writeRegister(CtrlReg1, ctrlReg1Off)
}

func (d *Dev) String() string {
	return fmt.Sprintf("lis3dh: %s", d.d.String())
}

// readAxis reads the two data registers of one axis and combines them.
func (d *Dev) readAxis(lowReg, highReg byte) (int16, error) {
	low, err := d.readRegister(lowReg)
	if err != nil {
		return 0, err
	}
	high, err := d.readRegister(highReg)
	if err != nil {
		return 0, err
	}
	return combine(low, high), nil
}

// combine assembles a low/high register pair into a signed 16-bit count.
// The pair is an unsigned 16-bit quantity wrapped to the signed range, so
// 0x8000 and above map to negative values.
func combine(low, high byte) int16 {
	return int16(uint16(high)<<8 | uint16(low))
}

func (d *Dev) writeRegister(reg, value byte) error {
	if err := d.d.Tx([]byte{reg, value}, nil); err != nil {
		return &TxError{Op: "write", Reg: reg, Cause: err}
	}
	return nil
}

func (d *Dev) readRegister(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, &TxError{Op: "read", Reg: reg, Cause: err}
	}
	return r[0], nil
}

var _ conn.Resource = &Dev{}
