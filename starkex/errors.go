// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package starkex builds the canonical StarkEx order messages (settlement,
// transfer, and conditional transfer) and extracts the order id a message
// commits to, following original_source/src/starkware/starkex/order.{h,cc}.
package starkex

import "errors"

// ErrInvalidOrderType is returned when an order type outside [0, 3) is
// packed.
var ErrInvalidOrderType = errors.New("starkex: Invalid order_type")

// ErrFieldOutOfRange is returned when a packed order tuple field exceeds
// its documented limit.
var ErrFieldOutOfRange = errors.New("starkex: field is out of range")

// ErrMessageOutOfRange is returned when a message does not fit in the
// 251-bit range GetOrderIdFromMessage requires.
var ErrMessageOutOfRange = errors.New("starkex: message is out of range")
