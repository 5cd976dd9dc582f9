// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pngdata implements the low-level pieces of the PNG container format:
// the file signature, chunk type codes, the chunk frame and its CRC.
//
// Every error returned by this package wraps exactly one Kind, so callers can
// classify failures with errors.Is(err, pngdata.ErrCRC) and friends.
package pngdata
