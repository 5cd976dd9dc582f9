// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pngme reads and writes the chunk structure of PNG files, and is
// used to hide text messages in them.
//
// It only deals with the container, never with pixels. The format is:
//   * the 8 byte signature 89 50 4E 47 0D 0A 1A 0A.
//   * zero or more chunks, each of which is
//     * length (uint32, big endian) of the payload
//     * type, four ASCII letters (e.g. "IHDR")
//     * payload, `length` bytes
//     * crc (uint32, big endian), CRC-32/ISO-HDLC over type and payload.
//
// The case of each type letter carries a flag: ancillary, private, reserved
// and safe-to-copy respectively, when lowercase.
//
// png/pngdata implements the signature, type codes and chunk framing.
// png assembles them into a Container and reads/writes whole files.
// cmd/pngme is the command line tool.
package pngme
