// SPDX-License-Identifier: MIT

// Package aiff probes the playback duration of AIFF files via the COMM
// chunk, using github.com/go-audio/aiff.
package aiff
