// SPDX-License-Identifier: MIT

// Package vorbis probes the playback duration of Ogg Vorbis files, using
// github.com/jfreymuth/oggvorbis.
package vorbis
