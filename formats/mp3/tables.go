// SPDX-License-Identifier: MIT

package mp3

import "fmt"

type version uint8

const (
	mpeg1 version = iota
	mpeg2
	mpeg25
)

type layer uint8

const (
	layerUndefined layer = iota
	layerI
	layerII
	layerIII
)

type channelMode uint8

const (
	stereo channelMode = iota
	jointStereo
	dualChannel
	mono
)

// Bitrates in kbps, indexed [version][layer][4-bit bitrate code].
// Codes 0 (free format) and 15 are reserved and rejected by bitrate().
var bitrates = [3][4][16]uint32{
	{
		{},
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0}, // MPEG-1 Layer I
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0},    // MPEG-1 Layer II
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0},     // MPEG-1 Layer III
	},
	{
		{},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0}, // MPEG-2 Layer I
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},      // MPEG-2 Layer II
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},      // MPEG-2 Layer III
	},
	{
		{},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0}, // MPEG-2.5 Layer I
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},      // MPEG-2.5 Layer II
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},      // MPEG-2.5 Layer III
	},
}

// Sampling rates in Hz, indexed [version][2-bit code]. Code 3 is reserved.
var samplingRates = [3][4]uint32{
	{44100, 48000, 32000, 0}, // MPEG-1
	{22050, 24000, 16000, 0}, // MPEG-2
	{11025, 12000, 8000, 0},  // MPEG-2.5
}

// Samples per frame, indexed [version][layer].
var samplesPerFrameTable = [3][4]uint32{
	{0, 384, 1152, 1152}, // MPEG-1
	{0, 384, 1152, 576},  // MPEG-2
	{0, 384, 1152, 576},  // MPEG-2.5
}

// Side information size in bytes, indexed [version][mode]. This is the
// distance from the end of the frame header to where a Xing/Info block
// begins, if the frame carries one.
var sideInformationSizes = [3][4]uint32{
	{32, 32, 32, 17}, // MPEG-1
	{17, 17, 17, 9},  // MPEG-2
	{17, 17, 17, 9},  // MPEG-2.5
}

func bitrate(v version, l layer, code uint8) (uint32, error) {
	if code < 1 || code >= 15 {
		return 0, fmt.Errorf("%w: %d (0b%04b)", ErrInvalidBitrate, code, code)
	}
	if l == layerUndefined {
		return 0, ErrForbiddenLayer
	}
	return 1000 * bitrates[v][l][code], nil
}

func samplingRate(v version, code uint8) (uint32, error) {
	if code >= 3 {
		return 0, fmt.Errorf("%w: %d (0b%02b)", ErrInvalidSamplingRate, code, code)
	}
	return samplingRates[v][code], nil
}

func samplesPerFrame(v version, l layer) (uint32, error) {
	if l == layerUndefined {
		return 0, ErrForbiddenLayer
	}
	return samplesPerFrameTable[v][l], nil
}

func sideInformationSize(v version, m channelMode) uint32 {
	return sideInformationSizes[v][m]
}
