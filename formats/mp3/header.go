// SPDX-License-Identifier: MIT

package mp3

// frameHeader is the decoded form of the 4 raw header bytes of an MPEG
// audio frame. It is recomputed for every frame and never persisted.
type frameHeader struct {
	version     version
	layer       layer
	bitrateCode uint8
	rateCode    uint8
	padding     uint32 // 0 or 1
	mode        channelMode
}

// isSync reports whether raw starts with the 11-bit MPEG sync pattern.
// A non-match is a classification signal, not an error: the block may still
// be an ID3 or APE tag.
func isSync(raw uint32) bool {
	return raw>>21 == 0x7FF
}

// parseFrameHeader extracts the semantic fields from a raw big-endian
// header value. The only failure is the reserved version code; layer 0b00
// decodes to layerUndefined and fails later, at the first table lookup.
func parseFrameHeader(raw uint32) (frameHeader, error) {
	var h frameHeader

	switch (raw >> 19) & 0b11 {
	case 0:
		h.version = mpeg25
	case 1:
		return h, ErrForbiddenVersion
	case 2:
		h.version = mpeg2
	case 3:
		h.version = mpeg1
	}

	switch (raw >> 17) & 0b11 {
	case 0:
		h.layer = layerUndefined
	case 1:
		h.layer = layerIII
	case 2:
		h.layer = layerII
	case 3:
		h.layer = layerI
	}

	h.bitrateCode = uint8((raw >> 12) & 0b1111)
	h.rateCode = uint8((raw >> 10) & 0b11)
	h.padding = (raw >> 9) & 1

	switch (raw >> 6) & 0b11 {
	case 0:
		h.mode = stereo
	case 1:
		h.mode = jointStereo
	case 2:
		h.mode = dualChannel
	case 3:
		h.mode = mono
	}

	return h, nil
}
