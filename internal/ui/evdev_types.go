package ui

import (
	"bytes"
	"encoding/binary"
)

// RemoteKey is a media-remote button read straight from the input devices.
// Ebitengine does not report these keys itself.
type RemoteKey int

const (
	RemoteBack RemoteKey = iota
	RemoteOK
	RemotePrev
	RemoteNext
	remoteKeyCount
)

// Linux input event codes.
const (
	evKey = 0x01

	keyBack         = 158 // KEY_BACK (XF86Back)
	keyNextSong     = 163 // KEY_NEXTSONG
	keyPlayPause    = 164 // KEY_PLAYPAUSE
	keyPreviousSong = 165 // KEY_PREVIOUSSONG
	keyOK           = 352 // KEY_OK
	keySelect       = 353 // KEY_SELECT
)

// remoteKeyFor maps a key code to the remote button it stands for.
func remoteKeyFor(code uint16) (RemoteKey, bool) {
	switch code {
	case keyBack:
		return RemoteBack, true
	case keyOK, keySelect, keyPlayPause:
		return RemoteOK, true
	case keyPreviousSong:
		return RemotePrev, true
	case keyNextSong:
		return RemoteNext, true
	}
	return 0, false
}

// inputEvent is a Linux input_event on 64-bit platforms.
// struct input_event { struct timeval time; __u16 type; __u16 code; __s32 value; };
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

var inputEventSize = binary.Size(inputEvent{})

// decodeInputEvent parses one input_event record.
func decodeInputEvent(buf []byte) (inputEvent, bool) {
	var ev inputEvent
	if len(buf) < inputEventSize {
		return ev, false
	}
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &ev); err != nil {
		return ev, false
	}
	return ev, true
}

// remotePress reports the remote button an event presses. Only key-down
// events (value 1) count; repeats and releases are ignored.
func remotePress(ev inputEvent) (RemoteKey, bool) {
	if ev.Type != evKey || ev.Value != 1 {
		return 0, false
	}
	return remoteKeyFor(ev.Code)
}
