package codec

import "github.com/vmihailenco/msgpack/v5"

// MsgPack is the compact binary codec used for cache buffers and files.
type MsgPack struct{}

// Marshal serializes v to MessagePack bytes.
func (MsgPack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes MessagePack bytes into v.
func (MsgPack) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }

// Default is the codec used when none is configured. Cache files carry no
// header, so readers and writers must agree on it; changing the default is a
// codec-version bump and warrants a new cache namespace.
var Default Codec = MsgPack{}
