package protocol

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// namespacePrefix is the schema namespace carried by every envelope name.
// It is stripped before registry lookup.
const namespacePrefix = ".lq."

// Envelope is the named binary wrapper the remote service nests its
// payloads in. Name identifies the schema of Payload.
type Envelope struct {
	Name    string
	Payload []byte
}

// DecodeEnvelope parses a wire-encoded envelope frame.
func DecodeEnvelope(b []byte) (Envelope, error) {
	var env Envelope
	err := eachField(b, func(num protowire.Number, typ protowire.Type, rest []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n, err := consumeString(rest)
			if err != nil {
				return 0, err
			}
			env.Name = v
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n, err := consumeBytes(rest)
			if err != nil {
				return 0, err
			}
			env.Payload = v
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// EncodeEnvelope builds a wire-encoded envelope frame.
func EncodeEnvelope(env Envelope) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, env.Name)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, env.Payload)
	return b
}

// SchemaName strips the namespace prefix from an envelope name. Names
// without the prefix are returned unchanged so lookup can still fail with
// a precise unknown-schema error.
func SchemaName(name string) string {
	if strings.HasPrefix(name, namespacePrefix) {
		return name[len(namespacePrefix):]
	}
	return name
}

// DecodePayload resolves the envelope's schema in the registry and decodes
// the payload under it.
func DecodePayload(env Envelope, reg *Registry) (any, error) {
	dec, err := reg.Resolve(SchemaName(env.Name))
	if err != nil {
		return nil, err
	}
	v, err := dec(env.Payload)
	if err != nil {
		return nil, &MalformedPayloadError{Name: env.Name, Size: len(env.Payload), Err: err}
	}
	return v, nil
}
