package protocol

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// eachField walks the top-level fields of a wire-encoded message. The
// callback returns how many value bytes it consumed; returning 0 lets the
// walker skip the field, which is how unmodeled fields are ignored.
func eachField(buf []byte, fn func(num protowire.Number, typ protowire.Type, rest []byte) (int, error)) error {
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return protowire.ParseError(n)
		}
		buf = buf[n:]

		consumed, err := fn(num, typ, buf)
		if err != nil {
			return err
		}
		if consumed == 0 {
			consumed = protowire.ConsumeFieldValue(num, typ, buf)
			if consumed < 0 {
				return protowire.ParseError(consumed)
			}
		}
		buf = buf[consumed:]
	}
	return nil
}

func consumeVarint(rest []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(rest)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(rest []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(rest)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeString(rest []byte) (string, int, error) {
	v, n := protowire.ConsumeString(rest)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}
