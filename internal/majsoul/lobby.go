package majsoul

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"paipuScope/internal/protocol"
)

// passwordKey is the fixed hmac key the service expects password digests
// to be computed under.
const passwordKey = "lailai"

// Lobby exposes the two lobby RPCs the pipeline needs.
type Lobby struct {
	channel       *Channel
	clientVersion string
}

func NewLobby(channel *Channel, clientVersion string) *Lobby {
	return &Lobby{channel: channel, clientVersion: clientVersion}
}

// Login authenticates with username and password. The password goes over
// the wire as an hmac-sha256 digest.
func (l *Lobby) Login(ctx context.Context, username, password string) error {
	mac := hmac.New(sha256.New, []byte(passwordKey))
	mac.Write([]byte(password))

	payload := protocol.EncodeReqLogin(protocol.ReqLogin{
		Account:           username,
		Password:          hex.EncodeToString(mac.Sum(nil)),
		IsBrowser:         true,
		RandomKey:         uuid.NewString(),
		GenAccessToken:    true,
		CurrencyPlatforms: []uint32{2},
		ClientVersion:     l.clientVersion,
	})

	data, err := l.channel.Call(ctx, protocol.MethodLogin, payload)
	if err != nil {
		return err
	}
	res, err := protocol.DecodeResLogin(data)
	if err != nil {
		return err
	}
	if res.ErrorCode != 0 {
		return fmt.Errorf("login rejected: code %d", res.ErrorCode)
	}
	if res.AccessToken == "" {
		return fmt.Errorf("login returned no access token")
	}
	return nil
}

// FetchGameRecord retrieves one completed match by uuid.
func (l *Lobby) FetchGameRecord(ctx context.Context, gameUUID string) (protocol.ResGameRecord, error) {
	payload := protocol.EncodeReqGameRecord(protocol.ReqGameRecord{
		GameUUID:      gameUUID,
		ClientVersion: l.clientVersion,
	})

	data, err := l.channel.Call(ctx, protocol.MethodFetchGameRecord, payload)
	if err != nil {
		return protocol.ResGameRecord{}, err
	}
	return protocol.DecodeResGameRecord(data)
}
