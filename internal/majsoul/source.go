package majsoul

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"paipuScope/internal/protocol"
)

// Config holds the remote service settings.
type Config struct {
	Host     string
	Username string
	Password string
	Timeout  time.Duration
}

// Source fetches raw game records from the remote service. Every fetch
// runs a full connect, login, request, disconnect cycle; the service is
// stateless across requests.
type Source struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

func NewSource(cfg Config, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Fetch retrieves one raw game record. Transport and login failures come
// back as errors; the caller maps them to the cannot-get-log verdict.
func (s *Source) Fetch(ctx context.Context, matchID string) (protocol.ResGameRecord, error) {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return protocol.ResGameRecord{}, fmt.Errorf("username and password are required")
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	bootstrap := NewBootstrap(s.cfg.Host, s.client, s.logger)
	var gateway Gateway
	err := retryDiscovery(ctx, s.logger, 3, func(ctx context.Context) error {
		var err error
		gateway, err = bootstrap.Resolve(ctx)
		return err
	})
	if err != nil {
		return protocol.ResGameRecord{}, err
	}

	channel, err := Dial(ctx, gateway.Endpoint, s.cfg.Host, s.logger)
	if err != nil {
		return protocol.ResGameRecord{}, err
	}
	defer channel.Close()

	lobby := NewLobby(channel, gateway.ClientVersion)
	if err := lobby.Login(ctx, s.cfg.Username, s.cfg.Password); err != nil {
		return protocol.ResGameRecord{}, fmt.Errorf("login: %w", err)
	}

	s.logger.Info("loading game log", zap.String("uuid", matchID))
	res, err := lobby.FetchGameRecord(ctx, matchID)
	if err != nil {
		return protocol.ResGameRecord{}, fmt.Errorf("fetch game record: %w", err)
	}
	return res, nil
}
