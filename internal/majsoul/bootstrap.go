package majsoul

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Bootstrap resolves the gateway endpoint and client version string by
// walking the service's published discovery documents.
type Bootstrap struct {
	host   string
	client *http.Client
	logger *zap.Logger
}

// Gateway is the result of a bootstrap: where to dial and which client
// version to present.
type Gateway struct {
	Endpoint      string
	ClientVersion string
}

func NewBootstrap(host string, client *http.Client, logger *zap.Logger) *Bootstrap {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bootstrap{host: host, client: client, logger: logger}
}

// Resolve fetches version, config, and the gateway server list, and picks
// one gateway at random.
func (b *Bootstrap) Resolve(ctx context.Context) (Gateway, error) {
	var version struct {
		Version string `json:"version"`
	}
	if err := b.getJSON(ctx, b.host+"/1/version.json", &version); err != nil {
		return Gateway{}, fmt.Errorf("fetch version: %w", err)
	}
	b.logger.Info("resolved version", zap.String("version", version.Version))

	clientVersion := "web-" + strings.Replace(version.Version, ".w", "", 1)

	var config struct {
		IP []struct {
			RegionURLs []struct {
				URL string `json:"url"`
			} `json:"region_urls"`
		} `json:"ip"`
	}
	configURL := fmt.Sprintf("%s/1/v%s/config.json", b.host, version.Version)
	if err := b.getJSON(ctx, configURL, &config); err != nil {
		return Gateway{}, fmt.Errorf("fetch config: %w", err)
	}
	if len(config.IP) == 0 || len(config.IP[0].RegionURLs) < 2 {
		return Gateway{}, fmt.Errorf("config has no usable region url")
	}
	regionURL := config.IP[0].RegionURLs[1].URL

	var gateways struct {
		Servers []string `json:"servers"`
	}
	listURL := regionURL + "?service=ws-gateway&protocol=ws&ssl=true"
	if err := b.getJSON(ctx, listURL, &gateways); err != nil {
		return Gateway{}, fmt.Errorf("fetch gateway list: %w", err)
	}
	if len(gateways.Servers) == 0 {
		return Gateway{}, fmt.Errorf("no gateway servers available")
	}
	server := gateways.Servers[rand.Intn(len(gateways.Servers))]

	gateway := Gateway{
		Endpoint:      fmt.Sprintf("wss://%s/gateway", server),
		ClientVersion: clientVersion,
	}
	b.logger.Info("chosen gateway", zap.String("endpoint", gateway.Endpoint))
	return gateway, nil
}

func (b *Bootstrap) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", url, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
