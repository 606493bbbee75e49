package connectivity

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/lumenlearn/go-offline-sync/models"
)

// Prober performs one reachability check and classifies the link.
// Implementations must be safe for repeated calls; the monitor probes on a
// ticker and once synchronously at startup.
type Prober interface {
	Probe(ctx context.Context) models.ConnectivityState
}

// interfaceProber classifies connectivity from the OS interface table and,
// when a check URL is configured, confirms actual reachability with a HEAD
// request. Interface names follow platform conventions: en*/eth* for
// ethernet, wl* for wifi, ww*/rmnet* for cellular.
type interfaceProber struct {
	checkURL string
	client   *http.Client
}

// NewInterfaceProber returns the default [Prober]. checkURL may be empty,
// in which case an up non-loopback interface is taken as online without a
// round trip.
func NewInterfaceProber(checkURL string) Prober {
	return &interfaceProber{
		checkURL: checkURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *interfaceProber) Probe(ctx context.Context) models.ConnectivityState {
	state := classifyInterfaces()
	if state == models.ConnectivityOffline || p.checkURL == "" {
		return state
	}

	if !p.reachable(ctx) {
		return models.ConnectivityOffline
	}
	return state
}

func (p *interfaceProber) reachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.checkURL, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return true
}

func classifyInterfaces() models.ConnectivityState {
	ifaces, err := net.Interfaces()
	if err != nil {
		return models.ConnectivityUnknown
	}

	best := models.ConnectivityOffline
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if addrs, addrErr := iface.Addrs(); addrErr != nil || len(addrs) == 0 {
			continue
		}

		switch classifyName(iface.Name) {
		case models.ConnectivityEthernet:
			// wired wins over everything
			return models.ConnectivityEthernet
		case models.ConnectivityWifi:
			best = models.ConnectivityWifi
		case models.ConnectivityCellular:
			if best != models.ConnectivityWifi {
				best = models.ConnectivityCellular
			}
		default:
			if best == models.ConnectivityOffline {
				best = models.ConnectivityUnknown
			}
		}
	}

	return best
}

func classifyName(name string) models.ConnectivityState {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "wl"):
		return models.ConnectivityWifi
	case strings.HasPrefix(lower, "ww"), strings.HasPrefix(lower, "rmnet"):
		return models.ConnectivityCellular
	case strings.HasPrefix(lower, "en"), strings.HasPrefix(lower, "eth"):
		return models.ConnectivityEthernet
	default:
		return models.ConnectivityUnknown
	}
}
