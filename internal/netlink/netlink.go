package netlink

import (
	"net"
	"time"

	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/logger"
	"github.com/cenkalti/backoff/v4"
)

// Checker probes the host's interfaces for a usable network link. The
// OS owns the wireless join itself; the monitor only watches for the
// resulting address.
type Checker struct {
	interfaces func() ([]net.Interface, error)
	addresses  func(*net.Interface) ([]net.Addr, error)
}

func NewChecker() *Checker {
	return &Checker{
		interfaces: net.Interfaces,
		addresses:  (*net.Interface).Addrs,
	}
}

// Up reports whether a routable link exists right now.
func (c *Checker) Up() bool {
	_, up := c.Address()

	return up
}

// Address returns the first routable unicast address on an up,
// non-loopback interface.
func (c *Checker) Address() (string, bool) {
	ifaces, err := c.interfaces()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to list network interfaces")
		return "", false
	}

	for i := range ifaces {
		iface := &ifaces[i]
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := c.addresses(iface)
		if err != nil {
			continue
		}
		if addr, ok := routableAddress(addrs); ok {
			return addr, true
		}
	}

	return "", false
}

func routableAddress(addrs []net.Addr) (string, bool) {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipNet.IP
		if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			continue
		}

		return ip.String(), true
	}

	return "", false
}

// Join polls for the link at a fixed interval, giving up after the
// configured number of attempts. A link that never comes up is not
// fatal; the monitor runs on and flags the down link every cycle.
func Join(prober AddressProber, attempts int, interval time.Duration) (string, bool) {
	errFactory := errors.New()
	if attempts < 1 {
		attempts = 1
	}
	logger.Debug().Int("attempts", attempts).Dur("interval", interval).Msg("Waiting for network link")

	var addr string
	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(attempts-1))
	err := backoff.Retry(func() error {
		a, up := prober.Address()
		if !up {
			return errFactory.New(ErrLinkDown)
		}
		addr = a

		return nil
	}, bo)
	if err != nil {
		logger.Warn().Int("attempts", attempts).Msg("Network link did not come up")
		return "", false
	}

	logger.Info().Str("address", addr).Msg("Network link is up")

	return addr, true
}
