package netlink

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ipNet(addr string) *net.IPNet {
	ip, network, err := net.ParseCIDR(addr)
	if err != nil {
		panic(err)
	}
	network.IP = ip

	return network
}

func TestRoutableAddressSkipsNonRoutable(t *testing.T) {
	addr, ok := routableAddress([]net.Addr{
		ipNet("127.0.0.1/8"),
		ipNet("169.254.12.7/16"),
		ipNet("fe80::1/64"),
		ipNet("192.168.1.40/24"),
	})

	require.True(t, ok)
	assert.Equal(t, "192.168.1.40", addr)
}

func TestRoutableAddressNoneFound(t *testing.T) {
	_, ok := routableAddress([]net.Addr{ipNet("fe80::1/64")})
	assert.False(t, ok)

	_, ok = routableAddress(nil)
	assert.False(t, ok)
}

func TestAddressScansUpInterfaces(t *testing.T) {
	checker := &Checker{
		interfaces: func() ([]net.Interface, error) {
			return []net.Interface{
				{Index: 1, Name: "lo", Flags: net.FlagUp | net.FlagLoopback},
				{Index: 2, Name: "eth0", Flags: 0},
				{Index: 3, Name: "wlan0", Flags: net.FlagUp},
			}, nil
		},
		addresses: func(iface *net.Interface) ([]net.Addr, error) {
			switch iface.Name {
			case "lo":
				return []net.Addr{ipNet("127.0.0.1/8")}, nil
			case "wlan0":
				return []net.Addr{ipNet("192.168.1.40/24")}, nil
			default:
				return nil, nil
			}
		},
	}

	addr, up := checker.Address()
	require.True(t, up)
	assert.Equal(t, "192.168.1.40", addr)
	assert.True(t, checker.Up())
}

func TestAddressWithoutLink(t *testing.T) {
	checker := &Checker{
		interfaces: func() ([]net.Interface, error) {
			return []net.Interface{{Index: 1, Name: "lo", Flags: net.FlagUp | net.FlagLoopback}}, nil
		},
		addresses: func(*net.Interface) ([]net.Addr, error) {
			return []net.Addr{ipNet("127.0.0.1/8")}, nil
		},
	}

	assert.False(t, checker.Up())
}

func TestAddressListFailure(t *testing.T) {
	checker := &Checker{
		interfaces: func() ([]net.Interface, error) { return nil, io.ErrClosedPipe },
	}

	assert.False(t, checker.Up())
}

type scriptedProber struct {
	results []string // empty string means no link yet
	calls   int
}

func (p *scriptedProber) Address() (string, bool) {
	addr := ""
	if p.calls < len(p.results) {
		addr = p.results[p.calls]
	}
	p.calls++

	return addr, addr != ""
}

func TestJoinReturnsOnceLinkIsUp(t *testing.T) {
	prober := &scriptedProber{results: []string{"", "", "192.168.1.40"}}

	addr, up := Join(prober, 30, time.Millisecond)

	require.True(t, up)
	assert.Equal(t, "192.168.1.40", addr)
	assert.Equal(t, 3, prober.calls)
}

func TestJoinGivesUpAfterAttempts(t *testing.T) {
	prober := &scriptedProber{}

	addr, up := Join(prober, 3, time.Millisecond)

	assert.False(t, up)
	assert.Empty(t, addr)
	assert.Equal(t, 3, prober.calls)
}

func TestJoinProbesAtLeastOnce(t *testing.T) {
	prober := &scriptedProber{results: []string{"192.168.1.40"}}

	_, up := Join(prober, 0, time.Millisecond)

	assert.True(t, up)
	assert.Equal(t, 1, prober.calls)
}
