package netlink

// AddressProber reports the monitor's network address when the link
// is up.
type AddressProber interface {
	Address() (addr string, up bool)
}
