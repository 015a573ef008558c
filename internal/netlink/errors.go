package netlink

import "codeberg.org/mutker/zonectl/internal/errors"

// ErrLinkDown marks a probe pass that found no routable address.
const ErrLinkDown = errors.ErrorCode("netlink_link_down")
