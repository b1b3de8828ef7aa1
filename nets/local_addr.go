package nets

import "net"

type IsLocalAddr func(addr string) (bool, error)

// IsLocalAddr reports loopback and private addresses, which are dialed without the proxy.
func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unknown hosts go through the proxy
			return false, nil
		}

		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true, nil
			}
		}

		return false, nil
	}
}
