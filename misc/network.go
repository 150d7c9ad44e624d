package misc

import (
	"net"

	"github.com/BrugadaSyndrome/bslogger"
)

// GetLocalAddress returns the IPv4 address of the first non-loopback
// interface that is up. Used to build a default listen address for the
// render service.
func GetLocalAddress() string {
	var localAddress string
	logger := bslogger.NewLogger("", bslogger.Normal, nil)

	networkInterfaces, err := net.Interfaces()
	if err != nil {
		logger.Fatal("Failed to find network interface on this device")
	}

	for _, elt := range networkInterfaces {
		if elt.Flags&net.FlagLoopback == 0 && elt.Flags&net.FlagUp != 0 {
			address, err := elt.Addrs()
			if err != nil {
				logger.Fatal("Failed to get an address from the network interface")
			}

			for _, addr := range address {
				if ip, ok := addr.(*net.IPNet); ok {
					if ip4 := ip.IP.To4(); len(ip4) == net.IPv4len {
						localAddress = ip4.String()
						break
					}
				}
			}
		}
	}

	if localAddress == "" {
		logger.Fatal("Failed to find a non-loopback interface with valid address on this device")
	}

	return localAddress
}
