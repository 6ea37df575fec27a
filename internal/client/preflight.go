package client

import (
	"fmt"
	"net"
	"time"
)

const preflightTimeout = 3 * time.Second

// Preflight checks that the local endpoint looks reachable before the
// control channel is dialed. UDP gives no connect-time signal, so only the
// address is validated there.
func Preflight(target Target, protocol string) error {
	switch protocol {
	case "udp":
		if _, err := net.ResolveUDPAddr("udp", target.Addr()); err != nil {
			return fmt.Errorf("invalid local endpoint %s: %w", target.Addr(), err)
		}
		return nil
	default:
		conn, err := net.DialTimeout("tcp", target.Addr(), preflightTimeout)
		if err != nil {
			return fmt.Errorf("local endpoint %s is not reachable: %w (is your service running?)", target.Addr(), err)
		}
		conn.Close()
		return nil
	}
}
