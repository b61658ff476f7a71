package connectivity

import (
	"fmt"
	"time"

	"github.com/txthinking/socks5"

	"github.com/TheEvilRoot/fynekit/debuglog"
)

// CheckSOCKS verifies that a SOCKS5 proxy at proxyAddr forwards TCP traffic
// by dialing probeAddr through it. Authentication-free proxies only; timeout
// bounds both the handshake and the probe dial, with a one-second floor.
func CheckSOCKS(proxyAddr, probeAddr string, timeout time.Duration) error {
	seconds := int(timeout.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	client, err := socks5.NewClient(proxyAddr, "", "", seconds, seconds)
	if err != nil {
		return fmt.Errorf("failed to create SOCKS5 client: %w", err)
	}

	conn, err := client.Dial("tcp", probeAddr)
	if err != nil {
		return fmt.Errorf("SOCKS5 proxy %s cannot reach %s: %w", proxyAddr, probeAddr, err)
	}
	debuglog.CloseWithLog("SOCKS probe connection", conn)

	debuglog.DebugLog("CheckSOCKS: proxy %s forwarded probe to %s", proxyAddr, probeAddr)
	return nil
}
