package connectivity

import (
	"context"
	"fmt"
	"net"

	"github.com/pion/stun"

	"github.com/TheEvilRoot/fynekit/debuglog"
	"github.com/TheEvilRoot/fynekit/internal/constants"
)

// PublicAddress performs a STUN binding request and returns the external IP
// address as seen by the server. An empty server selects the default STUN
// server. The request is bounded by ctx.
func PublicAddress(ctx context.Context, server string) (string, error) {
	if server == "" {
		server = constants.DefaultSTUNServer
	}

	dialer := &net.Dialer{Timeout: DialTimeout}
	conn, err := dialer.DialContext(ctx, "udp", server)
	if err != nil {
		return "", fmt.Errorf("failed to dial STUN server: %w", err)
	}
	defer debuglog.CloseWithLog("STUN connection", conn)

	c, err := stun.NewClient(conn)
	if err != nil {
		return "", fmt.Errorf("failed to create STUN client: %w", err)
	}
	// Releases the client's internal goroutines and resources.
	defer c.Close()

	message := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	var xorAddr stun.XORMappedAddress
	var errResult error

	done := make(chan struct{})

	go func() {
		err := c.Do(message, func(res stun.Event) {
			if res.Error != nil {
				errResult = res.Error
				return
			}
			if err := xorAddr.GetFrom(res.Message); err != nil {
				errResult = err
			}
		})
		if err != nil {
			errResult = err
		}
		close(done)
	}()

	select {
	case <-done:
		if errResult != nil {
			return "", fmt.Errorf("STUN request failed: %w", errResult)
		}
		debuglog.DebugLog("PublicAddress: STUN reports external IP %s via %s", xorAddr.IP, server)
		return xorAddr.IP.String(), nil
	case <-ctx.Done():
		return "", fmt.Errorf("STUN request aborted: %w", ctx.Err())
	}
}
