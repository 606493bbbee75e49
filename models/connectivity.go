package models

// ConnectivityState classifies the current network link.
type ConnectivityState string

const (
	ConnectivityOffline  ConnectivityState = "offline"
	ConnectivityWifi     ConnectivityState = "wifi"
	ConnectivityCellular ConnectivityState = "cellular"
	ConnectivityEthernet ConnectivityState = "ethernet"
	ConnectivityUnknown  ConnectivityState = "unknown"
)

// IsOnline reports whether the state permits remote traffic.
func (s ConnectivityState) IsOnline() bool {
	return s != ConnectivityOffline && s != ""
}

// ConnectivityChange is emitted on every categorical state transition.
// Reconnected is set only on an offline -> non-offline transition.
type ConnectivityChange struct {
	Previous    ConnectivityState `json:"previous"`
	Current     ConnectivityState `json:"current"`
	Reconnected bool              `json:"reconnected"`
}
