package wificonfig

// Credential is a (network name, password) pair for one access point.
// An empty Password denotes an open network.
type Credential struct {
	SSID     string `json:"ssid" yaml:"ssid"`
	Password string `json:"password" yaml:"password"`
}

// Networks is the set of access points registered by AddWifis.
// Edit and rebuild to change which networks the device knows about.
var Networks = []Credential{
	{SSID: "ssid_from_AP_1", Password: "your_password_for_AP_1"},
	// {SSID: "ssid_from_AP_2", Password: "your_password_for_AP_2"},
	// {SSID: "ssid_from_AP_3", Password: "your_password_for_AP_3"},
}
