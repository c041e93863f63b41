package wificonfig

// AccessPointAdder is the part of a multi-AP connection manager the registrar
// depends on. Implementations own failure handling for a rejected entry.
type AccessPointAdder interface {
	AddAP(ssid, password string)
}

// AddWifis adds every network in Networks to m.
func AddWifis(m AccessPointAdder) {
	Register(m, Networks)
}

// Register adds creds to m in order. Entries are not deduplicated, so calling
// it twice with the same list registers every network twice.
func Register(m AccessPointAdder, creds []Credential) {
	for _, c := range creds {
		m.AddAP(c.SSID, c.Password)
	}
}
