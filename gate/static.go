package gate

// Static is a fixed-value Host for tests and for applications that define
// their own capability level instead of deriving one from the OS.
type Static struct {
	APIVersion int
	Grants     []string
}

// Version returns the configured platform level.
func (s Static) Version() int {
	return s.APIVersion
}

// Granted reports whether the permission is listed in Grants.
func (s Static) Granted(permission string) bool {
	for _, g := range s.Grants {
		if g == permission {
			return true
		}
	}
	return false
}
