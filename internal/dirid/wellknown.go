package dirid

// wellKnownSIDs maps the textual form of domain-independent well-known SIDs
// to their human-readable name, for diagnostic output only. Lookup logic in
// this package and in agent never keys on these names; they exist purely so
// logs and tests can print "Everyone" instead of "S-1-1-0".
var wellKnownSIDs = map[string]string{
	"S-1-0":        "Null Authority",
	"S-1-0-0":      "Nobody",
	"S-1-1":        "World Authority",
	"S-1-1-0":      "Everyone",
	"S-1-2":        "Local Authority",
	"S-1-2-0":      "Local",
	"S-1-2-1":      "Console Logon",
	"S-1-3":        "Creator Authority",
	"S-1-3-0":      "Creator Owner",
	"S-1-3-1":      "Creator Group",
	"S-1-3-2":      "Creator Owner Server",
	"S-1-3-3":      "Creator Group Server",
	"S-1-3-4":      "Creator Owner Rights",
	"S-1-4":        "Non-unique Authority",
	"S-1-5":        "NT Authority",
	"S-1-5-1":      "Dialup",
	"S-1-5-2":      "Network",
	"S-1-5-3":      "Batch",
	"S-1-5-4":      "Interactive",
	"S-1-5-6":      "Service",
	"S-1-5-7":      "Anonymous",
	"S-1-5-9":      "Enterprise Domain Controllers",
	"S-1-5-10":     "Principal Self",
	"S-1-5-11":     "Authenticated Users",
	"S-1-5-12":     "Restricted Code",
	"S-1-5-18":     "Local System",
	"S-1-5-19":     "Local Service",
	"S-1-5-20":     "Network Service",
	"S-1-5-32-544": "Administrators",
	"S-1-5-32-545": "Users",
	"S-1-5-32-546": "Guests",
	"S-1-5-32-548": "Account Operators",
	"S-1-5-32-549": "Server Operators",
	"S-1-5-32-550": "Print Operators",
	"S-1-5-32-551": "Backup Operators",
	"S-1-5-32-554": "Pre-Windows 2000 Compatible Access",
}

// Resolve returns the well-known name for s, if any, or s's S-1-5-... string
// form otherwise. Diagnostic only: exercised by tests and logging, never by
// lookup logic, which always keys on raw SID bytes.
func (s SID) Resolve() string {
	text := s.String()
	if name, ok := wellKnownSIDs[text]; ok {
		return name
	}
	return text
}
