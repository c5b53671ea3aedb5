package dnresolve

import (
	"errors"
	"strings"
)

// DN parsing errors.
var (
	ErrEmptyDN    = errors.New("dnresolve: DN cannot be empty")
	ErrInvalidRDN = errors.New("dnresolve: invalid RDN format")
)

// parseDN splits a DN string into its RDN components in forward (root-last,
// leaf-first) order, the order a DN is normally written in. Escaped commas
// within a component are preserved.
func parseDN(dn string) ([]string, error) {
	dn = strings.TrimSpace(dn)
	if dn == "" {
		return nil, ErrEmptyDN
	}

	components := splitDN(dn)
	if len(components) == 0 {
		return nil, ErrInvalidRDN
	}

	result := make([]string, len(components))
	for i, comp := range components {
		normalized, err := normalizeRDN(comp)
		if err != nil {
			return nil, err
		}
		result[i] = normalized
	}
	return result, nil
}

func splitDN(dn string) []string {
	var components []string
	var current strings.Builder
	escaped := false

	for i := 0; i < len(dn); i++ {
		c := dn[i]
		switch {
		case escaped:
			current.WriteByte(c)
			escaped = false
		case c == '\\':
			current.WriteByte(c)
			escaped = true
		case c == ',':
			if comp := strings.TrimSpace(current.String()); comp != "" {
				components = append(components, comp)
			}
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if comp := strings.TrimSpace(current.String()); comp != "" {
		components = append(components, comp)
	}
	return components
}

// normalizeRDN lowercases the attribute type of an RDN component, leaving
// its value untouched, so "CN=foo" and "cn=foo" key the same entry.
func normalizeRDN(rdn string) (string, error) {
	rdn = strings.TrimSpace(rdn)
	if rdn == "" {
		return "", ErrInvalidRDN
	}
	eq := strings.Index(rdn, "=")
	if eq <= 0 {
		return "", ErrInvalidRDN
	}
	attrType := strings.ToLower(strings.TrimSpace(rdn[:eq]))
	attrValue := strings.TrimSpace(rdn[eq+1:])
	return attrType + "=" + attrValue, nil
}

// pathComponents returns dn's normalized RDN components in root-first order
// (least-significant component first), the order a parent-DNT tree walk
// descends in: "cn=alice,ou=users,dc=example,dc=com" becomes
// ["dc=com", "dc=example", "ou=users", "cn=alice"].
func pathComponents(dn string) ([]string, error) {
	components, err := parseDN(dn)
	if err != nil {
		return nil, err
	}
	reversed := make([]string, len(components))
	for i, comp := range components {
		reversed[len(components)-1-i] = comp
	}
	return reversed, nil
}
