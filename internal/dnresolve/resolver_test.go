package dnresolve

import (
	"testing"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

func TestResolveRegisteredDN(t *testing.T) {
	r := New()
	if err := r.Register("CN=alice,OU=users,DC=example,DC=com", agent.DNT(42)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dnt, err := r.Resolve("cn=alice,ou=users,dc=example,dc=com")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if dnt != 42 {
		t.Errorf("Resolve() = %d, want 42", dnt)
	}
}

func TestResolveCaseInsensitiveAttributeType(t *testing.T) {
	r := New()
	if err := r.Register("cn=bob,dc=example,dc=com", agent.DNT(7)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dnt, err := r.Resolve("CN=bob,DC=example,DC=com")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if dnt != 7 {
		t.Errorf("Resolve() = %d, want 7", dnt)
	}
}

func TestResolveUnregisteredDNIsNotFound(t *testing.T) {
	r := New()

	_, err := r.Resolve("cn=ghost,dc=example,dc=com")
	if !agent.IsNotFound(err) {
		t.Fatalf("Resolve() error = %v, want a NotFoundError", err)
	}
}

func TestResolveMalformedDNIsNotFound(t *testing.T) {
	r := New()

	_, err := r.Resolve("")
	if !agent.IsNotFound(err) {
		t.Fatalf("Resolve(\"\") error = %v, want a NotFoundError", err)
	}
}

func TestUnregisterRemovesBinding(t *testing.T) {
	r := New()
	if err := r.Register("cn=alice,dc=example,dc=com", agent.DNT(1)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Unregister("cn=alice,dc=example,dc=com"); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}

	if _, err := r.Resolve("cn=alice,dc=example,dc=com"); !agent.IsNotFound(err) {
		t.Fatalf("Resolve() after Unregister() error = %v, want a NotFoundError", err)
	}
}

func TestRegisterOverwritesPriorBinding(t *testing.T) {
	r := New()
	if err := r.Register("cn=alice,dc=example,dc=com", agent.DNT(1)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("cn=alice,dc=example,dc=com", agent.DNT(2)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	dnt, err := r.Resolve("cn=alice,dc=example,dc=com")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if dnt != 2 {
		t.Errorf("Resolve() = %d, want 2 (last write wins)", dnt)
	}
}
