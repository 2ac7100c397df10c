package storage

import (
	"strings"
	"testing"
)

// TestDuplicateUserQueryBlankEmail verifies that registering without an
// email checks only the username. The identity middleware creates rows
// with an empty email, so a blank email must never match them.
func TestDuplicateUserQueryBlankEmail(t *testing.T) {
	query, args := duplicateUserQuery("alice", "")
	if strings.Contains(query, "email") {
		t.Errorf("query %q must not reference email for a blank email", query)
	}
	if len(args) != 1 || args[0] != "alice" {
		t.Errorf("args = %v, want just the username", args)
	}
}

// TestDuplicateUserQueryWithEmail verifies a supplied email is part of
// the uniqueness check.
func TestDuplicateUserQueryWithEmail(t *testing.T) {
	query, args := duplicateUserQuery("alice", "alice@example.edu")
	if !strings.Contains(query, "email = $2") {
		t.Errorf("query %q missing the email clause", query)
	}
	if len(args) != 2 || args[1] != "alice@example.edu" {
		t.Errorf("args = %v, want username and email", args)
	}
}
