package sessions

import (
	"testing"

	"tripplanner/internal/domain/models"
)

func TestCreateAndLookup(t *testing.T) {
	store := NewStore("test-secret")

	sess, token, err := store.Create()
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sess.State != models.StateIdle {
		t.Fatalf("new session should be idle, got %s", sess.State)
	}
	if token == "" {
		t.Fatalf("Create returned empty token")
	}

	got := store.Lookup(token)
	if got == nil || got.ID != sess.ID {
		t.Fatalf("Lookup did not resolve token to same session")
	}
}

func TestLookupRejectsGarbageAndForeignTokens(t *testing.T) {
	store := NewStore("secret-a")
	other := NewStore("secret-b")

	if store.Lookup("") != nil {
		t.Fatalf("empty token must not resolve")
	}
	if store.Lookup("not-a-jwt") != nil {
		t.Fatalf("garbage token must not resolve")
	}

	_, foreign, err := other.Create()
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if store.Lookup(foreign) != nil {
		t.Fatalf("token signed with another secret must not resolve")
	}
}

func TestMutateStampsUpdatedAt(t *testing.T) {
	store := NewStore("test-secret")
	sess, _, err := store.Create()
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	before := store.Snapshot(sess).UpdatedAt

	store.Mutate(sess, func(s *Session) {
		s.State = models.StateReady
	})

	snap := store.Snapshot(sess)
	if snap.State != models.StateReady {
		t.Fatalf("mutation not applied")
	}
	if snap.UpdatedAt.Before(before) {
		t.Fatalf("UpdatedAt not stamped")
	}
}
