// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"testing"

	ory "github.com/ory/client-go"
)

func TestPasswordUpdateBody(t *testing.T) {
	identity := &ory.Identity{
		Id:       "identity-1",
		SchemaId: "default",
		Traits:   map[string]interface{}{"email": "member@example.com"},
	}

	body, err := passwordUpdateBody(identity, "new-password")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if body.State != "active" {
		t.Errorf("expected state %q, got %q", "active", body.State)
	}
	if body.SchemaId != "default" {
		t.Errorf("expected schema to be preserved, got %q", body.SchemaId)
	}
	if got := body.Traits["email"]; got != "member@example.com" {
		t.Errorf("expected traits to be preserved, got %v", body.Traits)
	}
	if body.Credentials == nil || body.Credentials.Password == nil ||
		body.Credentials.Password.Config == nil ||
		body.Credentials.Password.Config.Password == nil ||
		*body.Credentials.Password.Config.Password != "new-password" {
		t.Errorf("expected password credential in body, got %+v", body.Credentials)
	}
}

func TestPasswordUpdateBodyRejectsUnexpectedTraits(t *testing.T) {
	identity := &ory.Identity{Id: "identity-1", Traits: "not-a-map"}

	if _, err := passwordUpdateBody(identity, "new-password"); err == nil {
		t.Fatal("expected an error for non-map traits")
	}
}

func TestSessionIdentityID(t *testing.T) {
	tests := []struct {
		name    string
		session *ory.Session
		want    string
		wantErr bool
	}{
		{
			name:    "identity present",
			session: &ory.Session{Identity: &ory.Identity{Id: "identity-1"}},
			want:    "identity-1",
		},
		{
			name:    "identity omitted",
			session: &ory.Session{},
			wantErr: true,
		},
		{
			name:    "nil session",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := sessionIdentityID(test.session)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != test.want {
				t.Errorf("expected identity %q, got %q", test.want, got)
			}
		})
	}
}
