package model

import (
	"testing"
	"time"
)

func TestSessionActive(t *testing.T) {
	now := time.Now()
	session := Session{Token: "t", AccountID: 1, CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour)}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"just created", now, true},
		{"one second before expiry", session.ExpiresAt.Add(-time.Second), true},
		{"exactly at expiry", session.ExpiresAt, false},
		{"after expiry", session.ExpiresAt.Add(time.Minute), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := session.Active(tc.at); got != tc.want {
				t.Fatalf("expected Active(%v)=%v, got %v", tc.at, tc.want, got)
			}
		})
	}
}

func TestOrderDraftLocationOptional(t *testing.T) {
	draft := OrderDraft{Description: "Fix roof", Category: "oprava", Phone: "+420777123456"}
	if draft.Location != nil {
		t.Fatal("expected zero draft to carry no location")
	}

	draft.Location = &Coordinates{Latitude: 50.08, Longitude: 14.43}
	if draft.Location.Latitude != 50.08 || draft.Location.Longitude != 14.43 {
		t.Fatalf("unexpected coordinates %+v", *draft.Location)
	}
}
