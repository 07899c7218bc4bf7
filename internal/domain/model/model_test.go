package model

import (
	"testing"
	"time"
)

func TestNormalizeChannel(t *testing.T) {
	if NormalizeChannel(ChannelOutCustomer) != ChannelOutdoor {
		t.Fatalf("legacy label must fold into OUTDOOR")
	}
	if NormalizeChannel(ChannelIndoor) != ChannelIndoor {
		t.Fatalf("indoor channel must pass through")
	}
	if NormalizeChannel(ChannelOutdoor) != ChannelOutdoor {
		t.Fatalf("outdoor channel must pass through")
	}
}

func TestChannelIndoor(t *testing.T) {
	if !ChannelIndoor.Indoor() {
		t.Fatalf("INDOOR must require a waiter")
	}
	if ChannelOutdoor.Indoor() || ChannelOutCustomer.Indoor() {
		t.Fatalf("outdoor channels must not require a waiter")
	}
}

func TestOrderFinished(t *testing.T) {
	at := time.Now()
	finished := Order{Status: OrderStatusFinished, FinishedAt: &at}
	if !finished.Finished() {
		t.Fatalf("expected finished order")
	}
	if (Order{Status: OrderStatusPending}).Finished() {
		t.Fatalf("pending order reported finished")
	}
}

func TestKnownRole(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleButcher, RoleCooker} {
		if !KnownRole(role) {
			t.Fatalf("role %q should be known", role)
		}
	}
	if KnownRole(Role("waiter")) {
		t.Fatalf("unexpected role accepted")
	}
}
