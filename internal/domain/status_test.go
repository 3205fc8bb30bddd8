package domain

import (
	"errors"
	"testing"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusProcessing},
		{StatusPending, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusProcessing, StatusCompleted},
		{StatusProcessing, StatusCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransition(tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusProcessing},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusCompleted},
		{StatusProcessing, StatusPending},
		{StatusPending, StatusPending},
	}
	for _, tc := range denied {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestTransitionReturnsTypedError(t *testing.T) {
	_, err := StatusCompleted.Transition(StatusPending)
	var terr *InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("want InvalidTransitionError, got %v", err)
	}
	if terr.From != StatusCompleted || terr.To != StatusPending {
		t.Fatalf("error carries wrong states: %+v", terr)
	}
}

func TestParseStatus(t *testing.T) {
	if _, ok := ParseStatus("processing"); !ok {
		t.Fatal("processing should parse")
	}
	if _, ok := ParseStatus("PLACED"); ok {
		t.Fatal("unknown status should not parse")
	}
}
