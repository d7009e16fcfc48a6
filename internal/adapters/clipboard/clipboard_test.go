package clipboard

import (
	"context"
	"errors"
	"testing"

	"tagcount/internal/domain"
)

func TestSink_Publish(t *testing.T) {
	var copied string
	sink := &Sink{write: func(s string) error {
		copied = s
		return nil
	}}

	report := &domain.Report{Year: 1800}
	if err := sink.Publish(context.Background(), report); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if copied != report.String() {
		t.Errorf("expected report text on clipboard, got %q", copied)
	}
}

func TestSink_PublishError(t *testing.T) {
	sink := &Sink{write: func(string) error { return errors.New("no display") }}

	if err := sink.Publish(context.Background(), &domain.Report{}); err == nil {
		t.Error("expected clipboard error to be returned")
	}
}
