package explain

import "testing"

func TestTopic(t *testing.T) {
	for _, name := range Topics() {
		text, err := Topic(name)
		if err != nil {
			t.Fatalf("Topic(%q): %v", name, err)
		}
		if text == "" {
			t.Fatalf("Topic(%q) is empty", name)
		}
	}
	if _, err := Topic("burn-rate"); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}
