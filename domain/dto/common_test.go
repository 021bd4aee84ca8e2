package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		DueDate    Optional[string]    `json:"due_date"`
		AssigneeID Optional[uuid.UUID] `json:"assignee_id"`
	}

	id := uuid.New()

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *string
	}{
		{"absent", `{}`, false, nil},
		{"explicit null", `{"due_date": null}`, true, nil},
		{"value", `{"due_date": "2026-09-01"}`, true, strPtr("2026-09-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if p.DueDate.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", p.DueDate.Present, tt.wantPresent)
			}
			if (p.DueDate.Value == nil) != (tt.wantValue == nil) {
				t.Fatalf("Value = %v, want %v", p.DueDate.Value, tt.wantValue)
			}
			if tt.wantValue != nil && *p.DueDate.Value != *tt.wantValue {
				t.Errorf("Value = %q, want %q", *p.DueDate.Value, *tt.wantValue)
			}
		})
	}

	t.Run("uuid value", func(t *testing.T) {
		var p payload
		body := `{"assignee_id": "` + id.String() + `"}`
		if err := json.Unmarshal([]byte(body), &p); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !p.AssigneeID.Present || p.AssigneeID.Value == nil || *p.AssigneeID.Value != id {
			t.Errorf("AssigneeID = %+v, want %v", p.AssigneeID, id)
		}
	})

	t.Run("invalid uuid rejected", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"assignee_id": "not-a-uuid"}`), &p); err == nil {
			t.Error("expected unmarshal error for malformed uuid")
		}
	})
}

func strPtr(s string) *string { return &s }
