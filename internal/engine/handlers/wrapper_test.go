package handlers

import (
	"encoding/json"
	"ethereplodor-server/pkg/api"
	"strings"
	"testing"
)

func TestWithPayload(t *testing.T) {
	var got api.QuestPayload
	h := WithPayload(func(_ Context, p api.QuestPayload) (Result, error) {
		got = p
		return Result{Msg: "ok"}, nil
	})

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"valid", `{"questId":"quest_kill_5_enemies"}`, ""},
		{"broken json", `{"questId":`, "invalid payload format"},
		{"fails validation", `{}`, "validation failed"},
		{"absent payload", ``, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h(Context{}, json.RawMessage(tt.raw))
			if tt.wantErr == "" {
				if err != nil || res.Msg != "ok" {
					t.Fatalf("res %+v err %v", res, err)
				}
				if got.QuestID != "quest_kill_5_enemies" {
					t.Errorf("decoded %+v", got)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestWithEmptyPayload(t *testing.T) {
	called := false
	h := WithEmptyPayload(func(Context) (Result, error) {
		called = true
		return EmptyResult(), nil
	})
	if _, err := h(Context{}, json.RawMessage(`garbage`)); err != nil || !called {
		t.Errorf("called=%v err=%v", called, err)
	}
}
