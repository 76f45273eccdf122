package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIDAcceptsNumberAndString(t *testing.T) {
	var c struct {
		A FlexID `json:"a"`
		B FlexID `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 42, "b": "abc"}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A.String() != "42" || c.B.String() != "abc" {
		t.Fatalf("unexpected ids: %+v", c)
	}
	out, _ := json.Marshal(c)
	if string(out) != `{"a":42,"b":"abc"}` {
		t.Fatalf("unexpected marshal: %s", out)
	}
}

func TestFlexIDKeepsStringForm(t *testing.T) {
	for _, raw := range []string{`{"id":"007"}`, `{"id":7}`, `{"id":"7"}`} {
		var c Call
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			t.Fatalf("unexpected error for %s: %v", raw, err)
		}
		out, err := json.Marshal(struct {
			ID FlexID `json:"id"`
		}{c.ID})
		if err != nil {
			t.Fatalf("unexpected marshal error: %v", err)
		}
		if string(out) != raw {
			t.Fatalf("round trip of %s gave %s", raw, out)
		}
	}
	var c Call
	_ = json.Unmarshal([]byte(`{"id":"007"}`), &c)
	if c.Key() != "007" {
		t.Fatalf("expected key 007, got %q", c.Key())
	}
}

func TestCallKeyFallsBackToCallID(t *testing.T) {
	var c Call
	if err := json.Unmarshal([]byte(`{"call_id":12}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key() != "12" || c.KeyID() != NumID("12") {
		t.Fatalf("unexpected key: %q", c.Key())
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("invalid call json %s: %v", out, err)
	}
	if _, ok := back["id"]; ok {
		t.Fatalf("empty id must be omitted: %s", out)
	}
}

func TestEndpointDecodesObjectReference(t *testing.T) {
	var links []GraphLink
	raw := `[{"source":"666","target":{"id":"5512345678","label":"x"},"value":3},{"source":{"id":7},"target":8,"value":1}]`
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if links[0].Source != "666" || links[0].Target != "5512345678" {
		t.Fatalf("unexpected first link: %+v", links[0])
	}
	if links[1].Source != "7" || links[1].Target != "8" {
		t.Fatalf("unexpected second link: %+v", links[1])
	}
	if !links[0].Touches("5512345678") || links[0].Touches("7") {
		t.Fatalf("touches mismatch")
	}
}

func TestCallNumberPrecedence(t *testing.T) {
	c := Call{Telefono: "1", Numero: "2"}
	if c.Number() != "2" {
		t.Fatalf("expected numero before telefono, got %s", c.Number())
	}
	c.Contact = "3"
	if c.Number() != "3" {
		t.Fatalf("expected contact first, got %s", c.Number())
	}
	if (Call{}).Number() != "" {
		t.Fatalf("expected empty number")
	}
}

func TestSeverityBadgeColor(t *testing.T) {
	cases := map[Severity]string{
		SeverityUrgente:     "error",
		SeverityRelevante:   "warning",
		SeverityInformativa: "info",
		"critica":           "light",
	}
	for sev, want := range cases {
		if got := sev.BadgeColor(); got != want {
			t.Fatalf("%s: expected %s, got %s", sev, want, got)
		}
	}
	if Severity("critica").Valid() {
		t.Fatalf("unexpected valid severity")
	}
}

func TestPhoneListFallsBackToID(t *testing.T) {
	n := GraphNode{ID: "555", Type: NodeContact}
	if got := n.PhoneList(); len(got) != 1 || got[0] != "555" {
		t.Fatalf("unexpected phones: %v", got)
	}
}

func TestPhoneListEmptyArrayQueriesNothing(t *testing.T) {
	var n GraphNode
	if err := json.Unmarshal([]byte(`{"id":"c1","type":"contact","phones":[]}`), &n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := n.PhoneList(); len(got) != 0 {
		t.Fatalf("expected no phones, got %v", got)
	}
	out, _ := json.Marshal(n)
	var back GraphNode
	_ = json.Unmarshal(out, &back)
	if len(back.PhoneList()) != 0 {
		t.Fatalf("empty phone list lost in %s", out)
	}
}
