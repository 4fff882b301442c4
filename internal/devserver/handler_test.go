package devserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lunziqwq/cdxml-tools/parser"
)

func strp(s string) *string { return &s }

func TestHandler_ServeHTTP_NoResultYet(t *testing.T) {
	h := &Handler{}

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status code: got %v, want %v", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "no parse result yet") {
		t.Errorf("body = %q, want a not-yet-parsed placeholder", rr.Body.String())
	}
}

func TestHandler_ServeHTTP_RendersCurrentSnapshot(t *testing.T) {
	h := &Handler{}
	h.Update(&parser.Output{
		Reaction: []parser.ReactionEntry{
			{Tag: "rxn1", Reactant: []string{"c1"}, Product: []string{"c2"}},
		},
		Compound: []parser.CompoundEntry{
			{Tag: "c1", Semantics: "reactant", Text: strp("A")},
			{Tag: "c2", Semantics: "product", Text: strp("B")},
		},
	})

	req, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status code: got %v, want %v", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"reaction scheme", "rxn1", "A", "B"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
}

func TestHandler_Update_BroadcastsToSubscribers(t *testing.T) {
	h := &Handler{}
	h.init.Do(func() { h.subscribers = make(map[chan *parser.Output]struct{}) })

	sub := make(chan *parser.Output, 1)
	h.subMu.Lock()
	h.subscribers[sub] = struct{}{}
	h.subMu.Unlock()

	out := &parser.Output{}
	h.Update(out)

	select {
	case got := <-sub:
		if got != out {
			t.Errorf("subscriber got %v, want %v", got, out)
		}
	default:
		t.Error("subscriber did not receive update")
	}
}
