package annotate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPAnnotator_Annotate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/annotate" {
			t.Errorf("expected path /annotate, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var req annotateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "Birds fly." {
			t.Errorf("unexpected text: %q", req.Text)
		}

		_ = json.NewEncoder(w).Encode(annotateResponse{
			Sentences: []Sentence{
				{
					Text: "Birds fly.",
					Tokens: []Token{
						{Text: "Birds", POS: "NOUN", Dep: "nsubj"},
						{Text: "fly", POS: "VERB", Dep: "ROOT"},
					},
				},
			},
		})
	}))
	defer server.Close()

	annotator := NewHTTPAnnotator(server.URL, 5*time.Second)
	sentences, err := annotator.Annotate(context.Background(), "Birds fly.")
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if len(sentences[0].Tokens) != 2 || sentences[0].Tokens[1].POS != "VERB" {
		t.Errorf("unexpected tokens: %v", sentences[0].Tokens)
	}
}

func TestHTTPAnnotator_Annotate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer server.Close()

	annotator := NewHTTPAnnotator(server.URL, 5*time.Second)
	if _, err := annotator.Annotate(context.Background(), "text"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestHTTPAnnotator_Annotate_Unreachable(t *testing.T) {
	annotator := NewHTTPAnnotator("http://127.0.0.1:1", 500*time.Millisecond)
	if _, err := annotator.Annotate(context.Background(), "text"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
