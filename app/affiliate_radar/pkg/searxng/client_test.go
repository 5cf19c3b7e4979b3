package searxng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/search"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("format") != "json" || q.Get("language") != "ja-JP" {
			t.Errorf("query = %v", q)
		}
		if q.Get("q") != "Example アフィリエイト ASP" {
			t.Errorf("q = %q", q.Get("q"))
		}
		_, _ = w.Write([]byte(`{"results":[
			{"title":"one","url":"https://1.example","content":"c1"},
			{"title":"two","url":"https://2.example","content":"c2"},
			{"title":"three","url":"https://3.example","content":"c3"}
		]}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, 5).Search(context.Background(), &search.Request{
		Query: "Example アフィリエイト ASP", MaxResults: 2, Locale: "ja", Country: "jp",
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(resp.Results))
	}
	if resp.Results[0].Title != "one" || resp.Results[1].URL != "https://2.example" {
		t.Errorf("Results = %+v", resp.Results)
	}
}

func TestClient_Search_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 5).Search(context.Background(), &search.Request{Query: "q"})
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Errorf("Search() error = %v, want status 429", err)
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct{ locale, country, want string }{
		{"", "jp", ""},
		{"ja", "", "ja"},
		{"ja", "jp", "ja-JP"},
	}
	for _, tt := range tests {
		if got := language(tt.locale, tt.country); got != tt.want {
			t.Errorf("language(%q, %q) = %q, want %q", tt.locale, tt.country, got, tt.want)
		}
	}
}
