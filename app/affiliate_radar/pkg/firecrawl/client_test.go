package firecrawl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
)

func TestClient_Scrape(t *testing.T) {
	var got ScrapeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/scrape" {
			t.Errorf("request = %s %s, want POST /v1/scrape", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer fc-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"markdown":"# Campaign\n1,000pt","metadata":{"title":"Campaign","statusCode":200}}}`))
	}))
	defer srv.Close()

	c := NewClient("fc-key", WithBaseURL(srv.URL+"/"))
	resp, err := c.Scrape(context.Background(), &scrape.Request{URL: "https://example.com/campaign"})
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if got.URL != "https://example.com/campaign" {
		t.Errorf("request url = %q", got.URL)
	}
	if len(got.Formats) != 1 || got.Formats[0] != scrape.FormatMarkdown {
		t.Errorf("request formats = %v, want [markdown]", got.Formats)
	}
	if resp.Markdown != "# Campaign\n1,000pt" {
		t.Errorf("Markdown = %q", resp.Markdown)
	}
	if resp.Title != "Campaign" || resp.StatusCode != 200 {
		t.Errorf("metadata = %q/%d", resp.Title, resp.StatusCode)
	}
}

func TestClient_Scrape_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "non-2xx", status: http.StatusPaymentRequired, body: `{"error":"Insufficient credits"}`, wantErr: "status 402"},
		{name: "unsuccessful", status: http.StatusOK, body: `{"success":false,"error":"blocked"}`, wantErr: "blocked"},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: "unmarshal response failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient("k", WithBaseURL(srv.URL)).Scrape(context.Background(), &scrape.Request{URL: "https://example.com"})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Scrape() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
