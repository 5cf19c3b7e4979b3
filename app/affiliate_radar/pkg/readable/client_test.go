package readable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
)

const campaignPage = `<!DOCTYPE html>
<html><head><title>Campaign Page</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>New member campaign</h1>
<p>Register as a new member of the Example Card service and receive 1,000 points. The points are credited to your account balance within thirty days after the registration has been confirmed by the advertiser.</p>
<p>Conditions: the registration must be a first-time registration, the profile must be completed within seven days, and at least three hundred points must be exchanged during the campaign period announced on this page.</p>
<p>Rewards are denied for duplicate registrations, registrations that contain false information, and for users who have registered with the service in the past. The advertiser decides approval at its sole discretion.</p>
</article>
</body></html>`

func TestClient_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header missing")
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(campaignPage))
	}))
	defer srv.Close()

	resp, err := NewClient(5).Scrape(context.Background(), &scrape.Request{URL: srv.URL + "/campaign"})
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if !strings.Contains(resp.Markdown, "receive 1,000 points") {
		t.Errorf("Markdown = %q, want article text", resp.Markdown)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
}

func TestClient_Scrape_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	_, err := NewClient(5).Scrape(context.Background(), &scrape.Request{URL: srv.URL})
	if err == nil || !strings.Contains(err.Error(), "status 410") {
		t.Errorf("Scrape() error = %v, want status 410", err)
	}
}

func TestClient_Name(t *testing.T) {
	if got := NewClient(0).Name(); got != "Readability" {
		t.Errorf("Name() = %q", got)
	}
}
