package advisory

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(status int, body string, transportErr error) *Client {
	c := NewClient("http://advisory.test/suggest", "", 0)
	c.httpClient = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if transportErr != nil {
				return nil, transportErr
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     http.Header{},
			}, nil
		}),
	}
	return c
}

func TestClientSuggest(t *testing.T) {
	body := `{"strategy":"transfer_required","logic":"use a hub","preferredTransferPoints":["Borella Junction","Town Hall"]}`
	c := newTestClient(http.StatusOK, body, nil)

	adv, err := c.Suggest(context.Background(), "Kollupitiya", "Malabe", []string{"Kollupitiya", "Malabe"})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if adv.Strategy != StrategyTransferRequired {
		t.Errorf("Strategy = %s, want transfer_required", adv.Strategy)
	}
	if len(adv.PreferredTransferPoints) != 2 {
		t.Errorf("PreferredTransferPoints = %v, want 2 entries", adv.PreferredTransferPoints)
	}
}

func TestClientDegradesToStandard(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		transportErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "not json", status: http.StatusOK, body: "<html>nope</html>"},
		{name: "unknown strategy", status: http.StatusOK, body: `{"strategy":"teleport"}`},
		{name: "transport failure", transportErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(tt.status, tt.body, tt.transportErr)
			adv, err := c.Suggest(context.Background(), "a", "b", nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if adv.Strategy != StrategyStandard {
				t.Errorf("fallback Strategy = %s, want standard", adv.Strategy)
			}
		})
	}
}

func TestClientSendsQueryAndAuth(t *testing.T) {
	var got *http.Request
	var gotBody string
	c := NewClient("http://advisory.test/suggest", "secret-key", 0)
	c.httpClient = &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			got = req
			b, _ := io.ReadAll(req.Body)
			gotBody = string(b)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"strategy":"standard"}`)),
				Header:     http.Header{},
			}, nil
		}),
	}

	if _, err := c.Suggest(context.Background(), "Fort", "Nugegoda", []string{"Fort"}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", got.Method)
	}
	if auth := got.Header.Get("Authorization"); auth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", auth)
	}
	for _, want := range []string{`"originText":"Fort"`, `"destinationText":"Nugegoda"`, `"stopNames":["Fort"]`} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("request body %s missing %s", gotBody, want)
		}
	}
}

func TestHeuristic(t *testing.T) {
	h := NewHeuristic()
	tests := []struct {
		name     string
		from, to string
		want     Strategy
	}{
		{name: "coastal to inland", from: "Kollupitiya", to: "Thalawathugoda", want: StrategyTransferRequired},
		{name: "coastal to coastal", from: "Wellawatte", to: "Dehiwala", want: StrategyDirectPriority},
		{name: "no keyword match", from: "Fort", to: "Nugegoda", want: StrategyStandard},
		{name: "inland to coastal", from: "Malabe", to: "Mount Lavinia", want: StrategyStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv, err := h.Suggest(context.Background(), tt.from, tt.to, nil)
			if err != nil {
				t.Fatalf("Suggest: %v", err)
			}
			if adv.Strategy != tt.want {
				t.Errorf("Strategy = %s, want %s", adv.Strategy, tt.want)
			}
			if tt.want == StrategyTransferRequired && len(adv.PreferredTransferPoints) == 0 {
				t.Error("transfer_required advice should name preferred hubs")
			}
		})
	}
}
