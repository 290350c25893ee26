package chatalert

import (
	"testing"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		rawURL    string
		wantError bool
	}{
		{
			name:      "valid HTTPS endpoint",
			rawURL:    "https://hooks.example.com/services/T0000/B0000/XXXX",
			wantError: false,
		},
		{
			name:      "valid HTTP endpoint",
			rawURL:    "http://hooks.example.com/services/T0000/B0000/XXXX",
			wantError: false,
		},
		{
			name:      "endpoint with port",
			rawURL:    "https://hooks.example.com:3000/services/T0000/B0000/XXXX",
			wantError: false,
		},
		{
			name:      "endpoint with query string",
			rawURL:    "https://hooks.example.com/post?channel=incidents",
			wantError: false,
		},
		{
			name:      "invalid endpoint - no host",
			rawURL:    "https:///services/T0000",
			wantError: true,
		},
		{
			name:      "invalid endpoint - bad scheme",
			rawURL:    "ftp://hooks.example.com/services/T0000",
			wantError: true,
		},
		{
			name:      "invalid endpoint - no scheme",
			rawURL:    "hooks.example.com/services/T0000",
			wantError: true,
		},
		{
			name:      "invalid endpoint - empty",
			rawURL:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, err := ParseEndpoint(tt.rawURL)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseEndpoint(%q): expected error, got %v", tt.rawURL, endpoint)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseEndpoint(%q): unexpected error %v", tt.rawURL, err)
			}
		})
	}
}

func TestEndpointString(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{
			rawURL: "https://hooks.example.com/services/T0000/B0000/XXXX",
			want:   "https://hooks.example.com/services/T0000/B0000/XXXX",
		},
		{
			// Default port is elided.
			rawURL: "https://hooks.example.com:443/services/T0000",
			want:   "https://hooks.example.com/services/T0000",
		},
		{
			rawURL: "http://hooks.example.com:3000/post?channel=incidents",
			want:   "http://hooks.example.com:3000/post?channel=incidents",
		},
	}

	for _, tt := range tests {
		endpoint, err := ParseEndpoint(tt.rawURL)
		if err != nil {
			t.Fatalf("ParseEndpoint(%q): %v", tt.rawURL, err)
		}
		assertEqual(t, endpoint.String(), tt.want)
	}
}

func TestEndpointPortDefaults(t *testing.T) {
	https, err := ParseEndpoint("https://hooks.example.com/x")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, https.Port(), 443)

	http, err := ParseEndpoint("http://hooks.example.com/x")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, http.Port(), 80)
}
