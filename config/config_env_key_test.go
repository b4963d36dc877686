package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"cartApi": map[string]any{
			"baseUrl": "http://localhost:9000",
			"timeout": "10s",
		},
		"guestStore": map[string]any{
			"path": "",
		},
		"env": map[string]any{
			"serviceName": "cartbridge",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CARTAPI_BASEURL", want: "cartApi.baseUrl"},
		{envKey: "CARTAPI_TIMEOUT", want: "cartApi.timeout"},
		{envKey: "GUESTSTORE_PATH", want: "guestStore.path"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
