package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "profilehub",
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
		"env": map[string]any{
			"serviceName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
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

func TestPostgresConfigDSN(t *testing.T) {
	cfg := &PostgresConfig{
		ConnectionConfig: ConnectionConfig{
			Host:     "db.internal",
			Port:     "5432",
			UserName: "svc",
			Password: "secret",
		},
		DBName: "profiles",
	}

	want := "host=db.internal port=5432 user=svc password=secret dbname=profiles sslmode=disable TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}

	cfg.Replicas = []ConnectionConfig{{Host: "replica-1", Port: "5433", UserName: "ro", Password: "secret"}}
	replicaDSNs := cfg.ReplicaDSNs()
	if len(replicaDSNs) != 1 {
		t.Fatalf("ReplicaDSNs() returned %d entries, want 1", len(replicaDSNs))
	}
	wantReplica := "host=replica-1 port=5433 user=ro password=secret dbname=profiles sslmode=disable TimeZone=UTC"
	if replicaDSNs[0] != wantReplica {
		t.Fatalf("ReplicaDSNs()[0] = %q, want %q", replicaDSNs[0], wantReplica)
	}
}
