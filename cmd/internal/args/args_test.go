package args

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlagsCorrect(t *testing.T) {
	args, _, err := ParseArgs([]string{
		"-url",
		"https://mycluster:19080",
		"-certFile",
		"/certs/client.pem",
		"-queries",
		"nodes",
		"-queries",
		"chaos,chaos-events",
		"-dest",
		"/tmp",
		"-console",
		"-eventWindow",
		"2h",
		"-retryAttempts",
		"5",
	})

	if err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if args.Url != "https://mycluster:19080" {
		t.Fatalf("Url should have been https://mycluster:19080")
	}

	if args.CertFile != "/certs/client.pem" {
		t.Fatalf("CertFile should have been /certs/client.pem")
	}

	if len(args.GetQueries()) != 3 || args.GetQueries()[2] != QueryChaosEvents {
		t.Fatalf("Queries should have been nodes, chaos, chaos-events, was %v", args.GetQueries())
	}

	if args.Destination != "/tmp" {
		t.Fatalf("Destination should have been /tmp")
	}

	if !args.Console {
		t.Fatalf("Console should have been true")
	}

	if args.EventWindow != 2*time.Hour {
		t.Fatalf("EventWindow should have been 2h")
	}

	if args.RetryAttempts != 5 {
		t.Fatalf("RetryAttempts should have been 5")
	}

	if args.UseTokenAuth() {
		t.Fatalf("Token auth should not have been enabled")
	}
}

func TestDefaultQueries(t *testing.T) {
	args, _, err := ParseArgs([]string{"-url", "http://localhost:19080"})

	if err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if len(args.GetQueries()) != len(DefaultQueries) {
		t.Fatalf("Queries should have defaulted to %v", DefaultQueries)
	}
}

func TestUnknownQueryIsAnError(t *testing.T) {
	_, _, err := ParseArgs([]string{"-queries", "nodes,upgrades"})

	if err == nil {
		t.Fatalf("Should have returned an error")
	}
}

func TestClusterEndpointFallback(t *testing.T) {
	t.Setenv("SF_CLUSTER_ENDPOINT", "http://fallback:19080")

	args, _, err := ParseArgs([]string{})

	if err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if args.Url != "http://fallback:19080" {
		t.Fatalf("Url should have been read from SF_CLUSTER_ENDPOINT")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("SFQUERY_URL", "http://env:19080")
	t.Setenv("SFQUERY_AADSCOPE", "api://cluster/.default")

	args, _, err := ParseArgs([]string{})

	if err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if args.Url != "http://env:19080" {
		t.Fatalf("Url should have been read from SFQUERY_URL")
	}

	if !args.UseTokenAuth() {
		t.Fatalf("Token auth should have been enabled")
	}
}

func TestCommandLineWinsOverEnvironment(t *testing.T) {
	t.Setenv("SFQUERY_URL", "http://env:19080")

	args, _, err := ParseArgs([]string{"-url", "http://flag:19080"})

	if err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if args.Url != "http://flag:19080" {
		t.Fatalf("Url should have been read from the command line")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := "url: http://config:19080\nqueries:\n  - partitions\n  - backup-policies\n"

	if err := os.WriteFile(filepath.Join(dir, "sfquery.yaml"), []byte(config), 0600); err != nil {
		t.Fatalf("Should have written the config file")
	}

	args, _, err := ParseArgs([]string{"-configPath", dir})

	if err != nil {
		t.Fatalf("Should not have returned an error: %v", err)
	}

	if args.Url != "http://config:19080" {
		t.Fatalf("Url should have been read from the config file")
	}

	if len(args.GetQueries()) != 2 || args.GetQueries()[0] != QueryPartitions {
		t.Fatalf("Queries should have been read from the config file, was %v", args.GetQueries())
	}
}
