package entry

import (
	"context"
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/client"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newClusterServer(t *testing.T) *client.ServiceFabricApiClient {
	mux := http.NewServeMux()
	mux.HandleFunc("/$/GetClusterHealth", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"AggregatedHealthState":"Warning","HealthStatistics":{"HealthStateCountList":[
			{"EntityKind":"Node","HealthStateCount":{"OkCount":2,"WarningCount":1,"ErrorCount":0}}]}}`)
	})
	mux.HandleFunc("/Nodes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Items":[{"Name":"_Node_0"},{"Name":"_Node_1"}]}`)
	})
	mux.HandleFunc("/Applications", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Items":[{"Id":"voting","Name":"fabric:/voting"},{"Id":"shop","Name":"fabric:/shop"}]}`)
	})
	mux.HandleFunc("/Applications/voting/$/GetServices", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Items":[{"ServiceKind":"Stateful","Id":"voting~data","Name":"fabric:/voting/data"}]}`)
	})
	mux.HandleFunc("/Applications/shop/$/GetServices", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Items":[{"ServiceKind":"Stateless","Id":"shop~web","Name":"fabric:/shop/web"}]}`)
	})
	mux.HandleFunc("/Services/voting~data/$/GetPartitions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Items":[{"ServiceKind":"Stateful","PartitionInformation":
			{"ServicePartitionKind":"Singleton","Id":"7d3b7a4e-1d9c-4c8e-9a0b-2f1e3d4c5b6a"},"TargetReplicaSetSize":3}]}`)
	})
	mux.HandleFunc("/Services/shop~web/$/GetPartitions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Items":[{"ServiceKind":"Stateless","PartitionInformation":
			{"ServicePartitionKind":"Singleton","Id":"0a8f7d3e-5b6c-4d1e-8f2a-9b3c4d5e6f70"},"InstanceCount":-1}]}`)
	})
	mux.HandleFunc("/Tools/Chaos/Events", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ContinuationToken") == "" {
			_, _ = io.WriteString(w, `{"ContinuationToken":"more","History":[{"ChaosEvent":{"Kind":"Started","TimeStampUtc":"2024-03-01T10:00:00Z"}}]}`)
			return
		}

		_, _ = io.WriteString(w, `{"History":[{"ChaosEvent":{"Kind":"Stopped","TimeStampUtc":"2024-03-01T11:00:00Z","Reason":"done"}}]}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &client.ServiceFabricApiClient{Url: server.URL, HttpClient: server.Client(), RetryDelay: time.Millisecond}
}

func TestRunQueriesWritesDocuments(t *testing.T) {
	sfClient := newClusterServer(t)
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	files, err := RunQueries(context.Background(), sfClient,
		[]string{args.QueryClusterHealth, args.QueryNodes, args.QueryPartitions, args.QueryChaosEvents},
		24*time.Hour, now)
	require.NoError(t, err)

	assert.Contains(t, files, "cluster_health.json")
	assert.Contains(t, files, "nodes.json")
	assert.Contains(t, files, "partitions.json")
	assert.Contains(t, files, "chaos_events.json")
	assert.Contains(t, files, ManifestFileName)

	nodes := []map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(files["nodes.json"]), &nodes))
	assert.Len(t, nodes, 2)

	partitions := []map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(files["partitions.json"]), &partitions))
	require.Len(t, partitions, 2)
	assert.Equal(t, "fabric:/shop/web", partitions[0]["ServiceName"])
	assert.Equal(t, "fabric:/voting/data", partitions[1]["ServiceName"])

	chaosEvents := []map[string]map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(files["chaos_events.json"]), &chaosEvents))
	require.Len(t, chaosEvents, 2)
	assert.Equal(t, "Stopped", chaosEvents[1]["ChaosEvent"]["Kind"])
}

func TestManifestListsChecksums(t *testing.T) {
	sfClient := newClusterServer(t)
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	files, err := RunQueries(context.Background(), sfClient, []string{args.QueryNodes, args.QueryApplications}, time.Hour, now)
	require.NoError(t, err)

	index := manifest{}
	require.NoError(t, json.Unmarshal([]byte(files[ManifestFileName]), &index))
	assert.Equal(t, now, index.GeneratedAt)
	require.Len(t, index.Documents, 2)
	assert.Equal(t, "applications.json", index.Documents[0].FileName)
	assert.Equal(t, hash.Sha256Hash(files["applications.json"]), index.Documents[0].Sha256)
}

func TestServicesAreGroupedByApplication(t *testing.T) {
	sfClient := newClusterServer(t)

	services, err := collectServices(context.Background(), sfClient)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "fabric:/shop", services[0].ApplicationName)
	require.Len(t, services[1].Services, 1)
	assert.Equal(t, "voting~data", *services[1].Services[0].GetId())
}

func TestQueryFailureIsReturned(t *testing.T) {
	sfClient := newClusterServer(t)

	// backup policies are not served by the test cluster
	_, err := RunQueries(context.Background(), sfClient, []string{args.QueryNodes, args.QueryBackupPolicies}, time.Hour, time.Now())
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
}

func TestUnknownQuery(t *testing.T) {
	_, err := lookupQuery("upgrades")
	require.Error(t, err)
}

func TestUnknownQueryIsRejectedBeforeAnyRequest(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = io.WriteString(w, `{"Items":[]}`)
	}))
	t.Cleanup(server.Close)

	sfClient := &client.ServiceFabricApiClient{Url: server.URL, HttpClient: server.Client(), RetryDelay: time.Millisecond}

	_, err := RunQueries(context.Background(), sfClient, []string{args.QueryNodes, args.QueryApplications, "upgrades"}, time.Hour, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown query upgrades")
	assert.Equal(t, int32(0), requests.Load())
}

func TestEveryQueryHasAHandler(t *testing.T) {
	for _, name := range args.AllQueries {
		q, err := lookupQuery(name)
		require.NoError(t, err)
		assert.NotEmpty(t, q.FileName)
	}
}
