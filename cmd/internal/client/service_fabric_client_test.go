package client

import (
	"context"
	"errors"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/model/servicefabric"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"k8s.io/utils/ptr"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ServiceFabricApiClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &ServiceFabricApiClient{
		Url:           server.URL,
		HttpClient:    server.Client(),
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}
}

func TestGetNodeInfoListFollowsContinuationTokens(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Nodes", r.URL.Path)
		assert.Equal(t, "6.3", r.URL.Query().Get("api-version"))

		switch r.URL.Query().Get("ContinuationToken") {
		case "":
			_, _ = io.WriteString(w, `{"ContinuationToken":"page2","Items":[{"Name":"_Node_0"},{"Name":"_Node_1"}]}`)
		case "page2":
			_, _ = io.WriteString(w, `{"ContinuationToken":"","Items":[{"Name":"_Node_2"}]}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	nodes, err := CollectAll[servicefabric.NodeInfo](context.Background(), client.GetNodeInfoList)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, "_Node_2", *nodes[2].Name)
}

func TestGetServiceInfoListUsesEntityIdAndDecodesKinds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Applications/app~nested/$/GetServices", r.URL.Path)
		_, _ = io.WriteString(w, `{"Items":[
			{"ServiceKind":"Stateful","Id":"app~nested~svc","Name":"fabric:/app/nested/svc","HasPersistedState":true},
			{"ServiceKind":"Stateless","Id":"app~nested~web","Name":"fabric:/app/nested/web"}]}`)
	})

	page, err := client.GetServiceInfoList(context.Background(), "fabric:/app/nested", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.False(t, page.HasMore())

	stateful, ok := page.Items[0].(*servicefabric.StatefulServiceInfo)
	require.True(t, ok)
	assert.True(t, *stateful.HasPersistedState)
	assert.Equal(t, servicefabric.ServiceKindStateless, page.Items[1].ServiceKind())
}

func TestTransientErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"Error":{"Code":"FABRIC_E_SERVICE_TOO_BUSY","Message":"busy"}}`)
			return
		}

		_, _ = io.WriteString(w, `{"AggregatedHealthState":"Ok"}`)
	})

	health, err := client.GetClusterHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, servicefabric.HealthStateOk, *health.AggregatedHealthState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPermanentErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"Error":{"Code":"E_INVALIDARG","Message":"bad token"}}`)
	})

	_, err := client.GetApplicationInfoList(context.Background(), "garbage")

	var fabricErr *FabricError
	require.True(t, errors.As(err, &fabricErr))
	assert.Equal(t, servicefabric.FabricErrorCodeInvalidArgument, fabricErr.Code)
	assert.Equal(t, http.StatusBadRequest, fabricErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetriesStopAfterTheConfiguredAttempts(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"Error":{"Code":"FABRIC_E_TIMEOUT"}}`)
	})

	_, err := client.GetChaos(context.Background())

	var fabricErr *FabricError
	require.True(t, errors.As(err, &fabricErr))
	assert.Equal(t, servicefabric.FabricErrorCodeTimeout, fabricErr.Code)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetBackupPolicyByNameNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/BackupRestore/BackupPolicies/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"Error":{"Code":"FABRIC_E_BACKUP_POLICY_NOT_EXISTING"}}`)
	})

	policy := servicefabric.BackupPolicyDescription{}
	exists, err := client.GetBackupPolicyByName(context.Background(), "missing", &policy)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateBackupPolicyPostsValidPolicy(t *testing.T) {
	var body []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/BackupRestore/BackupPolicies/$/Create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	})

	schedule, err := servicefabric.NewFrequencyBasedBackupScheduleDescription("PT4H")
	require.NoError(t, err)
	storage, err := servicefabric.NewFileShareBackupStorageDescription(`\\backups\share`, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	policy, err := servicefabric.NewBackupPolicyDescription("hourly", false, 10, schedule, storage, nil)
	require.NoError(t, err)

	require.NoError(t, client.CreateBackupPolicy(context.Background(), *policy))

	decoded := servicefabric.BackupPolicyDescription{}
	require.NoError(t, decoded.UnmarshalJSON(body))
	assert.Equal(t, "hourly", decoded.Name)
	assert.Equal(t, servicefabric.BackupStorageKindFileShare, decoded.Storage.StorageKind())
}

func TestCreateBackupPolicyRejectsInvalidPolicy(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	err := client.CreateBackupPolicy(context.Background(), servicefabric.BackupPolicyDescription{Name: "empty"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))
	assert.Equal(t, int32(0), calls.Load())
}

func TestGetNodeInfoIsCached(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/Nodes/_Node_0", r.URL.Path)
		_, _ = io.WriteString(w, `{"Name":"_Node_0","NodeStatus":"Up"}`)
	})

	for i := 0; i < 2; i++ {
		node := servicefabric.NodeInfo{}
		exists, err := client.GetNodeInfo(context.Background(), "_Node_0", &node)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, servicefabric.NodeStatusUp, *node.NodeStatus)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestGetNodesEventList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/EventsStore/Nodes/Events", r.URL.Path)
		assert.Equal(t, "2024-03-01T00:00:00Z", r.URL.Query().Get("StartTimeUtc"))
		assert.Equal(t, "2024-03-02T00:00:00Z", r.URL.Query().Get("EndTimeUtc"))
		_, _ = io.WriteString(w, `[{"Kind":"NodeDown","EventInstanceId":"5f5e1b2c-4f4e-4c36-a1a6-3c1e8a0c9d11",
			"TimeStamp":"2024-03-01T10:00:00Z","NodeName":"_Node_1","NodeInstance":7,"LastNodeUpAt":"2024-02-28T10:00:00Z"}]`)
	})

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.GetNodesEventList(context.Background(), start, start.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)

	down, ok := events[0].(*servicefabric.NodeDownEvent)
	require.True(t, ok)
	assert.Equal(t, "_Node_1", down.NodeName)
	assert.Equal(t, int64(7), down.NodeInstance)
}

func TestEventWindowMustBeOrdered(t *testing.T) {
	client := &ServiceFabricApiClient{Url: "http://localhost:19080"}
	start := time.Now()

	_, err := client.GetClusterEventList(context.Background(), start, start.Add(-time.Hour))
	require.Error(t, err)
}

func TestGetChaosEventsUsesFileTime(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "116444736000000000", r.URL.Query().Get("StartTimeUtc"))
		assert.Equal(t, "10", r.URL.Query().Get("MaxResults"))
		_, _ = io.WriteString(w, `{"ContinuationToken":"next","History":[
			{"ChaosEvent":{"Kind":"Started","TimeStampUtc":"2024-03-01T10:00:00Z"}}]}`)
	})

	segment, err := client.GetChaosEvents(context.Background(), ChaosEventsQuery{
		StartTimeUtc: ptr.To(time.Unix(0, 0)),
		MaxResults:   10,
	})
	require.NoError(t, err)
	assert.True(t, segment.HasMore())
	require.Len(t, segment.History, 1)
	assert.Equal(t, servicefabric.ChaosEventKindStarted, segment.History[0].ChaosEvent.ChaosEventKind())
}

func TestStartDataLossByNameIsStable(t *testing.T) {
	operationIds := []string{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "PartialDataLoss", r.URL.Query().Get("DataLossMode"))
		operationIds = append(operationIds, r.URL.Query().Get("OperationId"))
		w.WriteHeader(http.StatusAccepted)
	})

	partitionId := uuid.MustParse("1b2d6a3e-0e1f-4c52-8a4e-3f7c1a9b2c4d")

	first, err := client.StartDataLossByName(context.Background(), "fabric:/app/svc", partitionId, "drill", servicefabric.DataLossModePartialDataLoss)
	require.NoError(t, err)
	second, err := client.StartDataLossByName(context.Background(), "app~svc", partitionId, "drill", servicefabric.DataLossModePartialDataLoss)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{first.String(), first.String()}, operationIds)
}

func TestStartDataLossRejectsInvalidMode(t *testing.T) {
	client := &ServiceFabricApiClient{Url: "http://localhost:19080"}

	err := client.StartDataLoss(context.Background(), "app~svc", uuid.New(), uuid.New(), servicefabric.DataLossModeInvalid)
	require.Error(t, err)
}

func TestProvisionApplicationTypeValidates(t *testing.T) {
	client := &ServiceFabricApiClient{Url: "http://localhost:19080"}

	err := client.ProvisionApplicationType(context.Background(), servicefabric.ImageStorePathProvisionDescription{})
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))
}

type staticCredential struct {
	scopes []string
}

func (c *staticCredential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	c.scopes = options.Scopes
	return azcore.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

func TestTokenAuthorizerAddsBearerToken(t *testing.T) {
	credential := &staticCredential{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{}`)
	})
	client.Authorizer = TokenAuthorizer{Credential: credential, Scope: "api://cluster/.default"}

	_, err := client.GetClusterHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"api://cluster/.default"}, credential.scopes)
}

func TestEmptyUrlIsAnError(t *testing.T) {
	client := &ServiceFabricApiClient{}

	_, err := client.GetClusterHealth(context.Background())
	require.Error(t, err)
}

func TestGetReplicaInfoList(t *testing.T) {
	partitionId := uuid.MustParse("1b2d6a3e-0e1f-4c52-8a4e-3f7c1a9b2c4d")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Partitions/"+partitionId.String()+"/$/GetReplicas", r.URL.Path)
		_, _ = io.WriteString(w, `{"Items":[
			{"ServiceKind":"Stateful","ReplicaRole":"Primary","ReplicaId":"132","NodeName":"_Node_0"},
			{"ServiceKind":"Stateless","InstanceId":"133","NodeName":"_Node_1"}]}`)
	})

	page, err := client.GetReplicaInfoList(context.Background(), partitionId, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, servicefabric.ServiceKindStateful, page.Items[0].ServiceKind())
	assert.Equal(t, "_Node_1", *page.Items[1].GetNodeName())
}

func TestStartAndStopChaos(t *testing.T) {
	paths := []string{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
	})

	parameters := servicefabric.ChaosParameters{
		TimeToRunInSeconds:  ptr.To("3600"),
		MaxConcurrentFaults: ptr.To[int64](2),
	}

	require.NoError(t, client.StartChaos(context.Background(), parameters))
	require.NoError(t, client.StopChaos(context.Background()))
	assert.Equal(t, []string{"/Tools/Chaos/$/Start", "/Tools/Chaos/$/Stop"}, paths)
}

func TestStartChaosRejectsOutOfRangeParameters(t *testing.T) {
	client := &ServiceFabricApiClient{Url: "http://localhost:19080"}

	err := client.StartChaos(context.Background(), servicefabric.ChaosParameters{
		MaxConcurrentFaults: ptr.To(servicefabric.MaxChaosSeconds + 1),
	})
	assert.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))
}

func TestDeleteBackupPolicy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/BackupRestore/BackupPolicies/nightly/$/Delete", r.URL.Path)
		assert.Equal(t, "6.4", r.URL.Query().Get("api-version"))
	})

	require.NoError(t, client.DeleteBackupPolicy(context.Background(), "nightly"))
	require.Error(t, client.DeleteBackupPolicy(context.Background(), ""))
}

func TestSingletonResourcesReportNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"Error":{"Code":"FABRIC_E_INVALID_ADDRESS","Message":"no such endpoint"}}`)
	})

	_, err := client.GetClusterHealth(context.Background())

	var fabricError *FabricError
	require.True(t, errors.As(err, &fabricError))
	assert.Equal(t, http.StatusNotFound, fabricError.StatusCode)
	assert.True(t, IsNotFound(err))

	_, err = client.GetChaos(context.Background())

	require.True(t, errors.As(err, &fabricError))
	assert.Equal(t, "FABRIC_E_INVALID_ADDRESS", fabricError.Code)

	_, err = client.GetChaosEvents(context.Background(), ChaosEventsQuery{ContinuationToken: "next"})
	assert.True(t, IsNotFound(err))
}

func TestEntityIdPathSegmentsAreEscaped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Applications/shop#blue/$/GetServices":
			_, _ = io.WriteString(w, `{"Items":[]}`)
		case "/Services/shop#blue~cart?v2/$/GetPartitions":
			_, _ = io.WriteString(w, `{"Items":[]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	_, err := client.GetServiceInfoList(context.Background(), "fabric:/shop#blue", "")
	require.NoError(t, err)

	_, err = client.GetPartitionInfoList(context.Background(), "fabric:/shop#blue/cart?v2", "")
	require.NoError(t, err)
}
