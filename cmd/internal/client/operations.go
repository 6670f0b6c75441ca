package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/hash"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/model/servicefabric"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// eventsStoreTimeFormat is the layout the EventsStore endpoints accept for StartTimeUtc and EndTimeUtc.
const eventsStoreTimeFormat = "2006-01-02T15:04:05Z"

// windowsEpochOffset is the number of 100ns ticks between 1601-01-01 and 1970-01-01.
const windowsEpochOffset int64 = 116444736000000000

type ServiceFabricClient interface {
	GetClusterHealth(ctx context.Context) (servicefabric.ClusterHealth, error)
	GetNodeInfoList(ctx context.Context, continuationToken string) (servicefabric.PagedNodeInfoList, error)
	GetNodeInfo(ctx context.Context, nodeName string, node *servicefabric.NodeInfo) (exists bool, funcErr error)
	GetApplicationInfoList(ctx context.Context, continuationToken string) (servicefabric.PagedApplicationInfoList, error)
	GetApplicationInfo(ctx context.Context, applicationId string, application *servicefabric.ApplicationInfo) (exists bool, funcErr error)
	GetServiceInfoList(ctx context.Context, applicationId string, continuationToken string) (servicefabric.PagedList[servicefabric.ServiceInfo], error)
	GetPartitionInfoList(ctx context.Context, serviceId string, continuationToken string) (servicefabric.PagedList[servicefabric.ServicePartitionInfo], error)
	GetReplicaInfoList(ctx context.Context, partitionId uuid.UUID, continuationToken string) (servicefabric.PagedList[servicefabric.ReplicaInfo], error)
	GetBackupPolicyList(ctx context.Context, continuationToken string) (servicefabric.PagedBackupPolicyDescriptionList, error)
	GetBackupPolicyByName(ctx context.Context, name string, policy *servicefabric.BackupPolicyDescription) (exists bool, funcErr error)
	CreateBackupPolicy(ctx context.Context, policy servicefabric.BackupPolicyDescription) error
	DeleteBackupPolicy(ctx context.Context, name string) error
	GetChaos(ctx context.Context) (servicefabric.Chaos, error)
	StartChaos(ctx context.Context, parameters servicefabric.ChaosParameters) error
	StopChaos(ctx context.Context) error
	GetChaosEvents(ctx context.Context, query ChaosEventsQuery) (servicefabric.ChaosEventsSegment, error)
	GetClusterEventList(ctx context.Context, startTimeUtc time.Time, endTimeUtc time.Time) ([]servicefabric.FabricEvent, error)
	GetNodesEventList(ctx context.Context, startTimeUtc time.Time, endTimeUtc time.Time) ([]servicefabric.FabricEvent, error)
	ProvisionApplicationType(ctx context.Context, description servicefabric.ProvisionApplicationTypeDescription) error
	StartDataLoss(ctx context.Context, serviceId string, partitionId uuid.UUID, operationId uuid.UUID, mode servicefabric.DataLossMode) error
}

// ChaosEventsQuery selects a segment of the chaos report. A continuation token takes precedence over
// the time range, matching the cluster's behavior.
type ChaosEventsQuery struct {
	ContinuationToken string
	StartTimeUtc      *time.Time
	EndTimeUtc        *time.Time
	MaxResults        int64
}

func (o *ServiceFabricApiClient) GetClusterHealth(ctx context.Context) (servicefabric.ClusterHealth, error) {
	zap.L().Debug("Getting cluster health")

	body, err := o.send(ctx, http.MethodGet, "/$/GetClusterHealth", "6.0", nil)

	if err != nil {
		return servicefabric.ClusterHealth{}, err
	}

	health := servicefabric.ClusterHealth{}
	if err := o.unmarshal(&health, body); err != nil {
		return servicefabric.ClusterHealth{}, err
	}

	return health, nil
}

func (o *ServiceFabricApiClient) GetNodeInfoList(ctx context.Context, continuationToken string) (servicefabric.PagedNodeInfoList, error) {
	zap.L().Debug("Getting collection Nodes")

	body, err := o.send(ctx, http.MethodGet, "/Nodes", "6.3", nil, []string{"ContinuationToken", continuationToken})

	if err != nil {
		return servicefabric.PagedNodeInfoList{}, err
	}

	return servicefabric.UnmarshalPagedList[servicefabric.NodeInfo](body)
}

func (o *ServiceFabricApiClient) GetNodeInfo(ctx context.Context, nodeName string, node *servicefabric.NodeInfo) (exists bool, funcErr error) {
	return o.getCachedResourceById(ctx, "Nodes", nodeName, "/Nodes/"+url.PathEscape(nodeName), "6.0", node)
}

func (o *ServiceFabricApiClient) GetApplicationInfoList(ctx context.Context, continuationToken string) (servicefabric.PagedApplicationInfoList, error) {
	zap.L().Debug("Getting collection Applications")

	body, err := o.send(ctx, http.MethodGet, "/Applications", "6.1", nil, []string{"ContinuationToken", continuationToken})

	if err != nil {
		return servicefabric.PagedApplicationInfoList{}, err
	}

	return servicefabric.UnmarshalPagedList[servicefabric.ApplicationInfo](body)
}

func (o *ServiceFabricApiClient) GetApplicationInfo(ctx context.Context, applicationId string, application *servicefabric.ApplicationInfo) (exists bool, funcErr error) {
	id := EntityId(applicationId)
	return o.getCachedResourceById(ctx, "Applications", id, "/Applications/"+url.PathEscape(id), "6.0", application)
}

func (o *ServiceFabricApiClient) GetServiceInfoList(ctx context.Context, applicationId string, continuationToken string) (servicefabric.PagedList[servicefabric.ServiceInfo], error) {
	path := "/Applications/" + url.PathEscape(EntityId(applicationId)) + "/$/GetServices"
	zap.L().Debug("Getting collection " + path)

	body, err := o.send(ctx, http.MethodGet, path, "6.0", nil, []string{"ContinuationToken", continuationToken})

	if err != nil {
		return servicefabric.PagedList[servicefabric.ServiceInfo]{}, err
	}

	return servicefabric.UnmarshalPagedServiceInfoList(body)
}

func (o *ServiceFabricApiClient) GetPartitionInfoList(ctx context.Context, serviceId string, continuationToken string) (servicefabric.PagedList[servicefabric.ServicePartitionInfo], error) {
	path := "/Services/" + url.PathEscape(EntityId(serviceId)) + "/$/GetPartitions"
	zap.L().Debug("Getting collection " + path)

	body, err := o.send(ctx, http.MethodGet, path, "6.0", nil, []string{"ContinuationToken", continuationToken})

	if err != nil {
		return servicefabric.PagedList[servicefabric.ServicePartitionInfo]{}, err
	}

	return servicefabric.UnmarshalPagedServicePartitionInfoList(body)
}

func (o *ServiceFabricApiClient) GetReplicaInfoList(ctx context.Context, partitionId uuid.UUID, continuationToken string) (servicefabric.PagedList[servicefabric.ReplicaInfo], error) {
	path := "/Partitions/" + partitionId.String() + "/$/GetReplicas"
	zap.L().Debug("Getting collection " + path)

	body, err := o.send(ctx, http.MethodGet, path, "6.0", nil, []string{"ContinuationToken", continuationToken})

	if err != nil {
		return servicefabric.PagedList[servicefabric.ReplicaInfo]{}, err
	}

	return servicefabric.UnmarshalPagedReplicaInfoList(body)
}

func (o *ServiceFabricApiClient) GetBackupPolicyList(ctx context.Context, continuationToken string) (servicefabric.PagedBackupPolicyDescriptionList, error) {
	zap.L().Debug("Getting collection BackupPolicies")

	body, err := o.send(ctx, http.MethodGet, "/BackupRestore/BackupPolicies", "6.4", nil, []string{"ContinuationToken", continuationToken})

	if err != nil {
		return servicefabric.PagedBackupPolicyDescriptionList{}, err
	}

	return servicefabric.UnmarshalPagedList[servicefabric.BackupPolicyDescription](body)
}

func (o *ServiceFabricApiClient) GetBackupPolicyByName(ctx context.Context, name string, policy *servicefabric.BackupPolicyDescription) (exists bool, funcErr error) {
	return o.getResource(ctx, "/BackupRestore/BackupPolicies/"+url.PathEscape(name), "6.4", policy)
}

// CreateBackupPolicy validates the policy before it is sent, so an invalid policy never reaches the cluster.
func (o *ServiceFabricApiClient) CreateBackupPolicy(ctx context.Context, policy servicefabric.BackupPolicyDescription) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	zap.L().Debug("Creating backup policy " + policy.Name)

	_, err := o.send(ctx, http.MethodPost, "/BackupRestore/BackupPolicies/$/Create", "6.4", policy)
	return err
}

func (o *ServiceFabricApiClient) DeleteBackupPolicy(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("backup policy name can not be empty")
	}

	zap.L().Debug("Deleting backup policy " + name)

	_, err := o.send(ctx, http.MethodPost, "/BackupRestore/BackupPolicies/"+url.PathEscape(name)+"/$/Delete", "6.4", nil)
	return err
}

func (o *ServiceFabricApiClient) GetChaos(ctx context.Context) (servicefabric.Chaos, error) {
	zap.L().Debug("Getting chaos status")

	body, err := o.send(ctx, http.MethodGet, "/Tools/Chaos", "6.2", nil)

	if err != nil {
		return servicefabric.Chaos{}, err
	}

	chaos := servicefabric.Chaos{}
	if err := o.unmarshal(&chaos, body); err != nil {
		return servicefabric.Chaos{}, err
	}

	return chaos, nil
}

func (o *ServiceFabricApiClient) StartChaos(ctx context.Context, parameters servicefabric.ChaosParameters) error {
	if err := parameters.Validate(); err != nil {
		return err
	}

	zap.L().Debug("Starting chaos")

	_, err := o.send(ctx, http.MethodPost, "/Tools/Chaos/$/Start", "6.0", parameters)
	return err
}

func (o *ServiceFabricApiClient) StopChaos(ctx context.Context) error {
	zap.L().Debug("Stopping chaos")

	_, err := o.send(ctx, http.MethodPost, "/Tools/Chaos/$/Stop", "6.0", nil)
	return err
}

func (o *ServiceFabricApiClient) GetChaosEvents(ctx context.Context, query ChaosEventsQuery) (servicefabric.ChaosEventsSegment, error) {
	zap.L().Debug("Getting chaos events")

	params := [][]string{{"ContinuationToken", query.ContinuationToken}}

	if query.ContinuationToken == "" {
		if query.StartTimeUtc != nil {
			params = append(params, []string{"StartTimeUtc", windowsFileTime(*query.StartTimeUtc)})
		}

		if query.EndTimeUtc != nil {
			params = append(params, []string{"EndTimeUtc", windowsFileTime(*query.EndTimeUtc)})
		}
	}

	if query.MaxResults > 0 {
		params = append(params, []string{"MaxResults", strconv.FormatInt(query.MaxResults, 10)})
	}

	body, err := o.send(ctx, http.MethodGet, "/Tools/Chaos/Events", "6.2", nil, params...)

	if err != nil {
		return servicefabric.ChaosEventsSegment{}, err
	}

	segment := servicefabric.ChaosEventsSegment{}
	if err := o.unmarshal(&segment, body); err != nil {
		return servicefabric.ChaosEventsSegment{}, err
	}

	return segment, nil
}

func (o *ServiceFabricApiClient) GetClusterEventList(ctx context.Context, startTimeUtc time.Time, endTimeUtc time.Time) ([]servicefabric.FabricEvent, error) {
	return o.getEventList(ctx, "/EventsStore/Cluster/Events", startTimeUtc, endTimeUtc)
}

func (o *ServiceFabricApiClient) GetNodesEventList(ctx context.Context, startTimeUtc time.Time, endTimeUtc time.Time) ([]servicefabric.FabricEvent, error) {
	return o.getEventList(ctx, "/EventsStore/Nodes/Events", startTimeUtc, endTimeUtc)
}

func (o *ServiceFabricApiClient) getEventList(ctx context.Context, path string, startTimeUtc time.Time, endTimeUtc time.Time) ([]servicefabric.FabricEvent, error) {
	if endTimeUtc.Before(startTimeUtc) {
		return nil, fmt.Errorf("the event window end %s is before the start %s", endTimeUtc, startTimeUtc)
	}

	zap.L().Debug("Getting events from " + path)

	body, err := o.send(ctx, http.MethodGet, path, "6.4", nil,
		[]string{"StartTimeUtc", startTimeUtc.UTC().Format(eventsStoreTimeFormat)},
		[]string{"EndTimeUtc", endTimeUtc.UTC().Format(eventsStoreTimeFormat)})

	if err != nil {
		return nil, err
	}

	return servicefabric.UnmarshalFabricEventList(body)
}

func (o *ServiceFabricApiClient) ProvisionApplicationType(ctx context.Context, description servicefabric.ProvisionApplicationTypeDescription) error {
	if description == nil {
		return errors.New("provision description can not be nil")
	}

	if err := description.Validate(); err != nil {
		return err
	}

	zap.L().Debug("Provisioning application type with " + string(description.ProvisionApplicationTypeKind()))

	_, err := o.send(ctx, http.MethodPost, "/ApplicationTypes/$/Provision", "6.2", description)
	return err
}

func (o *ServiceFabricApiClient) StartDataLoss(ctx context.Context, serviceId string, partitionId uuid.UUID, operationId uuid.UUID, mode servicefabric.DataLossMode) error {
	if operationId == uuid.Nil {
		return errors.New("operation id can not be empty")
	}

	if mode == servicefabric.DataLossModeInvalid || mode == "" {
		return errors.New("data loss mode must be PartialDataLoss or FullDataLoss")
	}

	path := "/Faults/Services/" + url.PathEscape(EntityId(serviceId)) + "/$/GetPartitions/" + partitionId.String() + "/$/StartDataLoss"
	zap.L().Debug("Starting data loss operation " + operationId.String() + " on " + path)

	_, err := o.send(ctx, http.MethodPost, path, "6.0", nil,
		[]string{"OperationId", operationId.String()},
		[]string{"DataLossMode", string(mode)})
	return err
}

// StartDataLossByName is StartDataLoss with an operation id derived from the service, partition, and
// name. Calling it again with the same values refers to the same operation.
func (o *ServiceFabricApiClient) StartDataLossByName(ctx context.Context, serviceId string, partitionId uuid.UUID, name string, mode servicefabric.DataLossMode) (uuid.UUID, error) {
	operationId := DataLossOperationId(serviceId, partitionId, name)
	return operationId, o.StartDataLoss(ctx, serviceId, partitionId, operationId, mode)
}

// DataLossOperationId returns the stable operation id used by StartDataLossByName.
func DataLossOperationId(serviceId string, partitionId uuid.UUID, name string) uuid.UUID {
	return hash.StableGuid(EntityId(serviceId) + "|" + partitionId.String() + "|" + name)
}

// windowsFileTime formats t as the number of 100ns intervals since 1601-01-01 UTC.
func windowsFileTime(t time.Time) string {
	return strconv.FormatInt(t.UTC().UnixNano()/100+windowsEpochOffset, 10)
}
