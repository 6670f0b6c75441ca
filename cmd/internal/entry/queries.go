package entry

import (
	"context"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/client"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/collections"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/model/servicefabric"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/sliceutil"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"k8s.io/utils/ptr"
	"strings"
	"sync"
	"time"
)

// EventWindow bounds the event and chaos history queries.
type EventWindow struct {
	Start time.Time
	End   time.Time
}

type query struct {
	Name     string
	FileName string
	Run      func(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error)
}

var queries = []query{
	{Name: args.QueryClusterHealth, FileName: "cluster_health.json", Run: getClusterHealth},
	{Name: args.QueryNodes, FileName: "nodes.json", Run: getNodes},
	{Name: args.QueryApplications, FileName: "applications.json", Run: getApplications},
	{Name: args.QueryServices, FileName: "services.json", Run: getServices},
	{Name: args.QueryPartitions, FileName: "partitions.json", Run: getPartitions},
	{Name: args.QueryBackupPolicies, FileName: "backup_policies.json", Run: getBackupPolicies},
	{Name: args.QueryChaos, FileName: "chaos.json", Run: getChaos},
	{Name: args.QueryChaosEvents, FileName: "chaos_events.json", Run: getChaosEvents},
	{Name: args.QueryClusterEvents, FileName: "cluster_events.json", Run: getClusterEvents},
	{Name: args.QueryNodeEvents, FileName: "node_events.json", Run: getNodeEvents},
}

func lookupQuery(name string) (query, error) {
	q, ok := lo.Find(queries, func(item query) bool {
		return item.Name == name
	})

	if !ok {
		return query{}, errors.New("unknown query " + name)
	}

	return q, nil
}

// ApplicationServices groups the services of one application.
type ApplicationServices struct {
	ApplicationName string                      `json:"ApplicationName"`
	Services        []servicefabric.ServiceInfo `json:"Services"`
}

// ServicePartitions groups the partitions of one service.
type ServicePartitions struct {
	ServiceName string                               `json:"ServiceName"`
	Partitions  []servicefabric.ServicePartitionInfo `json:"Partitions"`
}

func getClusterHealth(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return sfClient.GetClusterHealth(ctx)
}

func getNodes(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return client.CollectAll[servicefabric.NodeInfo](ctx, sfClient.GetNodeInfoList)
}

func getApplications(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return client.CollectAll[servicefabric.ApplicationInfo](ctx, sfClient.GetApplicationInfoList)
}

func getBackupPolicies(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return client.CollectAll[servicefabric.BackupPolicyDescription](ctx, sfClient.GetBackupPolicyList)
}

func getChaos(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return sfClient.GetChaos(ctx)
}

func getClusterEvents(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return sfClient.GetClusterEventList(ctx, window.Start, window.End)
}

func getNodeEvents(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return sfClient.GetNodesEventList(ctx, window.Start, window.End)
}

// getChaosEvents reads every segment of the chaos report within the window. Segments are exposed as
// pages so the generic pager can follow the continuation tokens.
func getChaosEvents(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return client.CollectAll(ctx, func(ctx context.Context, continuationToken string) (servicefabric.PagedList[servicefabric.ChaosEventWrapper], error) {
		segment, err := sfClient.GetChaosEvents(ctx, client.ChaosEventsQuery{
			ContinuationToken: continuationToken,
			StartTimeUtc:      ptr.To(window.Start),
			EndTimeUtc:        ptr.To(window.End),
		})

		if err != nil {
			return servicefabric.PagedList[servicefabric.ChaosEventWrapper]{}, err
		}

		return servicefabric.PagedList[servicefabric.ChaosEventWrapper]{
			ContinuationToken: segment.ContinuationToken,
			Items:             segment.History,
		}, nil
	})
}

func getServices(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	return collectServices(ctx, sfClient)
}

// collectServices lists the services of every application, one goroutine per application.
func collectServices(ctx context.Context, sfClient client.ServiceFabricClient) ([]ApplicationServices, error) {
	applications, err := client.CollectAll[servicefabric.ApplicationInfo](ctx, sfClient.GetApplicationInfoList)

	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	results := collections.SafeSlice[ApplicationServices]{}
	queryErrors := collections.SafeErrorSlice{}

	for _, a := range applications {
		if a.Id == nil {
			continue
		}

		wg.Add(1)

		application := a
		go func() {
			defer wg.Done()

			services, err := client.CollectAll(ctx, func(ctx context.Context, continuationToken string) (servicefabric.PagedList[servicefabric.ServiceInfo], error) {
				return sfClient.GetServiceInfoList(ctx, *application.Id, continuationToken)
			})

			if err != nil {
				queryErrors.Append(err)
				return
			}

			results.Append(ApplicationServices{
				ApplicationName: lo.FromPtrOr(application.Name, client.EntityName(*application.Id)),
				Services:        services,
			})
		}()
	}

	wg.Wait()

	if err := queryErrors.Join(); err != nil {
		return nil, err
	}

	return sortByName(results.GetCopy(), func(item ApplicationServices) string {
		return item.ApplicationName
	}), nil
}

func getPartitions(ctx context.Context, sfClient client.ServiceFabricClient, window EventWindow) (any, error) {
	applications, err := collectServices(ctx, sfClient)

	if err != nil {
		return nil, err
	}

	services := lo.FlatMap(applications, func(item ApplicationServices, index int) []servicefabric.ServiceInfo {
		return item.Services
	})

	var wg sync.WaitGroup
	results := collections.SafeSlice[ServicePartitions]{}
	queryErrors := collections.SafeErrorSlice{}

	for _, s := range services {
		serviceId := lo.FromPtr(s.GetId())
		if serviceId == "" {
			continue
		}

		wg.Add(1)

		service := s
		go func() {
			defer wg.Done()

			partitions, err := client.CollectAll(ctx, func(ctx context.Context, continuationToken string) (servicefabric.PagedList[servicefabric.ServicePartitionInfo], error) {
				return sfClient.GetPartitionInfoList(ctx, serviceId, continuationToken)
			})

			if err != nil {
				queryErrors.Append(err)
				return
			}

			zap.L().Debug("Found " + lo.FromPtr(service.GetName()) + " with partitions " + partitionIdList(partitions))

			results.Append(ServicePartitions{
				ServiceName: lo.FromPtrOr(service.GetName(), client.EntityName(serviceId)),
				Partitions:  partitions,
			})
		}()
	}

	wg.Wait()

	if err := queryErrors.Join(); err != nil {
		return nil, err
	}

	return sortByName(results.GetCopy(), func(item ServicePartitions) string {
		return item.ServiceName
	}), nil
}

func sortByName[T any](items []T, name func(item T) string) []T {
	return sliceutil.SortByKey(items, name)
}

func partitionIdList(partitions []servicefabric.ServicePartitionInfo) string {
	return strings.Join(lo.Map(partitions, func(item servicefabric.ServicePartitionInfo, index int) string {
		return servicefabric.PartitionId(item).String()
	}), ", ")
}
