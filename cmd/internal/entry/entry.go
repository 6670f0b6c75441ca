package entry

import (
	"context"
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/client"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/hash"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"strings"
	"sync"
	"time"
)

// ManifestFileName is the document listing every other document and its checksum.
const ManifestFileName = "index.json"

// Entry takes the arguments, runs the queries against the cluster, and returns the JSON documents mapped to file names.
func Entry(parseArgs args.Arguments) (map[string]string, error) {
	sfClient, err := BuildClient(parseArgs)

	if err != nil {
		return nil, err
	}

	return RunQueries(context.Background(), sfClient, parseArgs.GetQueries(), parseArgs.EventWindow, time.Now().UTC())
}

// BuildClient creates a client using certificate, token, or no authentication depending on the arguments.
func BuildClient(parseArgs args.Arguments) (*client.ServiceFabricApiClient, error) {
	httpClient, err := client.NewHttpClient(parseArgs.CertFile, parseArgs.KeyFile, parseArgs.Insecure, parseArgs.RequestTimeout)

	if err != nil {
		return nil, err
	}

	var authorizer client.Authorizer = client.NoAuthorizer{}
	if parseArgs.UseTokenAuth() {
		tokenAuthorizer, err := client.NewTokenAuthorizer(parseArgs.AadScope, parseArgs.AadTenantId, parseArgs.AadClientId, parseArgs.AadClientSecret)

		if err != nil {
			return nil, err
		}

		authorizer = tokenAuthorizer
	}

	return &client.ServiceFabricApiClient{
		Url:           parseArgs.Url,
		HttpClient:    httpClient,
		Authorizer:    authorizer,
		RetryAttempts: parseArgs.RetryAttempts,
		RetryDelay:    parseArgs.RetryDelay,
	}, nil
}

// RunQueries runs each query concurrently. The first failure cancels the remaining queries.
func RunQueries(ctx context.Context, sfClient client.ServiceFabricClient, queryNames []string, eventWindow time.Duration, now time.Time) (map[string]string, error) {
	zap.L().Info("Querying the cluster for " + strings.Join(queryNames, ", "))
	defer zap.L().Info("Done querying the cluster")

	window := EventWindow{Start: now.Add(-eventWindow), End: now}

	selected := make([]query, 0, len(queryNames))
	for _, name := range queryNames {
		q, err := lookupQuery(name)

		if err != nil {
			return nil, err
		}

		selected = append(selected, q)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	var fileMap sync.Map

	for _, q := range selected {
		q := q
		group.Go(func() error {
			zap.L().Debug("Running query " + q.Name)

			result, err := q.Run(groupCtx, sfClient, window)

			if err != nil {
				return err
			}

			document, err := json.MarshalIndent(result, "", "  ")

			if err != nil {
				return err
			}

			fileMap.Store(q.FileName, string(document))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := map[string]string{}
	fileMap.Range(func(key, value interface{}) bool {
		result[key.(string)] = value.(string)
		return true
	})

	manifest, err := buildManifest(result, now)

	if err != nil {
		return nil, err
	}

	result[ManifestFileName] = manifest

	return result, nil
}

type manifestEntry struct {
	FileName string `json:"fileName"`
	Sha256   string `json:"sha256"`
}

type manifest struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Documents   []manifestEntry `json:"documents"`
}

func buildManifest(documents map[string]string, now time.Time) (string, error) {
	fileNames := maps.Keys(documents)
	slices.Sort(fileNames)

	entries := []manifestEntry{}
	for _, fileName := range fileNames {
		entries = append(entries, manifestEntry{
			FileName: fileName,
			Sha256:   hash.Sha256Hash(documents[fileName]),
		})
	}

	body, err := json.MarshalIndent(manifest{GeneratedAt: now, Documents: entries}, "", "  ")

	if err != nil {
		return "", err
	}

	return string(body), nil
}
