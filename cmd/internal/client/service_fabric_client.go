package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 1 * time.Second
)

// ServiceFabricApiClient talks to the cluster management endpoint, e.g. https://mycluster:19080.
// The zero value plus a Url is usable against an unsecured cluster.
type ServiceFabricApiClient struct {
	Url        string
	HttpClient *http.Client
	Authorizer Authorizer
	// RetryAttempts is the number of times a transient failure is attempted. Zero means the default of 3.
	RetryAttempts uint
	// RetryDelay is the base delay between attempts. Zero means the default of one second.
	RetryDelay time.Duration
	// cache is a map of resource types to a map of ids with the response body
	cache   map[string]map[string][]byte
	cacheMu sync.Mutex
}

func (o *ServiceFabricApiClient) httpClient() *http.Client {
	if o.HttpClient == nil {
		return http.DefaultClient
	}

	return o.HttpClient
}

func (o *ServiceFabricApiClient) retryAttempts() uint {
	if o.RetryAttempts == 0 {
		return defaultRetryAttempts
	}

	return o.RetryAttempts
}

func (o *ServiceFabricApiClient) retryDelay() time.Duration {
	if o.RetryDelay == 0 {
		return defaultRetryDelay
	}

	return o.RetryDelay
}

// buildUrl joins the path to the cluster url and adds the api version and any query params. Each
// query param is a one or two element slice of name and value.
func (o *ServiceFabricApiClient) buildUrl(path string, apiVersion string, queryParams ...[]string) (string, error) {
	if strings.TrimSpace(o.Url) == "" {
		return "", errors.New("the cluster url can not be empty")
	}

	requestURL, err := url.Parse(strings.TrimSuffix(o.Url, "/") + path)

	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Add("api-version", apiVersion)
	for _, q := range queryParams {
		if len(q) == 1 {
			params.Add(q[0], "")
		}

		if len(q) == 2 && q[1] != "" {
			params.Add(q[0], q[1])
		}
	}

	requestURL.RawQuery = params.Encode()

	return requestURL.String(), nil
}

// send issues the request, retrying transient failures, and returns the response body.
func (o *ServiceFabricApiClient) send(ctx context.Context, method string, path string, apiVersion string, payload any, queryParams ...[]string) ([]byte, error) {
	requestURL, err := o.buildUrl(path, apiVersion, queryParams...)

	if err != nil {
		return nil, err
	}

	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)

		if err != nil {
			return nil, err
		}
	}

	return retry.DoWithData(func() ([]byte, error) {
		return o.sendOnce(ctx, method, requestURL, body)
	},
		retry.Context(ctx),
		retry.Attempts(o.retryAttempts()),
		retry.Delay(o.retryDelay()),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			zap.L().Debug("Retrying " + method + " " + requestURL + " after error: " + err.Error())
		}))
}

func (o *ServiceFabricApiClient) sendOnce(ctx context.Context, method string, requestURL string, body []byte) (responseBody []byte, funcErr error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)

	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if o.Authorizer != nil {
		if err := o.Authorizer.Authorize(ctx, req); err != nil {
			return nil, retry.Unrecoverable(err)
		}
	}

	res, err := o.httpClient().Do(req)

	if err != nil {
		if ctx.Err() != nil {
			return nil, retry.Unrecoverable(err)
		}

		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			funcErr = errors.Join(funcErr, err)
		}
	}(res.Body)

	responseBody, err = io.ReadAll(res.Body)

	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		fabricErr := newFabricError(res.StatusCode, responseBody)

		if fabricErr.Transient() {
			return nil, fabricErr
		}

		return nil, retry.Unrecoverable(fabricErr)
	}

	return responseBody, nil
}

// getResource reads a single entity into resources. A 404 returns false with no error.
func (o *ServiceFabricApiClient) getResource(ctx context.Context, path string, apiVersion string, resources any, queryParams ...[]string) (exists bool, funcErr error) {
	zap.L().Debug("Getting " + path)

	body, err := o.send(ctx, http.MethodGet, path, apiVersion, nil, queryParams...)

	if IsNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err := o.unmarshal(resources, body); err != nil {
		return false, err
	}

	return true, nil
}

// getCachedResourceById is getResource for entities that are looked up repeatedly by id.
func (o *ServiceFabricApiClient) getCachedResourceById(ctx context.Context, resourceType string, id string, path string, apiVersion string, resources any) (bool, error) {
	cacheHit := o.readCache(resourceType, id)
	if cacheHit != nil {
		zap.L().Debug("Cache hit on " + resourceType + " " + id)

		if err := o.unmarshal(resources, cacheHit); err != nil {
			return false, err
		}

		return true, nil
	}

	zap.L().Debug("Getting " + resourceType + " " + id)

	body, err := o.send(ctx, http.MethodGet, path, apiVersion, nil)

	if IsNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err := o.unmarshal(resources, body); err != nil {
		return false, err
	}

	o.cacheResult(resourceType, id, body)

	return true, nil
}

func (o *ServiceFabricApiClient) readCache(resourceType string, id string) []byte {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()

	if val, ok := o.cache[resourceType]; ok {
		if val, ok := val[id]; ok {
			return val
		}
	}

	return nil
}

func (o *ServiceFabricApiClient) cacheResult(resourceType string, id string, body []byte) {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()

	if o.cache == nil {
		o.cache = map[string]map[string][]byte{}
	}

	if _, ok := o.cache[resourceType]; !ok {
		o.cache[resourceType] = map[string][]byte{}
	}

	o.cache[resourceType][id] = body
}

func (o *ServiceFabricApiClient) unmarshal(resources any, body []byte) error {
	err := json.Unmarshal(body, resources)

	if err != nil {
		zap.L().Error(string(body))
		return err
	}

	return nil
}
