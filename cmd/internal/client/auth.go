package client

import (
	"context"
	"crypto/tls"
	"errors"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"time"
)

// Authorizer decorates an outgoing request with credentials.
type Authorizer interface {
	Authorize(ctx context.Context, req *http.Request) error
}

// NoAuthorizer is used for unsecured development clusters.
type NoAuthorizer struct {
}

func (a NoAuthorizer) Authorize(ctx context.Context, req *http.Request) error {
	return nil
}

// TokenAuthorizer adds an Entra ID bearer token to each request.
type TokenAuthorizer struct {
	Credential azcore.TokenCredential
	// Scope is usually the cluster application id followed by /.default
	Scope string
}

func (a TokenAuthorizer) Authorize(ctx context.Context, req *http.Request) error {
	if a.Credential == nil {
		return errors.New("token authorizer has no credential")
	}

	if strings.TrimSpace(a.Scope) == "" {
		return errors.New("token authorizer has no scope")
	}

	token, err := a.Credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{a.Scope},
	})

	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token.Token)
	return nil
}

// NewTokenAuthorizer builds a client secret credential when all the service principal details are
// supplied, and falls back to the default Azure credential chain otherwise.
func NewTokenAuthorizer(scope string, tenantId string, clientId string, clientSecret string) (*TokenAuthorizer, error) {
	if tenantId != "" && clientId != "" && clientSecret != "" {
		zap.L().Debug("Using client secret credential for tenant " + tenantId)

		cred, err := azidentity.NewClientSecretCredential(tenantId, clientId, clientSecret, nil)
		if err != nil {
			return nil, err
		}

		return &TokenAuthorizer{Credential: cred, Scope: scope}, nil
	}

	zap.L().Debug("Using the default Azure credential chain")

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}

	return &TokenAuthorizer{Credential: cred, Scope: scope}, nil
}

// NewHttpClient returns a client that presents the supplied certificate. An empty certFile returns a
// client without a client certificate.
func NewHttpClient(certFile string, keyFile string, insecure bool, timeout time.Duration) (*http.Client, error) {
	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecure,
	}

	if certFile != "" {
		if keyFile == "" {
			keyFile = certFile
		}

		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return nil, err
		}

		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
