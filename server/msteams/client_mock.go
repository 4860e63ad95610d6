// Copyright (c) 2023-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

//go:build msteamsMock

package msteams

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"os"

	khttp "github.com/microsoft/kiota-http-go"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
)

// mockProxyAddress points both the token and the Graph traffic at a mock server, so the whole
// tool surface can be exercised without a tenant.
func mockProxyAddress() string {
	if addr := os.Getenv("MSTEAMS_MOCK_PROXY"); addr != "" {
		return addr
	}
	return "http://mockserver:1080"
}

func getAuthClient() *http.Client {
	proxyURL, _ := url.Parse(mockProxyAddress())
	return &http.Client{
		Transport: &http.Transport{
			Proxy:           http.ProxyURL(proxyURL),
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
		},
	}
}

func getHTTPClient(extra ...khttp.Middleware) *http.Client {
	proxyURL, _ := url.Parse(mockProxyAddress())

	defaultClientOptions := msgraphsdk.GetDefaultClientOptions()
	middleware := append(msgraphcore.GetDefaultMiddlewaresWithOptions(&defaultClientOptions), extra...)

	transport := khttp.NewCustomTransportWithParentTransport(&http.Transport{
		Proxy:           http.ProxyURL(proxyURL),
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
	}, middleware...)

	return &http.Client{Transport: transport}
}
