package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"delivery-profile-assigner/internal/adapters/shopify/dto"
	"delivery-profile-assigner/internal/config"
	"delivery-profile-assigner/internal/logging"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type Client struct {
	config     config.ShopifyConfig
	httpClient *http.Client
	logger     logging.LoggerService
}

func NewClient(config config.ShopifyConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) endpoint() (string, error) {
	domain := strings.TrimSpace(c.config.ShopDomain)
	if domain == "" {
		return "", errors.New("shopify shop domain is empty")
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	domain = strings.TrimRight(domain, "/")
	if c.config.APIVer == "" {
		return "", errors.New("shopify api version is empty")
	}
	return domain + "/admin/api/" + c.config.APIVer + "/graphql.json", nil
}

func (c *Client) shopifyAPIRequest(ctx context.Context, method string, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newHTTPStatusError(resp.StatusCode, resp.Status, resp.Header, respBody)
	}

	return respBody, nil
}

// graphqlRequest posts one document and decodes its data into out.
// Top-level GraphQL errors are logged and returned as *GraphQLErrorsError.
// Only transport failures and throttling are retried, and only when
// MaxRetries is set.
func (c *Client) graphqlRequest(ctx context.Context, query string, variables map[string]any, out any) error {
	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	bodyBytes, err := json.Marshal(graphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	})
	if err != nil {
		return err
	}

	maxRetries := c.config.MaxRetries
	for attempt := 0; ; attempt++ {
		raw, err := c.shopifyAPIRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
		if err != nil {
			if attempt < maxRetries && isRetryableHTTPError(err) {
				c.logWarning(fmt.Sprintf("shopify request retry attempt=%d: %v", attempt+1, err))
				if sleepErr := sleepWithContext(ctx, retryDelay(attempt, err)); sleepErr != nil {
					return sleepErr
				}
				continue
			}
			c.logDiagnostic("shopify graphql request failed", err)
			return err
		}

		var resp dto.GraphQLResponse[json.RawMessage]
		if err := json.Unmarshal(raw, &resp); err != nil {
			c.logDiagnostic("shopify graphql response unmarshal failed", err)
			return fmt.Errorf("shopify graphql response: %w", err)
		}
		if len(resp.Errors) > 0 {
			if attempt < maxRetries && isThrottleGraphQLError(resp.Errors) {
				c.logWarning(fmt.Sprintf("shopify throttled, retry attempt=%d", attempt+1))
				if err := sleepWithContext(ctx, retryDelay(attempt, nil)); err != nil {
					return err
				}
				continue
			}
			err := &GraphQLErrorsError{Errors: resp.Errors}
			c.logDiagnostic("shopify graphql response errors", err)
			return err
		}
		if out == nil {
			return nil
		}
		if len(resp.Data) == 0 || string(resp.Data) == "null" {
			return errors.New("shopify graphql response missing data")
		}
		if err := json.Unmarshal(resp.Data, out); err != nil {
			c.logDiagnostic("shopify graphql data unmarshal failed", err)
			return fmt.Errorf("shopify graphql data: %w", err)
		}
		return nil
	}
}

func (c *Client) logInfo(message string) {
	if c == nil || c.logger == nil || strings.TrimSpace(message) == "" {
		return
	}
	c.logger.Log(message)
}

func (c *Client) logWarning(message string) {
	if c == nil || c.logger == nil || strings.TrimSpace(message) == "" {
		return
	}
	c.logger.LogWarning(message)
}

func (c *Client) logDiagnostic(message string, err error) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.LogDiagnostic(message, err)
}
