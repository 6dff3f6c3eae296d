package missions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

// Fetcher defines the data source consumed by the application.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchMissions(ctx context.Context, query Query) (Result, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to a GraphQL endpoint exposing missionsResult.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	schema    *ast.Schema
	operation *ast.OperationDefinition
}

const (
	// DefaultEndpoint is the public SpaceX GraphQL API.
	DefaultEndpoint  = "https://spacex-production.up.railway.app/"
	defaultUserAgent = "missionboard/0.1"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 512
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			// Copy so a client passed to WithHTTPClient is left untouched.
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the given endpoint URL. The embedded query
// document is validated against the schema up front.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	schema, err := Schema()
	if err != nil {
		return nil, err
	}
	op, err := parseOperation(schema)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  u,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		schema:    schema,
		operation: op,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the resolved endpoint URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// GraphQLError carries the errors array of a GraphQL response.
type GraphQLError struct {
	Errors gqlerror.List
}

func (e *GraphQLError) Error() string {
	if len(e.Errors) == 0 {
		return "graphql: unknown error"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data   *missionsData `json:"data"`
	Errors gqlerror.List `json:"errors"`
}

type missionsData struct {
	MissionsResult *struct {
		Data   []*Mission `json:"data"`
		Result *struct {
			TotalCount *int `json:"totalCount"`
		} `json:"result"`
	} `json:"missionsResult"`
}

// FetchMissions runs MissionsQuery with the given variables.
func (c *Client) FetchMissions(ctx context.Context, query Query) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	if err := ValidateFind(query.Find); err != nil {
		return Result{}, err
	}
	vars := query.Variables()
	if _, err := validator.VariableValues(c.schema, c.operation, vars); err != nil {
		return Result{}, fmt.Errorf("validate variables: %w", err)
	}

	body, err := json.Marshal(graphQLRequest{
		Query:         QueryDocument,
		OperationName: OperationName,
		Variables:     vars,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	var payload graphQLResponse
	if err := c.post(ctx, body, &payload); err != nil {
		return Result{}, err
	}
	if len(payload.Errors) > 0 {
		return Result{}, &GraphQLError{Errors: payload.Errors}
	}
	return payload.result(), nil
}

func (r graphQLResponse) result() Result {
	if r.Data == nil || r.Data.MissionsResult == nil {
		return Result{}
	}
	mr := r.Data.MissionsResult
	out := Result{Data: make([]Mission, 0, len(mr.Data))}
	for _, m := range mr.Data {
		if m == nil {
			continue
		}
		out.Data = append(out.Data, *m)
	}
	out.TotalCount = len(out.Data)
	if mr.Result != nil && mr.Result.TotalCount != nil {
		out.TotalCount = *mr.Result.TotalCount
	}
	return out
}

func (c *Client) post(ctx context.Context, body []byte, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		// GraphQL servers often answer validation failures with 400 and an errors body.
		var payload graphQLResponse
		if json.Unmarshal(snippet, &payload) == nil && len(payload.Errors) > 0 {
			return &GraphQLError{Errors: payload.Errors}
		}
		return fmt.Errorf("graphql endpoint returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
