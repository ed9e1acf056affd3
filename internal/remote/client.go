// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
	"github.com/canonical/merchant-team-service/pkg/team"
)

const maxErrorBody = 64 << 10

var _ team.RemoteInterface = (*Client)(nil)

// Client talks JSON over HTTP with the remote authority owning team membership
type Client struct {
	baseURL string
	client  *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type inviteRequest struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  types.Role `json:"role"`
}

type roleRequest struct {
	Role types.Role `json:"role"`
}

type statusRequest struct {
	Status types.Status `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) FetchMembers(ctx context.Context) (*types.MembersPage, error) {
	ctx, span := c.tracer.Start(ctx, "remote.Client.FetchMembers")
	defer span.End()

	page := new(types.MembersPage)
	if err := c.do(ctx, http.MethodGet, "/team/members", nil, page); err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}

	return page, nil
}

func (c *Client) FetchCurrentUserPermissions(ctx context.Context) (*types.PermissionGrant, error) {
	ctx, span := c.tracer.Start(ctx, "remote.Client.FetchCurrentUserPermissions")
	defer span.End()

	grant := new(types.PermissionGrant)
	if err := c.do(ctx, http.MethodGet, "/team/permissions", nil, grant); err != nil {
		return nil, fmt.Errorf("failed to fetch permissions: %w", err)
	}

	return grant, nil
}

func (c *Client) InviteMember(ctx context.Context, name, email string, role types.Role) error {
	ctx, span := c.tracer.Start(ctx, "remote.Client.InviteMember")
	defer span.End()

	body := inviteRequest{Name: name, Email: email, Role: role}
	if err := c.do(ctx, http.MethodPost, "/team/members/invite", body, nil); err != nil {
		return fmt.Errorf("failed to invite %s: %w", email, err)
	}

	return nil
}

// UpdateMemberRole returns the grant of the updated member, nil when the authority sends none
func (c *Client) UpdateMemberRole(ctx context.Context, id string, role types.Role) (*types.PermissionGrant, error) {
	ctx, span := c.tracer.Start(ctx, "remote.Client.UpdateMemberRole")
	defer span.End()

	grant := new(types.PermissionGrant)
	if err := c.do(ctx, http.MethodPatch, memberPath(id, "role"), roleRequest{Role: role}, grant); err != nil {
		return nil, fmt.Errorf("failed to update role of %s: %w", id, err)
	}

	if grant.Role == "" {
		return nil, nil
	}

	return grant, nil
}

func (c *Client) UpdateMemberStatus(ctx context.Context, id string, status types.Status) error {
	ctx, span := c.tracer.Start(ctx, "remote.Client.UpdateMemberStatus")
	defer span.End()

	if err := c.do(ctx, http.MethodPatch, memberPath(id, "status"), statusRequest{Status: status}, nil); err != nil {
		return fmt.Errorf("failed to update status of %s: %w", id, err)
	}

	return nil
}

func (c *Client) RemoveMember(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "remote.Client.RemoveMember")
	defer span.End()

	if err := c.do(ctx, http.MethodDelete, memberPath(id, ""), nil, nil); err != nil {
		return fmt.Errorf("failed to remove %s: %w", id, err)
	}

	return nil
}

func (c *Client) ResendInvitation(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "remote.Client.ResendInvitation")
	defer span.End()

	if err := c.do(ctx, http.MethodPost, memberPath(id, "resend-invitation"), nil, nil); err != nil {
		return fmt.Errorf("failed to resend invitation to %s: %w", id, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.available(false)
		c.logger.Errorf("%s %s failed: %v", method, path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.apiError(resp)

		// a refusal still means the authority is reachable
		c.available(!apiErr.Temporary())
		if apiErr.Temporary() {
			c.logger.Warnf("%s %s: %v", method, path, apiErr)
		} else {
			c.logger.Debugf("%s %s: %v", method, path, apiErr)
		}

		return apiErr
	}

	c.available(true)

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// acknowledgements may come without a body
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *Client) apiError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		c.logger.Debugf("failed to read error body: %v", err)
	}

	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		apiErr.Message = eb.Message
		if apiErr.Message == "" {
			apiErr.Message = eb.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func (c *Client) available(ok bool) {
	v := 0.0
	if ok {
		v = 1.0
	}
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "remote_api"}, v); err != nil {
		c.logger.Debugf("error setting dependency availability metric: %s", err)
	}
}

func memberPath(id, action string) string {
	p := "/team/members/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}

func NewClient(baseURL string, client *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.baseURL = strings.TrimSuffix(baseURL, "/")
	c.client = client
	if c.client == nil {
		c.client = http.DefaultClient
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
