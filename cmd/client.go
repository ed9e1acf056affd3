// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/canonical/merchant-team-service/internal/http/types"
	"github.com/canonical/merchant-team-service/internal/types"
	"github.com/canonical/merchant-team-service/pkg/team"
)

// teamClient talks to the team API of a running service
type teamClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func newTeamClient(endpoint, token string) *teamClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &teamClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		token:    token,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

func (c *teamClient) Members(ctx context.Context) (*team.MemberList, error) {
	out := new(team.MemberList)
	return out, c.do(ctx, http.MethodGet, "/api/v0/team/members", nil, out)
}

func (c *teamClient) Member(ctx context.Context, id string) (*types.TeamMember, error) {
	out := new(types.TeamMember)
	return out, c.do(ctx, http.MethodGet, memberPath(id, ""), nil, out)
}

func (c *teamClient) Me(ctx context.Context) (*team.CurrentUser, error) {
	out := new(team.CurrentUser)
	return out, c.do(ctx, http.MethodGet, "/api/v0/team/me", nil, out)
}

func (c *teamClient) Invite(ctx context.Context, name, email string, role types.Role) (*types.TeamMember, error) {
	out := new(types.TeamMember)
	in := team.InviteMemberRequest{Name: name, Email: email, Role: string(role)}
	return out, c.do(ctx, http.MethodPost, "/api/v0/team/members", in, out)
}

func (c *teamClient) UpdateRole(ctx context.Context, id string, role types.Role) error {
	return c.do(ctx, http.MethodPatch, memberPath(id, "role"), team.UpdateRoleRequest{Role: string(role)}, nil)
}

func (c *teamClient) UpdateStatus(ctx context.Context, id string, status types.Status) error {
	return c.do(ctx, http.MethodPatch, memberPath(id, "status"), team.UpdateStatusRequest{Status: string(status)}, nil)
}

func (c *teamClient) Remove(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, memberPath(id, ""), nil, nil)
}

func (c *teamClient) ResendInvitation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, memberPath(id, "resend-invitation"), nil, nil)
}

func (c *teamClient) Refresh(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v0/team/refresh", nil, nil)
}

func (c *teamClient) Pending(ctx context.Context) ([]team.OperationKey, error) {
	var out []team.OperationKey
	return out, c.do(ctx, http.MethodGet, "/api/v0/team/pending", nil, &out)
}

// do unwraps the response envelope into out, error bodies become the returned error
func (c *teamClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		e := new(httptypes.ErrorResponse)
		if err := json.NewDecoder(resp.Body).Decode(e); err != nil || e.Message == "" {
			return fmt.Errorf("%s %s: %s", method, path, resp.Status)
		}
		return fmt.Errorf("%s %s: %s", method, path, e.Message)
	}

	if out == nil {
		return nil
	}

	envelope := httptypes.Response{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func memberPath(id, action string) string {
	p := "/api/v0/team/members/" + url.PathEscape(id)
	if action != "" {
		p += "/" + action
	}
	return p
}
