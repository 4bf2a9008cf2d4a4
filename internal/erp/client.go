// Package erp is the read-only client for the upstream ERP HR API. The ERP is
// the system of record; this application only fetches and displays its data.
package erp

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
)

const (
	loginMethod          = "/api/method/login"
	employeesMethod      = "/api/method/hrms.api.employee.get_all_employees"
	leaveDashboardMethod = "/api/method/hrms.api.leave_dashboard.get_leave_dashboard"
	workHoursMethod      = "/api/method/hrms.api.employee_checkin.get_employee_work_hours"
)

// loggedInMessage is the ERP's literal session-login success reply.
const loggedInMessage = "Logged In"

// Client talks to one ERP instance. Report fetches authenticate with the
// static API key/secret pair; Login uses the caller's credentials.
type Client struct {
	baseURL string
	key     string
	secret  string
	http    *http.Client
}

// New builds a client for baseURL. A zero timeout leaves the underlying
// http.Client without one, matching the upstream's own behavior.
func New(baseURL, key, secret string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		secret:  secret,
		http:    &http.Client{Timeout: timeout},
	}
}

// LoginResult is the ERP session-login outcome. Body is relayed verbatim to
// the browser so the passthrough contract holds for failures too.
type LoginResult struct {
	LoggedIn bool
	Status   int
	Body     []byte
}

// Login proxies a credential pair to the ERP session login. The call itself
// failing is an error; a rejected credential pair is a non-LoggedIn result.
func (c *Client) Login(ctx context.Context, usr, pwd string) (*LoginResult, error) {
	payload, err := json.Marshal(map[string]string{"usr": usr, "pwd": pwd})
	if err != nil {
		return nil, fmt.Errorf("encode login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginMethod, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erp login: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read login response: %w", err)
	}

	var envelope struct {
		Message string `json:"message"`
	}
	// A non-JSON body is simply not a success; relay it as-is.
	_ = json.Unmarshal(body, &envelope)

	return &LoginResult{
		LoggedIn: envelope.Message == loggedInMessage,
		Status:   res.StatusCode,
		Body:     body,
	}, nil
}

// fetchMessage GETs an API method and decodes the payload nested under the
// ERP's `message` envelope field into out. A missing `message` leaves out at
// its zero value: malformed shapes read as empty results, not hard failures.
func (c *Client) fetchMessage(ctx context.Context, method string, params url.Values, out any) error {
	endpoint := c.baseURL + method
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", method, err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("token %s:%s", c.key, c.secret))

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erp fetch %s: %w", method, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("erp fetch %s: HTTP %d", method, res.StatusCode)
	}

	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if len(envelope.Message) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Message, out); err != nil {
		return fmt.Errorf("decode %s message: %w", method, err)
	}
	return nil
}

// Employees fetches the full employee listing.
func (c *Client) Employees(ctx context.Context, out any) error {
	return c.fetchMessage(ctx, employeesMethod, nil, out)
}

// LeaveDashboard fetches the combined leave-balances / on-leave payload.
func (c *Client) LeaveDashboard(ctx context.Context, out any) error {
	return c.fetchMessage(ctx, leaveDashboardMethod, nil, out)
}

// WorkHours fetches per-day attendance for a single date.
func (c *Client) WorkHours(ctx context.Context, date string, out any) error {
	params := url.Values{"date_str": {date}}
	return c.fetchMessage(ctx, workHoursMethod, params, out)
}

// WorkHoursRange fetches per-day attendance rows covering [start, end].
func (c *Client) WorkHoursRange(ctx context.Context, start, end string, out any) error {
	params := url.Values{"start_date": {start}, "end_date": {end}}
	return c.fetchMessage(ctx, workHoursMethod, params, out)
}
