// Package submit sends crash reports to a collector speaking JSON-RPC 2.0
// over HTTP or WebSocket.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"time"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/jhttp"
	"github.com/google/uuid"

	"github.com/ascendara/crashreporter/common"
	"github.com/ascendara/crashreporter/pkg/crash"
)

var (
	ErrNoEndpoint         = errors.New("no collector endpoint configured")
	ErrUnsupportedScheme  = errors.New("unsupported endpoint scheme")
	ErrInvalidEndpointURL = errors.New("invalid endpoint URL")
)

// Options describes the collector a Client talks to.
type Options struct {
	Endpoint string // http(s):// or ws(s):// collector URL
	Token    string // optional bearer token
	Proxy    string // optional http, https or socks5 proxy URL
	Version  string // reporter version sent with each report
}

// Client submits reports to a single collector endpoint. It holds no
// connection between calls.
type Client struct {
	endpoint *url.URL
	token    string
	version  string
	http     *http.Client
	newID    func() string
}

// New validates opts and prepares a client.
func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	u, err := url.Parse(opts.Endpoint)
	if err != nil || u.Host == "" {
		return nil, ErrInvalidEndpointURL
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedScheme, u.Scheme)
	}
	hc, err := newHTTPClient(opts.Proxy)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: u,
		token:    opts.Token,
		version:  opts.Version,
		http:     hc,
		newID:    uuid.NewString,
	}, nil
}

// Submit delivers rec and returns the collector's receipt. ctx bounds the
// whole exchange, including the connection setup.
func (c *Client) Submit(ctx context.Context, rec crash.Record) (string, error) {
	report, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	params := common.SubmitParams{
		SubmissionId: c.newID(),
		Version:      c.version,
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		Severity:     rec.Severity().String(),
		Report:       report,
	}

	ch, err := c.dial(ctx)
	if err != nil {
		return "", err
	}
	cli := jrpc2.NewClient(ch, nil)
	defer cli.Close()

	var res common.SubmitResult
	if err := cli.CallResult(ctx, common.SubmitMethod, params, &res); err != nil {
		return "", fmt.Errorf("%s: %w", common.SubmitMethod, err)
	}
	return res.Receipt, nil
}

func (c *Client) dial(ctx context.Context) (channel.Channel, error) {
	switch c.endpoint.Scheme {
	case "ws", "wss":
		h := http.Header{}
		if c.token != "" {
			h.Set("Authorization", "Bearer "+c.token)
		}
		conn, _, err := cws.Dial(ctx, c.endpoint.String(), &cws.DialOptions{
			HTTPClient: c.http,
			HTTPHeader: h,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to collector: %w", err)
		}
		return &wsChannel{conn: conn, ctx: ctx}, nil
	default:
		// jhttp posts without a context, so carry the deadline on the client
		hc := c.http
		if d, ok := ctx.Deadline(); ok {
			cp := *c.http
			cp.Timeout = time.Until(d)
			hc = &cp
		}
		return jhttp.NewChannel(c.endpoint.String(), &jhttp.ChannelOptions{
			Client: &bearerClient{client: hc, token: c.token},
		}), nil
	}
}
