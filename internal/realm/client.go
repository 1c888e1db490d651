package realm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"realmctl/pkg/logging"
)

const clientTimeout = 30 * time.Second

// Params carries the connection parameters for one region's API endpoint.
type Params struct {
	APIURL    string
	Namespace string
	Locale    string
	Token     string
}

// Client issues read-only, bearer-authenticated requests against one
// region's connected-realm endpoints.
type Client struct {
	params Params
	httpc  *http.Client
}

// NewClient returns a Client for the given connection parameters.
func NewClient(p Params) *Client {
	return &Client{
		params: p,
		httpc:  &http.Client{Timeout: clientTimeout},
	}
}

type indexResponse struct {
	ConnectedRealms []struct {
		Href string `json:"href"`
	} `json:"connected_realms"`
}

type clusterResponse struct {
	Status *struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"status"`
	Population *struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"population"`
	HasQueue bool `json:"has_queue"`
	Realms   *[]struct {
		Name string `json:"name"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"realms"`
}

// FetchIndex resolves the full set of cluster ids for the region. It fails
// with ErrMissingCredential before any network call when no token is set,
// with a TransportError on a non-2xx response, and with ErrEmptyIndex when
// no usable entry is present. Entries with malformed hrefs are dropped, not
// fatal.
func (c *Client) FetchIndex(ctx context.Context) ([]ClusterID, error) {
	if c.params.Token == "" {
		return nil, ErrMissingCredential
	}

	var index indexResponse
	if err := c.get(ctx, "/data/wow/connected-realm/index", &index); err != nil {
		return nil, err
	}

	ids := make([]ClusterID, 0, len(index.ConnectedRealms))
	for _, entry := range index.ConnectedRealms {
		id := ClusterIDFromHref(entry.Href)
		if id == "" {
			logging.Warn("realm", "dropping index entry with malformed href %q", entry.Href)
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrEmptyIndex
	}
	return ids, nil
}

// FetchCluster retrieves one cluster's detailed status. It fails with a
// TransportError on a non-2xx response and with a MalformedPayloadError when
// a required field is absent from the body.
func (c *Client) FetchCluster(ctx context.Context, id ClusterID) (ClusterStatus, error) {
	if c.params.Token == "" {
		return ClusterStatus{}, ErrMissingCredential
	}

	var detail clusterResponse
	if err := c.get(ctx, "/data/wow/connected-realm/"+string(id), &detail); err != nil {
		return ClusterStatus{}, err
	}

	switch {
	case detail.Status == nil || detail.Status.Type == "":
		return ClusterStatus{}, &MalformedPayloadError{Field: "status.type"}
	case detail.Population == nil || detail.Population.Type == "":
		return ClusterStatus{}, &MalformedPayloadError{Field: "population.type"}
	case detail.Realms == nil:
		return ClusterStatus{}, &MalformedPayloadError{Field: "realms"}
	}

	cs := ClusterStatus{
		ID:             id,
		Status:         StatusType(detail.Status.Type),
		StatusName:     detail.Status.Name,
		Population:     PopulationType(detail.Population.Type),
		PopulationName: detail.Population.Name,
		HasQueue:       detail.HasQueue,
		Members:        make([]RealmMember, 0, len(*detail.Realms)),
	}
	for _, r := range *detail.Realms {
		cs.Members = append(cs.Members, RealmMember{Name: r.Name, Type: r.Type.Name})
	}
	return cs, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	q := url.Values{}
	q.Set("namespace", c.params.Namespace)
	q.Set("locale", c.params.Locale)
	reqURL := c.params.APIURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.params.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedPayloadError{Field: "body"}
	}
	return nil
}
