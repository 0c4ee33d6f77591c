package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"

	"github.com/dive-sc/sinan-godata-app/conf"
	"github.com/dive-sc/sinan-godata-app/log"
	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
)

// APIClient is the slice of the Go.Data API the pipeline consumes. Any
// transport failure surfaces as an error; the pipeline never retries.
type APIClient interface {
	ListOutbreaks() ([]models.Outbreak, error)
	ListCases(outbreakID string) ([]models.CaseRef, error)
	CreateCase(outbreakID string, c models.Case) (*models.CaseRef, error)
	UpdateCase(outbreakID, caseID string, c models.Case) (*models.CaseRef, error)
	HierarchicalLocations() ([]*location.Node, error)
}

// GoDataClient talks to a Go.Data instance using access_token query
// authentication. The embedded http.Client is safe for concurrent use, so
// one GoDataClient serves all upload workers.
type GoDataClient struct {
	httpClient http.Client
	baseURL    string
	token      string
}

func NewGoDataClient() (*GoDataClient, error) {
	baseURL := conf.GetEnv("SINAN_API_URL")
	if baseURL == "" {
		return nil, &sinanerrors.ConfigurationError{Msg: "SINAN_API_URL is not set"}
	}

	timeout := utils.GetEnvInt("SINAN_API_TIMEOUT_MS", 20000)
	return &GoDataClient{
		httpClient: http.Client{Timeout: time.Duration(timeout) * time.Millisecond},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      conf.GetEnv("SINAN_API_TOKEN"),
	}, nil
}

// Login exchanges user credentials for a session token and keeps it for the
// remaining requests. Go.Data returns the token as the response id.
func (c *GoDataClient) Login(username, password string) error {
	loginURL := fmt.Sprintf("%s/api/users/login?access_token=%s", c.baseURL, url.QueryEscape(c.token))
	resp, err := c.httpClient.PostForm(loginURL, url.Values{
		"email":    {username},
		"password": {password},
	})
	if err != nil {
		return errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &sinanerrors.UnexpectedStatusCodeError{
			StatusCode: resp.StatusCode,
			Err:        errors.New("login failed"),
		}
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "could not decode login response")
	}
	if body.ID == "" {
		return errors.New("login response carried no token")
	}
	c.token = body.ID
	return nil
}

func (c *GoDataClient) ListOutbreaks() ([]models.Outbreak, error) {
	var outbreaks []models.Outbreak
	if err := c.do(http.MethodGet, "/api/outbreaks", nil, &outbreaks); err != nil {
		return nil, err
	}
	return outbreaks, nil
}

func (c *GoDataClient) ListCases(outbreakID string) ([]models.CaseRef, error) {
	var cases []models.CaseRef
	path := fmt.Sprintf("/api/outbreaks/%s/cases", outbreakID)
	if err := c.do(http.MethodGet, path, nil, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (c *GoDataClient) CreateCase(outbreakID string, caseData models.Case) (*models.CaseRef, error) {
	var ref models.CaseRef
	path := fmt.Sprintf("/api/outbreaks/%s/cases", outbreakID)
	if err := c.do(http.MethodPost, path, caseData, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

func (c *GoDataClient) UpdateCase(outbreakID, caseID string, caseData models.Case) (*models.CaseRef, error) {
	var ref models.CaseRef
	path := fmt.Sprintf("/api/outbreaks/%s/cases/%s", outbreakID, caseID)
	if err := c.do(http.MethodPut, path, caseData, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// hierarchicalLocation mirrors the /api/locations/hierarchical response.
type hierarchicalLocation struct {
	Location struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"location"`
	Children []hierarchicalLocation `json:"children"`
}

func (h hierarchicalLocation) toNode() *location.Node {
	node := &location.Node{ID: h.Location.ID, Name: h.Location.Name}
	for _, child := range h.Children {
		node.Children = append(node.Children, child.toNode())
	}
	return node
}

func (c *GoDataClient) HierarchicalLocations() ([]*location.Node, error) {
	var raw []hierarchicalLocation
	if err := c.do(http.MethodGet, "/api/locations/hierarchical", nil, &raw); err != nil {
		return nil, err
	}
	nodes := make([]*location.Node, 0, len(raw))
	for _, h := range raw {
		nodes = append(nodes, h.toNode())
	}
	return nodes, nil
}

func (c *GoDataClient) do(method, path string, body interface{}, out interface{}) error {
	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return errors.Wrapf(err, "could not encode %s %s body", method, path)
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "could not build %s %s request", method, path)
	}

	query := url.Values{}
	query.Set("access_token", c.token)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewRandom().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Client.Errorf("%s %s failed: %s", method, path, err)
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := ioutil.ReadAll(resp.Body)
		log.Client.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, truncate(string(payload), 200))
		return &sinanerrors.UnexpectedStatusCodeError{
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("%s %s", method, path),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "could not decode %s %s response", method, path)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
