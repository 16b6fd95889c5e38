// Package external holds the HTTP plumbing shared by the feed clients.
package external

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
)

// ErrResponseStatus - the feed answered with a non 2xx status
var ErrResponseStatus = fmt.Errorf("unexpected response status")

// Get - fetch the body of url, failing on transport errors and non 2xx
// responses
func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := client.Do(req)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d from %s", ErrResponseStatus, resp.StatusCode, url)
	}

	return ioutil.ReadAll(resp.Body)
}
