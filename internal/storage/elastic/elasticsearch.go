package elastic

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

const CourseIndex = "courses"

const defaultUsername = "elastic"

// NewElasticClient connects to the cluster and checks it answers before the
// search repository is handed out.
func NewElasticClient(ctx context.Context, username, password string, hosts []string) (*elasticsearch.Client, error) {
	if len(hosts) == 0 {
		return nil, fmt.Errorf("elastic: no hosts configured")
	}
	if username == "" && password != "" {
		username = defaultUsername
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: hosts,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: create client: %w", err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elastic: cannot connect to cluster: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elastic: cluster returned error: %s", res.String())
	}
	return client, nil
}
