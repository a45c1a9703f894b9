package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	"github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

const requestTimeout = 3 * time.Second

// UserDirectory indexes users in Elasticsearch and serves full text lookups
// over name and email.
type UserDirectory struct {
	client *es.Client
	index  string
}

func NewUserDirectory(client *es.Client, index string) *UserDirectory {
	return &UserDirectory{client: client, index: index}
}

type userDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Index stores or replaces the document of u.
func (d *UserDirectory) Index(ctx context.Context, u *entity.User) error {
	doc := userDoc{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt().UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt().UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{Index: d.index, DocumentID: doc.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, d.client)
	if err != nil {
		return fmt.Errorf("index user: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index user: %s", res.Status())
	}
	return nil
}

// Remove deletes the document of id. A missing document is not an error.
func (d *UserDirectory) Remove(ctx context.Context, id vo.UserID) error {
	req := esapi.DeleteRequest{Index: d.index, DocumentID: id.String()}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, d.client)
	if err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("remove user: %s", res.Status())
	}
	return nil
}

// Search performs a multi_match query on email and name, email boosted.
func (d *UserDirectory) Search(ctx context.Context, q string, limit int) ([]repository.UserSummary, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": limit,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := d.client.Search(
		d.client.Search.WithContext(c),
		d.client.Search.WithIndex(d.index),
		d.client.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	// an index that was never written to has no hits
	if res.StatusCode == http.StatusNotFound {
		return []repository.UserSummary{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("search users: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source userDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]repository.UserSummary, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, repository.UserSummary{
			ID:    h.Source.ID,
			Name:  h.Source.Name,
			Email: h.Source.Email,
			Role:  h.Source.Role,
		})
	}
	return out, nil
}

var _ repository.UserDirectory = (*UserDirectory)(nil)
