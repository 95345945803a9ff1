package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/pkg/errors"
)

// HTTPUserDirectory answers the user payment-details query against the
// users service REST API
type HTTPUserDirectory struct {
	baseURL string
	client  *http.Client
}

// NewHTTPUserDirectory creates a new HTTPUserDirectory
func NewHTTPUserDirectory(baseURL string, timeout time.Duration) *HTTPUserDirectory {
	return &HTTPUserDirectory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Handle implements bus.QueryHandler
func (d *HTTPUserDirectory) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(application.FetchUserPaymentDetailsQuery)
	if !ok {
		return nil, errors.Errorf("unexpected query type %T", query)
	}

	url := fmt.Sprintf("%s/users/%s/payment-details", d.baseURL, q.UserID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build user lookup request")
	}

	res, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "user lookup failed")
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return (*domain.User)(nil), nil
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("user lookup returned status %d", res.StatusCode)
	}

	var user domain.User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user lookup response")
	}

	return &user, nil
}

// StaticUserDirectory answers the payment-details query from a fixed
// table, for local runs and tests
type StaticUserDirectory struct {
	users map[string]*domain.User
}

// NewStaticUserDirectory creates a directory holding the given users
func NewStaticUserDirectory(users ...*domain.User) *StaticUserDirectory {
	d := &StaticUserDirectory{users: make(map[string]*domain.User, len(users))}
	for _, user := range users {
		d.users[user.UserID.String()] = user
	}
	return d
}

// Handle implements bus.QueryHandler
func (d *StaticUserDirectory) Handle(_ context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(application.FetchUserPaymentDetailsQuery)
	if !ok {
		return nil, errors.Errorf("unexpected query type %T", query)
	}

	user, ok := d.users[q.UserID.String()]
	if !ok {
		return (*domain.User)(nil), nil
	}

	return user, nil
}

var (
	_ bus.QueryHandler = (*HTTPUserDirectory)(nil)
	_ bus.QueryHandler = (*StaticUserDirectory)(nil)
)
