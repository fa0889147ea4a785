package godaddy

import (
	"context"
	"encoding/json"
	"net/http"
)

// SubscriptionsPath is the base path of the subscriptions API.
const SubscriptionsPath = "/v1/subscriptions"

// SubscriptionEndpoints maps each subscriptions operation to its endpoint.
var SubscriptionEndpoints = map[string]Endpoint{
	"list":         {http.MethodGet, SubscriptionsPath},
	"products":     {http.MethodGet, SubscriptionsPath + "/productGroups"},
	"subscription": {http.MethodGet, SubscriptionsPath + "/{subscriptionId}"},
	"cancel":       {http.MethodDelete, SubscriptionsPath + "/{subscriptionId}"},
}

// Subscriptions is the subscriptions resource group.
type Subscriptions struct {
	service
}

// List returns the account's subscriptions.
func (s *Subscriptions) List(ctx context.Context, opts *PageOptions) (json.RawMessage, error) {
	return s.call(ctx, SubscriptionEndpoints["list"], opts, nil)
}

// Products returns the product groups the account has subscriptions in.
func (s *Subscriptions) Products(ctx context.Context) (json.RawMessage, error) {
	return s.call(ctx, SubscriptionEndpoints["products"], nil, nil)
}

// Subscription returns one subscription.
func (s *Subscriptions) Subscription(ctx context.Context, id string) (json.RawMessage, error) {
	return s.call(ctx, SubscriptionEndpoints["subscription"], nil, nil, id)
}

// Cancel cancels a subscription.
func (s *Subscriptions) Cancel(ctx context.Context, id string) (json.RawMessage, error) {
	return s.call(ctx, SubscriptionEndpoints["cancel"], nil, nil, id)
}
