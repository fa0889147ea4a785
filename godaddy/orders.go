package godaddy

import (
	"context"
	"encoding/json"
	"net/http"
)

// OrdersPath is the base path of the orders API.
const OrdersPath = "/v1/orders"

// OrderEndpoints maps each orders operation to its endpoint.
var OrderEndpoints = map[string]Endpoint{
	"list":  {http.MethodGet, OrdersPath},
	"order": {http.MethodGet, OrdersPath + "/{orderId}"},
}

type Orders struct {
	service
}

func (o *Orders) List(ctx context.Context, opts *PageOptions) (json.RawMessage, error) {
	return o.call(ctx, OrderEndpoints["list"], opts, nil)
}

func (o *Orders) Order(ctx context.Context, id string) (json.RawMessage, error) {
	return o.call(ctx, OrderEndpoints["order"], nil, nil, id)
}
