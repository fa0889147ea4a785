package main

import (
	"context"
	"encoding/json"

	"github.com/mstetson/godaddy-cli/godaddy"
)

var ordersGroup = &Group{
	UsageLine: "orders command",
	Short:     "purchase orders",
	Commands: []*Command{
		{
			UsageLine:   "list [-limit n] [-offset n]",
			Short:       "list orders",
			Flag:        pageFlags,
			RequireArgs: 0,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Orders.List(ctx, in.Page())
			},
		},
		{
			UsageLine:   "order <order-id>",
			Short:       "show one order",
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Orders.Order(ctx, in.Args[0])
			},
		},
	},
}
