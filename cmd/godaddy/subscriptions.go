package main

import (
	"context"
	"encoding/json"

	"github.com/mstetson/godaddy-cli/godaddy"
)

var subscriptionsGroup = &Group{
	UsageLine: "subscriptions command",
	Short:     "product subscriptions",
	Commands: []*Command{
		{
			UsageLine:   "list [-limit n] [-offset n]",
			Short:       "list subscriptions",
			Flag:        pageFlags,
			RequireArgs: 0,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Subscriptions.List(ctx, in.Page())
			},
		},
		{
			UsageLine:   "products",
			Short:       "list the product groups with subscriptions",
			RequireArgs: 0,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Subscriptions.Products(ctx)
			},
		},
		{
			UsageLine:   "subscription <subscription-id>",
			Short:       "show one subscription",
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Subscriptions.Subscription(ctx, in.Args[0])
			},
		},
		{
			UsageLine:   "cancel <subscription-id>",
			Short:       "cancel a subscription",
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Subscriptions.Cancel(ctx, in.Args[0])
			},
		},
	},
}
