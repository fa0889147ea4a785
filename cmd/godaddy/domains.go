package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mstetson/godaddy-cli/godaddy"
)

var recordFlags = []CommandFlag{
	{Type: "string", Name: "type", Usage: "record type (A, CNAME, MX, TXT, ...)", Required: true},
	{Type: "string", Name: "name", Usage: "record name, @ for the domain itself", Required: true},
}

var domainsGroup = &Group{
	UsageLine: "domains command",
	Short:     "domain registrations, DNS records and availability",
	Commands: []*Command{
		{
			UsageLine:   "list",
			Short:       "list the domains in the account",
			RequireArgs: 0,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.List(ctx)
			},
		},
		{
			UsageLine:   "domain <domain>",
			Short:       "show one domain",
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.Domain(ctx, in.Args[0])
			},
		},
		{
			UsageLine:   "records -type T -name N [-limit n] [-offset n] <domain>",
			Short:       "list DNS records of a type and name",
			Flag:        append(append([]CommandFlag{}, recordFlags...), pageFlags...),
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.Records(ctx, in.Args[0], in.StringFlag("type"), in.StringFlag("name"), in.Page())
			},
		},
		{
			UsageLine:   "replace-records -type T -name N <domain>",
			Short:       "replace DNS records of a type and name with the JSON array on stdin",
			Flag:        recordFlags,
			RequireArgs: 1,
			ReadBody:    true,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.ReplaceRecords(ctx, in.Args[0], in.StringFlag("type"), in.StringFlag("name"), in.Body)
			},
		},
		{
			UsageLine:   "delete-records -type T -name N <domain>",
			Short:       "delete DNS records of a type and name",
			Flag:        recordFlags,
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.DeleteRecords(ctx, in.Args[0], in.StringFlag("type"), in.StringFlag("name"))
			},
		},
		{
			UsageLine:   "available <domain>",
			Short:       "check whether a domain can be registered",
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.Available(ctx, in.Args[0])
			},
		},
		{
			UsageLine:   "available-bulk <domain>...",
			Short:       "check several domains at once",
			RequireArgs: -1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				if len(in.Args) == 0 {
					return nil, fmt.Errorf("available-bulk requires at least one domain")
				}
				return api.Domains.AvailableBulk(ctx, in.Args)
			},
		},
		{
			UsageLine: "suggest [-country cc] [-limit n] <query>",
			Short:     "suggest domain names for a query",
			Flag: []CommandFlag{
				{Type: "string", Name: "country", Usage: "two-letter country code to tailor suggestions for"},
				{Type: "int", Name: "limit", Usage: "maximum number of suggestions"},
			},
			RequireArgs: 1,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.Suggest(ctx, in.Args[0], &godaddy.SuggestOptions{
					Country: in.StringFlag("country"),
					Limit:   in.OptionalInt("limit"),
				})
			},
		},
		{
			UsageLine:   "tlds",
			Short:       "list the top-level domains that can be registered",
			RequireArgs: 0,
			Call: func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error) {
				return api.Domains.TLDs(ctx)
			},
		},
	},
}
