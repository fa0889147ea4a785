package godaddy

import (
	"context"
	"encoding/json"
	"net/http"
)

// DomainsPath is the base path of the domains API.
const DomainsPath = "/v1/domains"

// DomainEndpoints maps each domains operation to its endpoint.
var DomainEndpoints = map[string]Endpoint{
	"list":            {http.MethodGet, DomainsPath},
	"domain":          {http.MethodGet, DomainsPath + "/{domain}"},
	"records":         {http.MethodGet, DomainsPath + "/{domain}/records/{type}/{name}"},
	"available":       {http.MethodGet, DomainsPath + "/available"},
	"available-bulk":  {http.MethodPost, DomainsPath + "/available"},
	"suggest":         {http.MethodGet, DomainsPath + "/suggest"},
	"tlds":            {http.MethodGet, DomainsPath + "/tlds"},
	"replace-records": {http.MethodPut, DomainsPath + "/{domain}/records/{type}/{name}"},
	"delete-records":  {http.MethodDelete, DomainsPath + "/{domain}/records/{type}/{name}"},
}

// SuggestOptions narrow a domain name suggestion.
type SuggestOptions struct {
	Country string `url:"country,omitempty"`
	Limit   *int   `url:"limit,omitempty"`
}

// Domains is the domains resource group.
type Domains struct {
	service
}

// List returns the domains owned by the account.
func (d *Domains) List(ctx context.Context) (json.RawMessage, error) {
	return d.call(ctx, DomainEndpoints["list"], nil, nil)
}

// Domain returns the details of one domain.
func (d *Domains) Domain(ctx context.Context, domain string) (json.RawMessage, error) {
	return d.call(ctx, DomainEndpoints["domain"], nil, nil, domain)
}

// Records returns the DNS records of domain with the given type and name.
func (d *Domains) Records(ctx context.Context, domain, recordType, name string, opts *PageOptions) (json.RawMessage, error) {
	return d.call(ctx, DomainEndpoints["records"], opts, nil, domain, recordType, name)
}

// ReplaceRecords replaces the DNS records of domain with the given type
// and name. records is the JSON array sent to the API.
func (d *Domains) ReplaceRecords(ctx context.Context, domain, recordType, name string, records json.RawMessage) (json.RawMessage, error) {
	return d.call(ctx, DomainEndpoints["replace-records"], nil, records, domain, recordType, name)
}

// DeleteRecords deletes the DNS records of domain with the given type and name.
func (d *Domains) DeleteRecords(ctx context.Context, domain, recordType, name string) (json.RawMessage, error) {
	return d.call(ctx, DomainEndpoints["delete-records"], nil, nil, domain, recordType, name)
}

// Available reports whether domain can be registered.
func (d *Domains) Available(ctx context.Context, domain string) (json.RawMessage, error) {
	params := struct {
		Domain string `url:"domain"`
	}{domain}
	return d.call(ctx, DomainEndpoints["available"], params, nil)
}

// AvailableBulk checks several domains in one request.
func (d *Domains) AvailableBulk(ctx context.Context, domains []string) (json.RawMessage, error) {
	if domains == nil {
		domains = []string{}
	}
	return d.call(ctx, DomainEndpoints["available-bulk"], nil, domains)
}

// Suggest returns domain names suggested for query.
func (d *Domains) Suggest(ctx context.Context, query string, opts *SuggestOptions) (json.RawMessage, error) {
	params := struct {
		Query string `url:"query"`
		SuggestOptions
	}{Query: query}
	if opts != nil {
		params.SuggestOptions = *opts
	}
	return d.call(ctx, DomainEndpoints["suggest"], params, nil)
}

// TLDs returns the top-level domains that can be registered.
func (d *Domains) TLDs(ctx context.Context) (json.RawMessage, error) {
	return d.call(ctx, DomainEndpoints["tlds"], nil, nil)
}
