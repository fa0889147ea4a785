package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gonuts/commander"

	"github.com/mstetson/godaddy-cli/output"
)

// rawCommands make requests to arbitrary API paths.
func rawCommands() []*commander.Command {
	return []*commander.Command{
		{
			Run:       runRaw,
			UsageLine: "get <url>",
			Short:     "make a GET request, relative to the API base URL",
		},
		{
			Run:       runRaw,
			UsageLine: "post <url>",
			Short:     "make a POST request with the JSON body on stdin, relative to the API base URL",
		},
		{
			Run:       runRaw,
			UsageLine: "put <url>",
			Short:     "make a PUT request with the JSON body on stdin, relative to the API base URL",
		},
		{
			Run:       runRaw,
			UsageLine: "delete <url>",
			Short:     "make a DELETE request, relative to the API base URL",
		},
	}
}

func runRaw(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s requires an URL parameter", cmd.Name())
	}
	api, err := config.apiClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	var msg json.RawMessage
	switch cmd.Name() {
	case "get":
		msg, err = api.Get(ctx, args[0], nil)
	case "delete":
		msg, err = api.Delete(ctx, args[0], nil)
	case "post", "put":
		var body any
		b, rerr := io.ReadAll(stdin)
		if rerr != nil {
			return rerr
		}
		if len(bytes.TrimSpace(b)) > 0 {
			body = json.RawMessage(b)
		}
		if cmd.Name() == "post" {
			msg, err = api.Post(ctx, args[0], nil, body)
		} else {
			msg, err = api.Put(ctx, args[0], nil, body)
		}
	default:
		return fmt.Errorf("unknown method %s", cmd.Name())
	}
	if err != nil {
		return err
	}
	return output.Write(stdout, msg, outputFormat)
}
