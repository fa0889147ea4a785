package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/gonuts/commander"

	"github.com/mstetson/godaddy-cli/godaddy"
	"github.com/mstetson/godaddy-cli/output"
)

// Group is a set of commands for one resource group of the API.
type Group struct {
	UsageLine string
	Short     string
	Long      string
	Commands  []*Command
}

// Command describes one API operation on the command line.
type Command struct {
	UsageLine   string
	Short       string
	Long        string
	Flag        []CommandFlag
	RequireArgs int // negative means any number
	ReadBody    bool

	Call func(ctx context.Context, api *godaddy.Client, in *Input) (json.RawMessage, error)
}

type CommandFlag struct {
	Type          string
	Name          string
	Usage         string
	Required      bool
	DefaultInt    int
	DefaultString string
}

// Input is what a Command's Call gets from the command line.
type Input struct {
	Args []string
	Flag *flag.FlagSet
	Body json.RawMessage
}

func (in *Input) StringFlag(name string) string {
	return in.Flag.Lookup(name).Value.String()
}

func (in *Input) IntFlag(name string) int {
	return in.Flag.Lookup(name).Value.(flag.Getter).Get().(int)
}

// OptionalInt returns the value of an int flag, or nil if it was not
// given on the command line.
func (in *Input) OptionalInt(name string) *int {
	set := false
	in.Flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return godaddy.Int(in.IntFlag(name))
}

// Page returns the -limit and -offset flags as paging options.
func (in *Input) Page() *godaddy.PageOptions {
	return &godaddy.PageOptions{
		Limit:  in.OptionalInt("limit"),
		Offset: in.OptionalInt("offset"),
	}
}

var pageFlags = []CommandFlag{
	{Type: "int", Name: "limit", Usage: "maximum number of results"},
	{Type: "int", Name: "offset", Usage: "number of results to skip"},
}

func (c *Command) Run(cmd *commander.Command, args []string) error {
	if c.RequireArgs >= 0 && len(args) != c.RequireArgs {
		cmd.Usage()
		return fmt.Errorf("wrong number of arguments, got %d want %d", len(args), c.RequireArgs)
	}
	for _, f := range c.Flag {
		if f.Required && cmd.Flag.Lookup(f.Name).Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("missing required flag -%s", f.Name)
		}
	}
	in := &Input{
		Args: args,
		Flag: &cmd.Flag,
	}
	if c.ReadBody {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		in.Body = json.RawMessage(b)
	}
	api, err := config.apiClient()
	if err != nil {
		return err
	}
	msg, err := c.Call(cmd.Context(), api, in)
	if err != nil {
		return err
	}
	return output.Write(stdout, msg, outputFormat)
}

func (c *Command) Commander() (*commander.Command, error) {
	cmd := &commander.Command{
		UsageLine: c.UsageLine,
		Short:     c.Short,
		Long:      c.Long,
		Run:       c.Run,
	}
	cmd.Flag = *flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.Flag.SetOutput(stderr)
	for _, f := range c.Flag {
		switch f.Type {
		case "int":
			cmd.Flag.Int(f.Name, f.DefaultInt, f.Usage)
		case "string":
			cmd.Flag.String(f.Name, f.DefaultString, f.Usage)
		default:
			return nil, fmt.Errorf("%s: bad flag type %s", cmd.Name(), f.Type)
		}
	}
	return cmd, nil
}

func (g *Group) Commander() (*commander.Command, error) {
	cmd := &commander.Command{
		UsageLine: g.UsageLine,
		Short:     g.Short,
		Long:      g.Long,
	}
	for _, c := range g.Commands {
		sub, err := c.Commander()
		if err != nil {
			return nil, fmt.Errorf("%s %w", g.UsageLine, err)
		}
		cmd.Subcommands = append(cmd.Subcommands, sub)
	}
	return cmd, nil
}

var groups = []*Group{
	domainsGroup,
	subscriptionsGroup,
	ordersGroup,
}
