package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gonuts/commander"
	"github.com/juju/loggo"

	"github.com/mstetson/godaddy-cli/apiconfig"
	"github.com/mstetson/godaddy-cli/godaddy"
	"github.com/mstetson/godaddy-cli/output"
)

var logger = loggo.GetLogger("godaddy.cmd")

type Config struct {
	// OTE selects GoDaddy's test environment when BaseURL is not set.
	OTE       bool
	BaseURL   string
	DocsURL   string
	Key       string
	Secret    string
	ShopperID string
	UserAgent string
}

const defaultDocsURL = "https://developer.godaddy.com/doc"

var (
	config       Config
	outputFormat output.Format

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	err := run(context.Background(), os.Args[1:])
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("godaddy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configName := fs.String("c", "", "configuration profile name")
	format := fs.String("o", "json", "output format: json or yaml")
	verbose := fs.Bool("v", false, "log requests")
	trace := fs.Bool("vv", false, "log requests and responses in full")
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch {
	case *trace:
		loggo.ConfigureLoggers("godaddy=TRACE")
	case *verbose:
		loggo.ConfigureLoggers("godaddy=DEBUG")
	}

	var err error
	outputFormat, err = output.ParseFormat(*format)
	if err != nil {
		return err
	}
	if err := apiconfig.LoadDotEnv(); err != nil {
		return err
	}
	config = Config{}
	err = apiconfig.Load(&config, *configName)
	if err != nil {
		if *configName == "" && errors.As(err, &apiconfig.ErrNotFound{}) {
			// the default config is fine
			logger.Debugf("%v", err)
		} else {
			return err
		}
	}

	root, err := newRootCommand()
	if err != nil {
		return err
	}
	return root.Dispatch(ctx, fs.Args())
}

func newRootCommand() (*commander.Command, error) {
	root := &commander.Command{
		UsageLine: "godaddy [-c config] [-o json|yaml] [-v|-vv] command",
		Short:     "GoDaddy API CLI",
		Subcommands: []*commander.Command{
			docsCommand(),
		},
	}
	root.Subcommands = append(root.Subcommands, rawCommands()...)
	for _, g := range groups {
		cmd, err := g.Commander()
		if err != nil {
			return nil, err
		}
		root.Subcommands = append(root.Subcommands, cmd)
	}
	return root, nil
}

func (c *Config) credentials() (godaddy.Credentials, error) {
	creds, envErr := godaddy.LoadCredentials(os.LookupEnv)
	var deref apiconfig.Dereffer
	if c.Key != "" {
		creds.Key = deref.String(c.Key)
	}
	if c.Secret != "" {
		creds.Secret = deref.String(c.Secret)
	}
	if deref.Error != nil {
		return creds, deref.Error
	}
	if creds.Key == "" || creds.Secret == "" {
		if envErr != nil {
			return creds, envErr
		}
		return creds, fmt.Errorf("credentials not set: configure Key and Secret or set %s and %s",
			godaddy.KeyEnv, godaddy.SecretEnv)
	}
	return creds, nil
}

func (c *Config) apiClient() (*godaddy.Client, error) {
	creds, err := c.credentials()
	if err != nil {
		return nil, err
	}
	var opts []godaddy.Option
	if c.UserAgent != "" {
		opts = append(opts, godaddy.WithUserAgent(c.UserAgent))
	}
	if c.ShopperID != "" {
		opts = append(opts, godaddy.WithShopperID(c.ShopperID))
	}
	return godaddy.NewClient(c.baseURL(), creds, opts...)
}

func (c *Config) baseURL() string {
	switch {
	case c.BaseURL != "":
		return c.BaseURL
	case c.OTE:
		return godaddy.OTEBaseURL
	default:
		return godaddy.DefaultBaseURL
	}
}

func printError(err error) {
	var herr *godaddy.HTTPError
	if errors.As(err, &herr) && len(herr.Body) > 0 {
		fmt.Fprintf(stderr, "%s\n", herr.Body)
	}
	color.New(color.FgRed).Fprintln(stderr, "error:", err)
}
