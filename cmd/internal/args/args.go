package args

import (
	"bytes"
	"errors"
	"flag"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"os"
	"strings"
	"time"
)

const (
	QueryClusterHealth  = "cluster-health"
	QueryNodes          = "nodes"
	QueryApplications   = "applications"
	QueryServices       = "services"
	QueryPartitions     = "partitions"
	QueryBackupPolicies = "backup-policies"
	QueryChaos          = "chaos"
	QueryChaosEvents    = "chaos-events"
	QueryClusterEvents  = "cluster-events"
	QueryNodeEvents     = "node-events"
)

// AllQueries lists every query the tool can run, in the order documents are written.
var AllQueries = []string{
	QueryClusterHealth,
	QueryNodes,
	QueryApplications,
	QueryServices,
	QueryPartitions,
	QueryBackupPolicies,
	QueryChaos,
	QueryChaosEvents,
	QueryClusterEvents,
	QueryNodeEvents,
}

// DefaultQueries run when no -queries flag is supplied.
var DefaultQueries = []string{QueryClusterHealth, QueryNodes, QueryApplications}

type Arguments struct {
	ConfigFile      string
	ConfigPath      string
	Version         bool
	LogLevel        string
	Url             string
	Destination     string
	Console         bool
	Queries         StringSliceArgs
	CertFile        string
	KeyFile         string
	Insecure        bool
	AadScope        string
	AadTenantId     string
	AadClientId     string
	AadClientSecret string
	EventWindow     time.Duration
	RetryAttempts   uint
	RetryDelay      time.Duration
	RequestTimeout  time.Duration
}

// GetQueries returns the requested queries with duplicates removed, or the defaults when none were requested.
func (arguments *Arguments) GetQueries() []string {
	if len(arguments.Queries) == 0 {
		return DefaultQueries
	}

	return lo.Uniq(arguments.Queries)
}

// UseTokenAuth is true when an Entra ID scope was supplied.
func (arguments *Arguments) UseTokenAuth() bool {
	return strings.TrimSpace(arguments.AadScope) != ""
}

type StringSliceArgs []string

func (i *StringSliceArgs) String() string {
	return "A collection of strings passed as arguments"
}

func (i *StringSliceArgs) Set(value string) error {
	// values may be comma separated
	for _, item := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(item)

		if len(trimmed) == 0 {
			continue
		}

		*i = append(*i, trimmed)
	}

	return nil
}

func ParseArgs(args []string) (Arguments, string, error) {
	flags := flag.NewFlagSet("sfquery", flag.ContinueOnError)
	var buf bytes.Buffer
	flags.SetOutput(&buf)

	arguments := Arguments{}

	flags.StringVar(&arguments.ConfigFile, "configFile", "sfquery", "The name of the configuration file to use. Do not include the extension. Defaults to sfquery")
	flags.StringVar(&arguments.ConfigPath, "configPath", ".", "The path of the configuration file to use. Defaults to the current directory")
	flags.BoolVar(&arguments.Version, "version", false, "Print the version")
	flags.StringVar(&arguments.LogLevel, "logLevel", "info", "The log level: debug, info, warn, or error")
	flags.StringVar(&arguments.Url, "url", "", "The cluster management endpoint e.g. https://mycluster.westus.cloudapp.azure.com:19080")
	flags.StringVar(&arguments.Destination, "dest", "", "The directory to place the JSON documents in")
	flags.BoolVar(&arguments.Console, "console", false, "Dump the JSON documents to the console")
	flags.Var(&arguments.Queries, "queries", "The queries to run. Can be repeated or comma separated. One of "+strings.Join(AllQueries, ", ")+". Defaults to "+strings.Join(DefaultQueries, ", "))
	flags.StringVar(&arguments.CertFile, "certFile", "", "The PEM encoded client certificate used to authenticate with the cluster")
	flags.StringVar(&arguments.KeyFile, "keyFile", "", "The PEM encoded private key of the client certificate. Defaults to certFile")
	flags.BoolVar(&arguments.Insecure, "insecure", false, "Skip verification of the cluster's server certificate. Clusters often use self signed certificates.")
	flags.StringVar(&arguments.AadScope, "aadScope", "", "The Entra ID scope of the cluster application, e.g. api://<cluster application id>/.default. Enables token authentication.")
	flags.StringVar(&arguments.AadTenantId, "aadTenantId", "", "The Entra ID tenant of the service principal. When not set, the default Azure credential chain is used.")
	flags.StringVar(&arguments.AadClientId, "aadClientId", "", "The client id of the service principal")
	flags.StringVar(&arguments.AadClientSecret, "aadClientSecret", "", "The client secret of the service principal")
	flags.DurationVar(&arguments.EventWindow, "eventWindow", 24*time.Hour, "How far back event queries look")
	flags.UintVar(&arguments.RetryAttempts, "retryAttempts", 3, "The number of attempts made for requests that fail with transient errors")
	flags.DurationVar(&arguments.RetryDelay, "retryDelay", 1*time.Second, "The delay between retried requests")
	flags.DurationVar(&arguments.RequestTimeout, "requestTimeout", 60*time.Second, "The timeout of a single HTTP request")

	err := flags.Parse(args)

	if err != nil {
		return Arguments{}, buf.String(), err
	}

	err = overrideArgs(flags, arguments.ConfigPath, arguments.ConfigFile)

	if err != nil {
		return Arguments{}, buf.String(), err
	}

	if arguments.Url == "" {
		arguments.Url = os.Getenv("SF_CLUSTER_ENDPOINT")
	}

	if err := arguments.ValidateQueries(); err != nil {
		return Arguments{}, buf.String(), err
	}

	return arguments, buf.String(), nil
}

// ValidateQueries returns an error naming every unknown query.
func (arguments *Arguments) ValidateQueries() error {
	unknown := lo.Filter(arguments.Queries, func(item string, index int) bool {
		return !lo.Contains(AllQueries, item)
	})

	if len(unknown) != 0 {
		return errors.New("unknown queries: " + strings.Join(unknown, ", ") + ". Valid queries are " + strings.Join(AllQueries, ", "))
	}

	if arguments.EventWindow < 0 {
		return errors.New("eventWindow can not be negative")
	}

	return nil
}

// Inspired by https://github.com/carolynvs/stingoftheviper
// Viper needs manual handling to implement reading settings from env vars, config files, and from the command line
func overrideArgs(flags *flag.FlagSet, configPath string, configFile string) error {
	v := viper.New()

	// Set the base name of the config file, without the file extension.
	v.SetConfigName(configFile)

	// Only the configured directory is searched.
	v.AddConfigPath(configPath)

	// It's okay if there isn't a config file, but a config file that can not be parsed is an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	// Environment variables are prefixed, so a flag like -url binds to SFQUERY_URL.
	v.SetEnvPrefix("sfquery")

	// Environment variables can't have dashes in them, so bind them to their equivalent
	// keys with underscores.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.AutomaticEnv()

	// Bind the current command's flags to viper
	return bindFlags(flags, v)
}

// Bind each flag to its associated viper configuration (config file and environment variable)
func bindFlags(flags *flag.FlagSet, v *viper.Viper) error {
	var funcError error = nil

	flags.VisitAll(func(allFlags *flag.Flag) {
		defined := false
		flags.Visit(func(definedFlag *flag.Flag) {
			if definedFlag.Name == allFlags.Name && definedFlag.Name != "configFile" && definedFlag.Name != "configPath" {
				defined = true
			}
		})

		if !defined && v.IsSet(allFlags.Name) {
			configName := strings.ReplaceAll(allFlags.Name, "-", "")

			for _, value := range v.GetStringSlice(configName) {
				err := flags.Set(allFlags.Name, value)
				funcError = errors.Join(funcError, err)
			}
		}
	})

	return funcError
}
