package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-csv catalog CSV file path
//	-f local state file path
//	-state-dsn sqlite state backend DSN
//	-remote-url remote overlay store base URL
//	-remote-key remote overlay store API key
//	-remote-table remote overlay store table name
//	-remote-timeout remote request timeout (e.g., "10s")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var catalogCSVPath string
	var stateFilePath string
	var stateSQLiteDSN string
	var remoteURL string
	var remoteKey string
	var remoteTable string
	var remoteTimeout time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&catalogCSVPath, "csv", "", "Catalog CSV file path")
	flag.StringVar(&stateFilePath, "f", "", "Local state file path")
	flag.StringVar(&stateSQLiteDSN, "state-dsn", "", "SQLite state backend DSN")
	flag.StringVar(&remoteURL, "remote-url", "", "Remote overlay store base URL")
	flag.StringVar(&remoteKey, "remote-key", "", "Remote overlay store API key")
	flag.StringVar(&remoteTable, "remote-table", "", "Remote overlay store table")
	flag.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Catalog: Catalog{
				CSVPath: catalogCSVPath,
			},
			State: State{
				FilePath:  stateFilePath,
				SQLiteDSN: stateSQLiteDSN,
			},
			Remote: Remote{
				URL:     remoteURL,
				Key:     remoteKey,
				Table:   remoteTable,
				Timeout: remoteTimeout,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
