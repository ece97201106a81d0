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

// parseFlags parses all configuration flags from args into fs.
//
// Flags:
//
//	-a login service address in format [host]:[port]
//	-request-timeout login request timeout (e.g., "15s")
//	-d local database DSN
//	-io-pool-size number of background I/O workers
//	-queue-size background task queue capacity
//	-login-timeout login attempt timeout, 0 waits until the screen closes
//	-token-key secret sealing stored tokens
//	-stub-address stub server listen address in format [host]:[port]
//	-stub-sign-key stub server token signing key
//	-stub-accounts comma-separated login:password pairs
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var adapterAddress, stubAddress NetAddress
	var requestTimeout, loginTimeout time.Duration
	var databaseDSN string
	var ioPoolSize, queueSize int
	var tokenKey string
	var stubSignKey, stubAccounts string
	var jsonConfigPath string

	fs.Var(&adapterAddress, "a", "Login service address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Login request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.IntVar(&ioPoolSize, "io-pool-size", 0, "Number of background I/O workers")
	fs.IntVar(&queueSize, "queue-size", 0, "Background task queue capacity")
	fs.DurationVar(&loginTimeout, "login-timeout", 0, "Login attempt timeout, 0 waits until the screen closes")
	fs.StringVar(&tokenKey, "token-key", "", "Secret sealing stored tokens")
	fs.Var(&stubAddress, "stub-address", "Stub server listen address host:port")
	fs.StringVar(&stubSignKey, "stub-sign-key", "", "Stub server token signing key")
	fs.StringVar(&stubAccounts, "stub-accounts", "", "Comma-separated login:password pairs")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var accounts []string
	if stubAccounts != "" {
		accounts = strings.Split(stubAccounts, ",")
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			IOPoolSize: ioPoolSize,
			QueueSize:  queueSize,
		},
		Login: Login{
			Timeout:  loginTimeout,
			TokenKey: tokenKey,
		},
		StubServer: StubServer{
			Address:      stubAddress.String(),
			TokenSignKey: stubSignKey,
			Accounts:     accounts,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
