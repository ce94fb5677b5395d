package config

import (
	"fmt"
	"strings"
)

// validateHost checks that default_host is a bare host name such as
// "github.com" or "git.example.com:2222".
func validateHost(host string) error {
	if host == "" {
		return nil
	}
	if strings.Contains(host, "://") {
		return fmt.Errorf("invalid default_host %q: must not include a scheme", host)
	}
	if strings.ContainsAny(host, "/ \t") {
		return fmt.Errorf("invalid default_host %q: must be a host name", host)
	}
	return nil
}
