package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain extracts the registrable domain of a URL with the public
// suffix and subdomains stripped: "https://www.amazon.com.br/dp/x" yields
// "amazon". The result is the key used to look up extraction strategies.
func RegistrableDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("could not derive registrable domain of %q: %w", host, err)
	}

	suffix, _ := publicsuffix.PublicSuffix(host)

	return strings.TrimSuffix(etld1, "."+suffix), nil
}
