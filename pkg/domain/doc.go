// Package domain contains the core business entities of the price tracker,
// such as tracked products and scrape results. The types are free of
// infrastructure concerns so they can be shared across packages.
package domain
