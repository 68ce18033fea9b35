// Package ports declares the interfaces the layers of the site meet at:
// handlers call the catalog and read visitor state through them, the
// application reaches content, submission and asset adapters through them.
package ports
