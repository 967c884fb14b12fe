// Package cli formats rgbctl command results as tables, JSON or YAML.
package cli
