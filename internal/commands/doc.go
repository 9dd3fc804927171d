// Package commands implements the formrules CLI: check, export and serve.
package commands
