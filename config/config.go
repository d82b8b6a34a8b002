package config

import (
	"embed"
)

// Store holds the yaml files of every namespace, e.g. chaintrace/base.yml.
//
//go:embed chaintrace/*.yml
var Store embed.FS
