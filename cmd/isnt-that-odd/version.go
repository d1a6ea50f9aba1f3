package main

var version = "0.1.0"

const versionTemplate = "{{.Name}} {{.Version}}\n"
